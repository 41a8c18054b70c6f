// Package fixed provides Q16, a signed fixed-point number with 16
// fractional bits stored in an int64 (Q47.16). It satisfies the Scalar
// capability set of pkg/vec, so vectors of fixed-point components work on
// targets where floats are unwelcome.
//
// Arithmetic policy: operations wrap on overflow, exactly like Go's own
// int64 arithmetic — no saturation and no hidden checks. Division by zero
// panics the way integer division does. Sqrt panics on negative input
// because there is no NaN to return.
package fixed

import (
	"math"
	"strconv"
)

type Q16 int64

const fracBits = 16

// One is 1.0 in Q16 raw form.
const One Q16 = 1 << fracBits

func FromInt(i int) Q16 {
	return Q16(i) << fracBits
}

// FromFloat rounds f to the nearest representable Q16 value. Values beyond
// the Q47.16 range wrap per the package policy.
func FromFloat(f float64) Q16 {
	return Q16(math.Round(f * float64(One)))
}

func (a Q16) Float() float64 {
	return float64(a) / float64(One)
}

func (a Q16) Add(b Q16) Q16 { return a + b }
func (a Q16) Sub(b Q16) Q16 { return a - b }
func (a Q16) Neg() Q16      { return -a }
func (a Q16) Eq(b Q16) bool { return a == b }
func (a Q16) Lt(b Q16) bool { return a < b }

// Mul keeps the intermediate product in int64, so operands whose product
// exceeds 2^47 in real terms wrap.
func (a Q16) Mul(b Q16) Q16 {
	return Q16((int64(a) * int64(b)) >> fracBits)
}

// Div truncates toward zero. b == 0 panics.
func (a Q16) Div(b Q16) Q16 {
	return Q16((int64(a) << fracBits) / int64(b))
}

// Sqrt returns the square root rounded down to the nearest representable
// value. Panics on negative input.
func (a Q16) Sqrt() Q16 {
	if a < 0 {
		panic("fixed: Sqrt of negative Q16")
	}
	// sqrt(raw / 2^16) * 2^16 == sqrt(raw << 16)
	return Q16(isqrt(uint64(a) << fracBits))
}

func isqrt(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(x)))
	for r > 0 && r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}
	return r
}

func (a Q16) String() string {
	return strconv.FormatFloat(a.Float(), 'g', -1, 64)
}
