package vec

import (
	"math"
	"strconv"
)

// Scalar is the full capability set a component type has to provide. It is
// deliberately minimal: component-wise arithmetic, negation, ordering,
// equality, a square root for Len/Norm, and a textual form for String.
//
// Overflow, NaN and division-by-zero behavior are whatever the concrete T
// does; the vector types never add checks on top.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Eq(T) bool
	Lt(T) bool
	Sqrt() T
	String() string
}

// F64 is float64 with the Scalar method set. IEEE semantics pass through
// untouched: Sqrt of a negative is NaN, Div by zero is ±Inf.
type F64 float64

func (a F64) Add(b F64) F64 { return a + b }
func (a F64) Sub(b F64) F64 { return a - b }
func (a F64) Mul(b F64) F64 { return a * b }
func (a F64) Div(b F64) F64 { return a / b }
func (a F64) Neg() F64      { return -a }
func (a F64) Eq(b F64) bool { return a == b }
func (a F64) Lt(b F64) bool { return a < b }

func (a F64) Sqrt() F64 {
	return F64(math.Sqrt(float64(a)))
}

func (a F64) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

// F32 is float32 with the Scalar method set.
type F32 float32

func (a F32) Add(b F32) F32 { return a + b }
func (a F32) Sub(b F32) F32 { return a - b }
func (a F32) Mul(b F32) F32 { return a * b }
func (a F32) Div(b F32) F32 { return a / b }
func (a F32) Neg() F32      { return -a }
func (a F32) Eq(b F32) bool { return a == b }
func (a F32) Lt(b F32) bool { return a < b }

func (a F32) Sqrt() F32 {
	return F32(math.Sqrt(float64(a)))
}

func (a F32) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 32)
}

func abs[T Scalar[T]](a T) T {
	var zero T
	if a.Lt(zero) {
		return a.Neg()
	}
	return a
}
