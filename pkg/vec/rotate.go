package vec

import "math"

// Rotation needs sin/cos, which the Scalar capability set leaves out on
// purpose: there is no honest trig for an arbitrary fixed-point type. So
// rotation lives here as float-only package functions instead of methods.

// Rotated returns v rotated counter-clockwise by theta radians.
func Rotated(v Vec2[F64], theta F64) Vec2[F64] {
	c := F64(math.Cos(float64(theta)))
	s := F64(math.Sin(float64(theta)))

	x := v.X().Mul(c).Sub(v.Y().Mul(s))
	y := v.X().Mul(s).Add(v.Y().Mul(c))
	return NewVec2([2]F64{x, y})
}

// Rotatedf is Rotated for F32 vectors.
func Rotatedf(v Vec2[F32], theta F32) Vec2[F32] {
	c := F32(math.Cos(float64(theta)))
	s := F32(math.Sin(float64(theta)))

	x := v.X().Mul(c).Sub(v.Y().Mul(s))
	y := v.X().Mul(s).Add(v.Y().Mul(c))
	return NewVec2([2]F32{x, y})
}
