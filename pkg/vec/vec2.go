package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroVector comes back from Norm, Project and ScalarProject when
	// the relevant magnitude is zero. Returned for every scalar type,
	// floats included: fixed-point has no NaN to hide behind, so the
	// degenerate case is always an explicit error.
	ErrZeroVector = errors.New("zero magnitude vector")

	// ErrDimensionMismatch comes back from the FromSlice constructors when
	// the input length does not match the vector dimension.
	ErrDimensionMismatch = errors.New("component count does not match vector dimension")
)

// Vec2 is an immutable 2D vector over any Scalar. Every operation returns a
// new value; nothing mutates the receiver.
type Vec2[T Scalar[T]] struct {
	inner [2]T
}

func NewVec2[T Scalar[T]](inner [2]T) Vec2[T] {
	return Vec2[T]{inner: inner}
}

// Vec2FromSlice builds a Vec2 from a runtime-sized slice. Anything other
// than exactly two components is ErrDimensionMismatch, never a truncation.
func Vec2FromSlice[T Scalar[T]](components []T) (Vec2[T], error) {
	if len(components) != 2 {
		return Vec2[T]{}, fmt.Errorf("want 2 components, got %d: %w", len(components), ErrDimensionMismatch)
	}
	return Vec2[T]{inner: [2]T{components[0], components[1]}}, nil
}

func Zero2[T Scalar[T]]() Vec2[T] {
	return Vec2[T]{}
}

func (v Vec2[T]) X() T { return v.inner[0] }
func (v Vec2[T]) Y() T { return v.inner[1] }

func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return NewVec2([2]T{v.X().Add(other.X()), v.Y().Add(other.Y())})
}

func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return NewVec2([2]T{v.X().Sub(other.X()), v.Y().Sub(other.Y())})
}

// Mul is the component-wise product, not the dot product.
func (v Vec2[T]) Mul(other Vec2[T]) Vec2[T] {
	return NewVec2([2]T{v.X().Mul(other.X()), v.Y().Mul(other.Y())})
}

func (v Vec2[T]) Scale(d T) Vec2[T] {
	return NewVec2([2]T{v.X().Mul(d), v.Y().Mul(d)})
}

func (v Vec2[T]) Div(d T) Vec2[T] {
	return NewVec2([2]T{v.X().Div(d), v.Y().Div(d)})
}

func (v Vec2[T]) TranslateBy(x, y T) Vec2[T] {
	return NewVec2([2]T{v.X().Add(x), v.Y().Add(y)})
}

func (v Vec2[T]) Neg() Vec2[T] {
	return NewVec2([2]T{v.X().Neg(), v.Y().Neg()})
}

func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v.X().Mul(other.X()).Add(v.Y().Mul(other.Y()))
}

// Cross is the z component of the 3D cross product of the two vectors
// lifted into the plane.
func (v Vec2[T]) Cross(other Vec2[T]) T {
	return v.X().Mul(other.Y()).Sub(v.Y().Mul(other.X()))
}

func (v Vec2[T]) CrossSq(other Vec2[T]) T {
	c := v.Cross(other)
	return c.Mul(c)
}

func (v Vec2[T]) Sum() T {
	return v.X().Add(v.Y())
}

func (v Vec2[T]) L1Norm() T {
	return abs(v.X()).Add(abs(v.Y()))
}

func (v Vec2[T]) LenSq() T {
	return v.Dot(v)
}

func (v Vec2[T]) Len() T {
	return v.LenSq().Sqrt()
}

// Norm returns the unit vector pointing the same way as v, or
// ErrZeroVector when v has no direction to point in.
func (v Vec2[T]) Norm() (Vec2[T], error) {
	length := v.Len()
	var zero T
	if length.Eq(zero) {
		return Vec2[T]{}, ErrZeroVector
	}
	return v.Div(length), nil
}

// ScalarProject returns the ratio of v's shadow on `onto` to `onto` itself,
// i.e. (v·onto)/(onto·onto).
func (v Vec2[T]) ScalarProject(onto Vec2[T]) (T, error) {
	var zero T
	bb := onto.Dot(onto)
	if bb.Eq(zero) {
		return zero, ErrZeroVector
	}
	return v.Dot(onto).Div(bb), nil
}

func (v Vec2[T]) Project(onto Vec2[T]) (Vec2[T], error) {
	scalar, err := v.ScalarProject(onto)
	if err != nil {
		return Vec2[T]{}, err
	}
	return onto.Scale(scalar), nil
}

func (v Vec2[T]) Eq(other Vec2[T]) bool {
	return v.X().Eq(other.X()) && v.Y().Eq(other.Y())
}

func (v Vec2[T]) IsZero() bool {
	return v.Eq(Zero2[T]())
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%s, %s)", v.X(), v.Y())
}
