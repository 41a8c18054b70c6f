package vec

import "fmt"

// Vec3 is the 3D counterpart of Vec2. Same value semantics, same Scalar
// bound; mixing Vec2 and Vec3 operands is a compile error rather than a
// runtime dimension check.
type Vec3[T Scalar[T]] struct {
	inner [3]T
}

func NewVec3[T Scalar[T]](inner [3]T) Vec3[T] {
	return Vec3[T]{inner: inner}
}

func Vec3FromSlice[T Scalar[T]](components []T) (Vec3[T], error) {
	if len(components) != 3 {
		return Vec3[T]{}, fmt.Errorf("want 3 components, got %d: %w", len(components), ErrDimensionMismatch)
	}
	return Vec3[T]{inner: [3]T{components[0], components[1], components[2]}}, nil
}

func Zero3[T Scalar[T]]() Vec3[T] {
	return Vec3[T]{}
}

func (v Vec3[T]) X() T { return v.inner[0] }
func (v Vec3[T]) Y() T { return v.inner[1] }
func (v Vec3[T]) Z() T { return v.inner[2] }

func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return NewVec3([3]T{
		v.X().Add(other.X()),
		v.Y().Add(other.Y()),
		v.Z().Add(other.Z()),
	})
}

func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return NewVec3([3]T{
		v.X().Sub(other.X()),
		v.Y().Sub(other.Y()),
		v.Z().Sub(other.Z()),
	})
}

func (v Vec3[T]) Mul(other Vec3[T]) Vec3[T] {
	return NewVec3([3]T{
		v.X().Mul(other.X()),
		v.Y().Mul(other.Y()),
		v.Z().Mul(other.Z()),
	})
}

func (v Vec3[T]) Scale(d T) Vec3[T] {
	return NewVec3([3]T{v.X().Mul(d), v.Y().Mul(d), v.Z().Mul(d)})
}

func (v Vec3[T]) Div(d T) Vec3[T] {
	return NewVec3([3]T{v.X().Div(d), v.Y().Div(d), v.Z().Div(d)})
}

func (v Vec3[T]) TranslateBy(x, y, z T) Vec3[T] {
	return NewVec3([3]T{v.X().Add(x), v.Y().Add(y), v.Z().Add(z)})
}

func (v Vec3[T]) Neg() Vec3[T] {
	return NewVec3([3]T{v.X().Neg(), v.Y().Neg(), v.Z().Neg()})
}

func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X().Mul(other.X()).
		Add(v.Y().Mul(other.Y())).
		Add(v.Z().Mul(other.Z()))
}

// Cross is the right-handed cross product: the result is orthogonal to both
// operands.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return NewVec3([3]T{
		v.Y().Mul(other.Z()).Sub(v.Z().Mul(other.Y())),
		v.Z().Mul(other.X()).Sub(v.X().Mul(other.Z())),
		v.X().Mul(other.Y()).Sub(v.Y().Mul(other.X())),
	})
}

func (v Vec3[T]) CrossLenSq(other Vec3[T]) T {
	return v.Cross(other).LenSq()
}

func (v Vec3[T]) Sum() T {
	return v.X().Add(v.Y()).Add(v.Z())
}

func (v Vec3[T]) L1Norm() T {
	return abs(v.X()).Add(abs(v.Y())).Add(abs(v.Z()))
}

func (v Vec3[T]) LenSq() T {
	return v.Dot(v)
}

func (v Vec3[T]) Len() T {
	return v.LenSq().Sqrt()
}

func (v Vec3[T]) Norm() (Vec3[T], error) {
	length := v.Len()
	var zero T
	if length.Eq(zero) {
		return Vec3[T]{}, ErrZeroVector
	}
	return v.Div(length), nil
}

func (v Vec3[T]) ScalarProject(onto Vec3[T]) (T, error) {
	var zero T
	bb := onto.Dot(onto)
	if bb.Eq(zero) {
		return zero, ErrZeroVector
	}
	return v.Dot(onto).Div(bb), nil
}

func (v Vec3[T]) Project(onto Vec3[T]) (Vec3[T], error) {
	scalar, err := v.ScalarProject(onto)
	if err != nil {
		return Vec3[T]{}, err
	}
	return onto.Scale(scalar), nil
}

func (v Vec3[T]) Eq(other Vec3[T]) bool {
	return v.X().Eq(other.X()) && v.Y().Eq(other.Y()) && v.Z().Eq(other.Z())
}

func (v Vec3[T]) IsZero() bool {
	return v.Eq(Zero3[T]())
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%s, %s, %s)", v.X(), v.Y(), v.Z())
}
