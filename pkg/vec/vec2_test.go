package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"xyzvec.dev/pkg/fixed"
	"xyzvec.dev/pkg/vec"
)

var V = func(x, y float64) vec.Vec2[vec.F64] {
	return vec.NewVec2([2]vec.F64{vec.F64(x), vec.F64(y)})
}

func TestVec2Init(t *testing.T) {
	v := V(1.0, 2.0)
	require.Equal(t, vec.F64(1.0), v.X())
	require.Equal(t, vec.F64(2.0), v.Y())
	require.Equal(t, v, V(1.0, 2.0))
	require.True(t, vec.Zero2[vec.F64]().IsZero())
}

func TestVec2FromSlice(t *testing.T) {
	v, err := vec.Vec2FromSlice([]vec.F64{3.0, 4.0})
	require.NoError(t, err)
	require.Equal(t, V(3.0, 4.0), v)

	_, err = vec.Vec2FromSlice([]vec.F64{1.0, 2.0, 3.0})
	require.ErrorIs(t, err, vec.ErrDimensionMismatch)
	_, err = vec.Vec2FromSlice[vec.F64](nil)
	require.ErrorIs(t, err, vec.ErrDimensionMismatch)
}

func TestVec2Operations(t *testing.T) {
	v := V(1.0, 2.0)
	vecLen := vec.F64(math.Sqrt(1 + 4))
	require.Equal(t, V(69, 69), v.Add(V(68.0, 67.0)))
	require.Equal(t, V(-3.0, -1.5), v.Sub(V(4, 3.5)))
	require.Equal(t, V(3.5, 8.69), v.Mul(V(3.5, 4.345)))
	require.Equal(t, V(4, 8), v.Scale(4))
	require.Equal(t, V(0.5, 1), v.Div(2))
	require.Equal(t, V(2.0, 0.5), V(1.0, -0.5).TranslateBy(1.0, 1.0))
	require.Equal(t, V(-1.0, 0.5), V(1.0, -0.5).Neg())
	require.Equal(t, vecLen, v.Len())
	require.Equal(t, vec.F64(5.0), v.LenSq())

	norm, err := v.Norm()
	require.NoError(t, err)
	require.Equal(t, V(1.0/float64(vecLen), 2.0/float64(vecLen)), norm)
}

func TestVec2AlgebraicLaws(t *testing.T) {
	a := V(1.5, -2.0)
	b := V(0.25, 4.0)
	c := V(-3.0, 0.5)

	require.Equal(t, b.Add(a), a.Add(b))
	require.Equal(t, a.Add(b.Add(c)), a.Add(b).Add(c))
	require.Equal(t, a, a.Scale(1))
	require.Equal(t, vec.Zero2[vec.F64](), a.Scale(0))
	require.Equal(t, b.Dot(a), a.Dot(b))
}

func TestVec2DotAndLenExample(t *testing.T) {
	v := V(3.0, 4.0)
	require.Equal(t, vec.F64(25.0), v.Dot(v))
	require.Equal(t, vec.F64(5.0), v.Len())

	norm, err := v.Norm()
	require.NoError(t, err)
	require.InDelta(t, 1.0, float64(norm.Len()), 1e-12)
}

func TestVec2NormZeroVector(t *testing.T) {
	_, err := vec.Zero2[vec.F64]().Norm()
	require.ErrorIs(t, err, vec.ErrZeroVector)
}

func TestVec2CrossProduct(t *testing.T) {
	v := V(1.0, -0.5)
	w := V(-2.0, 0.0)
	require.Equal(t, vec.F64(-1.0), v.Cross(w))
	require.Equal(t, vec.F64(1.0), v.CrossSq(w))
	require.Equal(t, vec.F64(-2.0), v.Dot(w))

	// parallel vectors have zero cross product
	require.Equal(t, vec.F64(0.0), V(1.0, 2.0).Cross(V(2.0, 4.0)))
}

func TestVec2Projection(t *testing.T) {
	v := V(1.0, 2.0)
	w := V(2.0, 4.0)

	scalar, err := v.ScalarProject(w)
	require.NoError(t, err)
	require.Equal(t, vec.F64(0.5), scalar)

	proj, err := v.Project(w)
	require.NoError(t, err)
	require.Equal(t, v, proj)

	_, err = v.ScalarProject(vec.Zero2[vec.F64]())
	require.ErrorIs(t, err, vec.ErrZeroVector)
	_, err = v.Project(vec.Zero2[vec.F64]())
	require.ErrorIs(t, err, vec.ErrZeroVector)
}

func TestVec2SumAndNorms(t *testing.T) {
	v := V(1.0, -0.5)
	require.Equal(t, vec.F64(0.5), v.Sum())
	require.Equal(t, vec.F64(1.5), v.L1Norm())
	require.Equal(t, vec.F64(1.25), v.LenSq())
	require.Equal(t, vec.F64(math.Sqrt(1.25)), v.Len())
}

func TestVec2String(t *testing.T) {
	require.Equal(t, "(5, 7)", V(5.0, 7.0).String())
	require.Equal(t, "(1.5, -0.5)", V(1.5, -0.5).String())
}

func TestVec2Rotated(t *testing.T) {
	v := V(1.0, 0.0)

	r := vec.Rotated(v, vec.F64(math.Pi/2))
	require.InDelta(t, 0.0, float64(r.X()), 1e-12)
	require.InDelta(t, 1.0, float64(r.Y()), 1e-12)

	r = vec.Rotated(v, vec.F64(math.Pi))
	require.InDelta(t, -1.0, float64(r.X()), 1e-12)
	require.InDelta(t, 0.0, float64(r.Y()), 1e-12)

	require.Equal(t, vec.Zero2[vec.F64](), vec.Rotated(vec.Zero2[vec.F64](), 1.0))
}

var Q = fixed.FromFloat

var VQ = func(x, y float64) vec.Vec2[fixed.Q16] {
	return vec.NewVec2([2]fixed.Q16{Q(x), Q(y)})
}

func TestVec2FixedPoint(t *testing.T) {
	v := VQ(1.0, -0.5)
	require.Equal(t, VQ(5.0, -2.5), v.Scale(Q(5.0)))
	require.Equal(t, VQ(4.0, -2.0), v.Div(Q(0.25)))
	require.Equal(t, VQ(2.0, 0.5), v.TranslateBy(Q(1.0), Q(1.0)))

	w := VQ(-2.0, 0.0)
	require.Equal(t, Q(-2.0), v.Dot(w))
	require.Equal(t, Q(-1.0), v.Cross(w))
	require.Equal(t, Q(1.25), v.LenSq())

	require.Equal(t, Q(5.0), VQ(3.0, 4.0).Len())

	_, err := vec.Zero2[fixed.Q16]().Norm()
	require.ErrorIs(t, err, vec.ErrZeroVector)

	norm, err := VQ(3.0, 0.0).Norm()
	require.NoError(t, err)
	require.Equal(t, VQ(1.0, 0.0), norm)
}

func TestAABB(t *testing.T) {
	box := vec.AABB[vec.F64]{Min: V(0, 0), Max: V(10, 10)}

	require.True(t, box.Intersect(vec.AABB[vec.F64]{Min: V(5, 5), Max: V(15, 15)}))
	require.False(t, box.Intersect(vec.AABB[vec.F64]{Min: V(11, 11), Max: V(15, 15)}))

	require.True(t, box.Contains(V(5, 5)))
	require.False(t, box.Contains(V(5, 11)))
}
