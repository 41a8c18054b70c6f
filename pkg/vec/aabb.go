package vec

// AABB is an axis-aligned bounding box over any Scalar.
type AABB[T Scalar[T]] struct {
	Min, Max Vec2[T]
}

func (a AABB[T]) Intersect(b AABB[T]) bool {
	return a.Min.X().Lt(b.Max.X()) && b.Min.X().Lt(a.Max.X()) &&
		a.Min.Y().Lt(b.Max.Y()) && b.Min.Y().Lt(a.Max.Y())
}

func (a AABB[T]) Contains(p Vec2[T]) bool {
	return a.Min.X().Lt(p.X()) && p.X().Lt(a.Max.X()) &&
		a.Min.Y().Lt(p.Y()) && p.Y().Lt(a.Max.Y())
}
