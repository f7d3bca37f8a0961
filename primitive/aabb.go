package primitive

import (
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/scalar"
)

// AABB is the signed distance function of an axis-aligned box: negative
// inside, zero on the boundary, positive outside (spec.md §6).
type AABB[T scalar.Float] struct {
	Bounds geometry.BoundingBox[T]
}

// NewAABB constructs an AABB from its min/max corners.
func NewAABB[T scalar.Float](min, max geometry.Vec3[T]) *AABB[T] {
	return &AABB[T]{Bounds: geometry.NewBoundingBox(min, max)}
}

// NewAABBFromSize constructs a cube AABB with the given origin corner and
// uniform edge length.
func NewAABBFromSize[T scalar.Float](origin geometry.Vec3[T], size T) *AABB[T] {
	max := geometry.NewVec3(origin.X+size, origin.Y+size, origin.Z+size)
	return NewAABB(origin, max)
}

// Eval implements model.ImplicitFunction.
func (a *AABB[T]) Eval(x, y, z T) T {
	return a.Bounds.SignedDistance(geometry.NewVec3(x, y, z))
}
