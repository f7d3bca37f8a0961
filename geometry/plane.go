package geometry

import "github.com/voxelforge/implicit/scalar"

// Plane is an oriented plane in 3-space described by a point on the plane
// and a (not necessarily normalized) normal direction.
type Plane[T scalar.Float] struct {
	Origin Vec3[T]
	Normal Vec3[T]
}

// NewPlane constructs a Plane from a point and a normal direction. The
// normal is normalized on construction.
//
// Parameters:
//   - origin: a point on the plane
//   - normal: the plane's normal direction (need not be unit length)
//
// Returns:
//   - Plane[T]: the constructed plane, with a unit normal
func NewPlane[T scalar.Float](origin, normal Vec3[T]) Plane[T] {
	return Plane[T]{Origin: origin, Normal: normal.Normalize()}
}

// SignedDistance returns n̂·(p - origin), the signed distance from p to the
// plane along its normal.
func (p Plane[T]) SignedDistance(q Vec3[T]) T {
	return p.Normal.Dot(q.Sub(p.Origin))
}
