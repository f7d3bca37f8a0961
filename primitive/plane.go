package primitive

import (
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/scalar"
)

// Plane is the distance function of an infinite plane through Origin with
// unit Normal: positive on the side the normal points toward.
type Plane[T scalar.Float] struct {
	geom geometry.Plane[T]
}

// NewPlane constructs a Plane; normal need not be pre-normalized.
func NewPlane[T scalar.Float](origin, normal geometry.Vec3[T]) *Plane[T] {
	return &Plane[T]{geom: geometry.NewPlane(origin, normal)}
}

// Eval implements model.ImplicitFunction.
func (p *Plane[T]) Eval(x, y, z T) T {
	return p.geom.SignedDistance(geometry.NewVec3(x, y, z))
}
