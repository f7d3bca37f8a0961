package primitive

import (
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/scalar"
)

// Capsule is the distance function of a capsule: the swept volume of a
// sphere of the given Radius along the segment from Start to End.
type Capsule[T scalar.Float] struct {
	Start  geometry.Vec3[T]
	End    geometry.Vec3[T]
	Radius T
}

// NewCapsule constructs a Capsule from its centre-line endpoints and radius.
func NewCapsule[T scalar.Float](start, end geometry.Vec3[T], radius T) *Capsule[T] {
	return &Capsule[T]{Start: start, End: end, Radius: radius}
}

// Eval implements model.ImplicitFunction: the distance from (x,y,z) to the
// closest point of the clamped centre-line segment, minus Radius.
func (c *Capsule[T]) Eval(x, y, z T) T {
	pt := geometry.NewVec3(x, y, z)
	axis := c.End.Sub(c.Start)
	length := axis.Length()

	var zero T
	if length == zero {
		return pt.DistanceTo(c.Start) - c.Radius
	}

	dir := axis.Mul(1 / length)
	t := scalar.Clamp(pt.Sub(c.Start).Dot(dir), zero, length)
	closest := c.Start.Add(dir.Mul(t))
	return pt.DistanceTo(closest) - c.Radius
}
