// Package primitive implements the fixed catalogue of distance functions
// every ImplicitModel is built from: spheres, tori, capsules, planes,
// axis-aligned boxes and the triply periodic minimal-surface
// approximations (gyroid, Schwarz-P, Neovius), plus the three coordinate
// domain functions used to remap x/y/z into [0,1] for downstream
// operations (spec.md §6).
package primitive

import (
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/reflectparam"
	"github.com/voxelforge/implicit/scalar"
)

// Sphere is the distance function of a sphere centred at Centre with the
// given Radius: ‖(x,y,z)−Centre‖ − Radius.
type Sphere[T scalar.Float] struct {
	Centre geometry.Vec3[T]
	Radius T
}

// NewSphere constructs a Sphere.
func NewSphere[T scalar.Float](centre geometry.Vec3[T], radius T) *Sphere[T] {
	return &Sphere[T]{Centre: centre, Radius: radius}
}

// Eval implements model.ImplicitFunction.
func (s *Sphere[T]) Eval(x, y, z T) T {
	return geometry.NewVec3(x, y, z).DistanceTo(s.Centre) - s.Radius
}

// Describe implements reflectparam.Reflectable.
func (s *Sphere[T]) Describe() []reflectparam.ParamDescriptor {
	return []reflectparam.ParamDescriptor{
		{Name: "centre", Kind: reflectparam.ParamVec3},
		{Name: "radius", Kind: reflectparam.ParamScalar},
	}
}

// Get implements reflectparam.Reflectable.
func (s *Sphere[T]) Get(name string) (any, bool) {
	switch name {
	case "centre":
		return [3]float64{float64(s.Centre.X), float64(s.Centre.Y), float64(s.Centre.Z)}, true
	case "radius":
		return float64(s.Radius), true
	default:
		return nil, false
	}
}

// Set implements reflectparam.Reflectable.
func (s *Sphere[T]) Set(name string, value any) error {
	switch name {
	case "centre":
		v, ok := value.([3]float64)
		if !ok {
			return &reflectparam.ParamTypeError{Name: name, Want: reflectparam.ParamVec3}
		}
		s.Centre = geometry.NewVec3(T(v[0]), T(v[1]), T(v[2]))
		return nil
	case "radius":
		v, ok := value.(float64)
		if !ok {
			return &reflectparam.ParamTypeError{Name: name, Want: reflectparam.ParamScalar}
		}
		s.Radius = T(v)
		return nil
	default:
		return &reflectparam.UnknownParamError{Name: name}
	}
}
