package primitive

import (
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/reflectparam"
	"github.com/voxelforge/implicit/scalar"
)

// Torus is the distance function of a torus centred at Centre, with major
// radius R (the distance from the centre line to the tube's centre) and
// minor radius Thickness (the tube's radius, t below):
//
//	(R − √((x−cx)² + (z−cz)²))² + (y−cy)² − t²
//
// This is not a Euclidean signed distance away from the surface.
type Torus[T scalar.Float] struct {
	Centre    geometry.Vec3[T]
	R         T
	Thickness T
}

// NewTorus constructs a Torus.
func NewTorus[T scalar.Float](centre geometry.Vec3[T], r, thickness T) *Torus[T] {
	return &Torus[T]{Centre: centre, R: r, Thickness: thickness}
}

// Eval implements model.ImplicitFunction.
func (t *Torus[T]) Eval(x, y, z T) T {
	dx := x - t.Centre.X
	dz := z - t.Centre.Z
	dy := y - t.Centre.Y
	q := t.R - scalar.Sqrt(dx*dx+dz*dz)
	return q*q + dy*dy - t.Thickness*t.Thickness
}

// Describe implements reflectparam.Reflectable.
func (t *Torus[T]) Describe() []reflectparam.ParamDescriptor {
	return []reflectparam.ParamDescriptor{
		{Name: "centre", Kind: reflectparam.ParamVec3},
		{Name: "r", Kind: reflectparam.ParamScalar},
		{Name: "thickness", Kind: reflectparam.ParamScalar},
	}
}

// Get implements reflectparam.Reflectable.
func (t *Torus[T]) Get(name string) (any, bool) {
	switch name {
	case "centre":
		return [3]float64{float64(t.Centre.X), float64(t.Centre.Y), float64(t.Centre.Z)}, true
	case "r":
		return float64(t.R), true
	case "thickness":
		return float64(t.Thickness), true
	default:
		return nil, false
	}
}

// Set implements reflectparam.Reflectable.
func (t *Torus[T]) Set(name string, value any) error {
	switch name {
	case "centre":
		v, ok := value.([3]float64)
		if !ok {
			return &reflectparam.ParamTypeError{Name: name, Want: reflectparam.ParamVec3}
		}
		t.Centre = geometry.NewVec3(T(v[0]), T(v[1]), T(v[2]))
		return nil
	case "r":
		v, ok := value.(float64)
		if !ok {
			return &reflectparam.ParamTypeError{Name: name, Want: reflectparam.ParamScalar}
		}
		t.R = T(v)
		return nil
	case "thickness":
		v, ok := value.(float64)
		if !ok {
			return &reflectparam.ParamTypeError{Name: name, Want: reflectparam.ParamScalar}
		}
		t.Thickness = T(v)
		return nil
	default:
		return &reflectparam.UnknownParamError{Name: name}
	}
}
