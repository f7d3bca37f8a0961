package primitive

import (
	"github.com/voxelforge/implicit/reflectparam"
	"github.com/voxelforge/implicit/scalar"
)

// Gyroid is the distance function of a triply periodic minimal-surface
// approximation with independent period lengths per axis (spec.md §6):
//
//	sin(kx·x)cos(ky·y) + sin(ky·y)cos(kz·z) + sin(kz·z)cos(kx·x), kᵢ=2π/Lᵢ
//
// When Linear is set, the raw value is remapped through
// scale·asin(clamp(v,±1))/(π/2), scale = min(Lx,Ly,Lz)/2, which trades the
// surface's natural curvature for an approximately uniform distance
// gradient near the zero isosurface.
type Gyroid[T scalar.Float] struct {
	LengthX, LengthY, LengthZ T
	Linear                    bool
}

// NewGyroid constructs a Gyroid with independent period lengths.
func NewGyroid[T scalar.Float](lx, ly, lz T, linear bool) *Gyroid[T] {
	return &Gyroid[T]{LengthX: lx, LengthY: ly, LengthZ: lz, Linear: linear}
}

// NewGyroidUniform constructs a Gyroid with equal period length on all axes.
func NewGyroidUniform[T scalar.Float](length T, linear bool) *Gyroid[T] {
	return NewGyroid(length, length, length, linear)
}

// Eval implements model.ImplicitFunction.
func (g *Gyroid[T]) Eval(x, y, z T) T {
	two := scalar.FromInt[T](2)
	kx := two * scalar.Pi[T]() * x / g.LengthX
	ky := two * scalar.Pi[T]() * y / g.LengthY
	kz := two * scalar.Pi[T]() * z / g.LengthZ

	raw := scalar.Sin(kx)*scalar.Cos(ky) + scalar.Sin(ky)*scalar.Cos(kz) + scalar.Sin(kz)*scalar.Cos(kx)

	if !g.Linear {
		return raw
	}
	scale := scalar.Min(scalar.Min(g.LengthX, g.LengthY), g.LengthZ) / two
	one := scalar.FromInt[T](1)
	return scale * scalar.Asin(scalar.Clamp(raw, -one, one)) / (scalar.Pi[T]() / two)
}

// Describe implements reflectparam.Reflectable.
func (g *Gyroid[T]) Describe() []reflectparam.ParamDescriptor {
	return []reflectparam.ParamDescriptor{
		{Name: "length_x", Kind: reflectparam.ParamScalar},
		{Name: "length_y", Kind: reflectparam.ParamScalar},
		{Name: "length_z", Kind: reflectparam.ParamScalar},
		{Name: "linear", Kind: reflectparam.ParamBool},
	}
}

// Get implements reflectparam.Reflectable.
func (g *Gyroid[T]) Get(name string) (any, bool) {
	switch name {
	case "length_x":
		return float64(g.LengthX), true
	case "length_y":
		return float64(g.LengthY), true
	case "length_z":
		return float64(g.LengthZ), true
	case "linear":
		return g.Linear, true
	default:
		return nil, false
	}
}

// Set implements reflectparam.Reflectable.
func (g *Gyroid[T]) Set(name string, value any) error {
	switch name {
	case "length_x", "length_y", "length_z":
		v, ok := value.(float64)
		if !ok {
			return &reflectparam.ParamTypeError{Name: name, Want: reflectparam.ParamScalar}
		}
		switch name {
		case "length_x":
			g.LengthX = T(v)
		case "length_y":
			g.LengthY = T(v)
		case "length_z":
			g.LengthZ = T(v)
		}
		return nil
	case "linear":
		v, ok := value.(bool)
		if !ok {
			return &reflectparam.ParamTypeError{Name: name, Want: reflectparam.ParamBool}
		}
		g.Linear = v
		return nil
	default:
		return &reflectparam.UnknownParamError{Name: name}
	}
}
