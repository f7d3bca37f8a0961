package primitive

import "github.com/voxelforge/implicit/scalar"

// XDomain remaps the x coordinate into [0,1] over [Min,Max] for use as an
// input to downstream operations (spec.md §6); values outside the range
// extrapolate rather than clamp.
type XDomain[T scalar.Float] struct{ Min, Max T }

// NewXDomain constructs a remapped XDomain.
func NewXDomain[T scalar.Float](min, max T) *XDomain[T] { return &XDomain[T]{Min: min, Max: max} }

// NewXDomainNatural constructs an XDomain remapping [0,1] to itself.
func NewXDomainNatural[T scalar.Float]() *XDomain[T] {
	return &XDomain[T]{Min: 0, Max: scalar.FromInt[T](1)}
}

// Eval implements model.ImplicitFunction.
func (d *XDomain[T]) Eval(x, _, _ T) T { return normalize(x, d.Min, d.Max) }

// YDomain remaps the y coordinate into [0,1] over [Min,Max].
type YDomain[T scalar.Float] struct{ Min, Max T }

// NewYDomain constructs a remapped YDomain.
func NewYDomain[T scalar.Float](min, max T) *YDomain[T] { return &YDomain[T]{Min: min, Max: max} }

// NewYDomainNatural constructs a YDomain remapping [0,1] to itself.
func NewYDomainNatural[T scalar.Float]() *YDomain[T] {
	return &YDomain[T]{Min: 0, Max: scalar.FromInt[T](1)}
}

// Eval implements model.ImplicitFunction.
func (d *YDomain[T]) Eval(_, y, _ T) T { return normalize(y, d.Min, d.Max) }

// ZDomain remaps the z coordinate into [0,1] over [Min,Max].
type ZDomain[T scalar.Float] struct{ Min, Max T }

// NewZDomain constructs a remapped ZDomain.
func NewZDomain[T scalar.Float](min, max T) *ZDomain[T] { return &ZDomain[T]{Min: min, Max: max} }

// NewZDomainNatural constructs a ZDomain remapping [0,1] to itself.
func NewZDomainNatural[T scalar.Float]() *ZDomain[T] {
	return &ZDomain[T]{Min: 0, Max: scalar.FromInt[T](1)}
}

// Eval implements model.ImplicitFunction.
func (d *ZDomain[T]) Eval(_, _, z T) T { return normalize(z, d.Min, d.Max) }

func normalize[T scalar.Float](value, min, max T) T {
	return (value - min) / (max - min)
}
