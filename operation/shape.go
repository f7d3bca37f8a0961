package operation

import (
	"github.com/voxelforge/implicit/reflectparam"
	"github.com/voxelforge/implicit/scalar"
)

// Offset shifts an isosurface outward by Distance: inputs[0] - Distance.
// A positive Distance grows the solid; a negative one shrinks it.
type Offset[T scalar.Float] struct {
	Distance T
}

// NewOffset constructs an Offset operation.
func NewOffset[T scalar.Float](distance T) *Offset[T] { return &Offset[T]{Distance: distance} }

// Eval implements model.ImplicitOperation.
func (o *Offset[T]) Eval(inputs []T) T { return inputs[0] - o.Distance }

// Arity implements model.ImplicitOperation.
func (o *Offset[T]) Arity() int { return 1 }

// Describe implements reflectparam.Reflectable.
func (o *Offset[T]) Describe() []reflectparam.ParamDescriptor {
	return []reflectparam.ParamDescriptor{{Name: "distance", Kind: reflectparam.ParamScalar}}
}

// Get implements reflectparam.Reflectable.
func (o *Offset[T]) Get(name string) (any, bool) {
	if name != "distance" {
		return nil, false
	}
	return float64(o.Distance), true
}

// Set implements reflectparam.Reflectable.
func (o *Offset[T]) Set(name string, value any) error {
	if name != "distance" {
		return &reflectparam.UnknownParamError{Name: name}
	}
	v, ok := value.(float64)
	if !ok {
		return &reflectparam.ParamTypeError{Name: name, Want: reflectparam.ParamScalar}
	}
	o.Distance = T(v)
	return nil
}

// Thickness turns a surface (inputs[0] == 0) into a shell of the given
// wall Thickness, centred on the original surface:
//
//	max(inputs[0] - t/2, -(inputs[0] + t/2))
type Thickness[T scalar.Float] struct {
	Wall T
}

// NewThickness constructs a Thickness operation with the given wall thickness.
func NewThickness[T scalar.Float](wall T) *Thickness[T] { return &Thickness[T]{Wall: wall} }

// Eval implements model.ImplicitOperation.
func (t *Thickness[T]) Eval(inputs []T) T {
	two := scalar.FromInt[T](2)
	half := t.Wall / two
	return scalar.Max(inputs[0]-half, -(inputs[0] + half))
}

// Arity implements model.ImplicitOperation.
func (t *Thickness[T]) Arity() int { return 1 }

// Describe implements reflectparam.Reflectable.
func (t *Thickness[T]) Describe() []reflectparam.ParamDescriptor {
	return []reflectparam.ParamDescriptor{{Name: "wall", Kind: reflectparam.ParamScalar}}
}

// Get implements reflectparam.Reflectable.
func (t *Thickness[T]) Get(name string) (any, bool) {
	if name != "wall" {
		return nil, false
	}
	return float64(t.Wall), true
}

// Set implements reflectparam.Reflectable.
func (t *Thickness[T]) Set(name string, value any) error {
	if name != "wall" {
		return &reflectparam.UnknownParamError{Name: name}
	}
	v, ok := value.(float64)
	if !ok {
		return &reflectparam.ParamTypeError{Name: name, Want: reflectparam.ParamScalar}
	}
	t.Wall = T(v)
	return nil
}
