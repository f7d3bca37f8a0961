package operation

import "github.com/voxelforge/implicit/scalar"

// Union computes min(inputs[0], inputs[1]): the combined solid occupies
// wherever either input is inside.
type Union[T scalar.Float] struct{}

// Eval implements model.ImplicitOperation.
func (Union[T]) Eval(inputs []T) T { return scalar.Min(inputs[0], inputs[1]) }

// Arity implements model.ImplicitOperation.
func (Union[T]) Arity() int { return 2 }

// Intersection computes max(inputs[0], inputs[1]): the combined solid
// occupies only where both inputs are inside.
type Intersection[T scalar.Float] struct{}

// Eval implements model.ImplicitOperation.
func (Intersection[T]) Eval(inputs []T) T { return scalar.Max(inputs[0], inputs[1]) }

// Arity implements model.ImplicitOperation.
func (Intersection[T]) Arity() int { return 2 }

// Difference computes max(inputs[0], -inputs[1]): the first input with
// the second input's solid volume carved out of it.
type Difference[T scalar.Float] struct{}

// Eval implements model.ImplicitOperation.
func (Difference[T]) Eval(inputs []T) T { return scalar.Max(inputs[0], -inputs[1]) }

// Arity implements model.ImplicitOperation.
func (Difference[T]) Arity() int { return 2 }
