package operation

import "github.com/voxelforge/implicit/scalar"

// LinearInterpolation blends inputs[0] and inputs[1] by inputs[2],
// clamped to [0,1]: inputs[0] + t*(inputs[1]-inputs[0]).
type LinearInterpolation[T scalar.Float] struct{}

// Eval implements model.ImplicitOperation.
func (LinearInterpolation[T]) Eval(inputs []T) T {
	var zero T
	one := scalar.FromInt[T](1)
	t := scalar.Clamp(inputs[2], zero, one)
	return inputs[0] + t*(inputs[1]-inputs[0])
}

// Arity implements model.ImplicitOperation.
func (LinearInterpolation[T]) Arity() int { return 3 }
