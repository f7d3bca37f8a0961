// Package operation implements the fixed catalogue of two- and
// three-input operations an ImplicitModel wires components together
// with: arithmetic, boolean combination, linear interpolation, and the
// single-input shape operations Offset and Thickness (spec.md §6).
package operation

import "github.com/voxelforge/implicit/scalar"

// Add computes inputs[0] + inputs[1].
type Add[T scalar.Float] struct{}

// Eval implements model.ImplicitOperation.
func (Add[T]) Eval(inputs []T) T { return inputs[0] + inputs[1] }

// Arity implements model.ImplicitOperation.
func (Add[T]) Arity() int { return 2 }

// Sub computes inputs[0] - inputs[1].
type Sub[T scalar.Float] struct{}

// Eval implements model.ImplicitOperation.
func (Sub[T]) Eval(inputs []T) T { return inputs[0] - inputs[1] }

// Arity implements model.ImplicitOperation.
func (Sub[T]) Arity() int { return 2 }

// Mul computes inputs[0] * inputs[1].
type Mul[T scalar.Float] struct{}

// Eval implements model.ImplicitOperation.
func (Mul[T]) Eval(inputs []T) T { return inputs[0] * inputs[1] }

// Arity implements model.ImplicitOperation.
func (Mul[T]) Arity() int { return 2 }

// Div computes inputs[0] / inputs[1].
//
// Unlike the reference implementation this does not assert or panic on a
// zero divisor: it lets the division run, producing +Inf/-Inf/NaN per
// IEEE 754, and leaves that value to propagate through the rest of the
// plan (spec.md §7). A sampler evaluating an entire field this way never
// needs to recover from a single bad sample.
type Div[T scalar.Float] struct{}

// Eval implements model.ImplicitOperation.
func (Div[T]) Eval(inputs []T) T { return inputs[0] / inputs[1] }

// Arity implements model.ImplicitOperation.
func (Div[T]) Arity() int { return 2 }
