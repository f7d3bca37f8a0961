// Package model implements the implicit-model graph: construction,
// validation, topological compilation and per-sample plan evaluation that is
// safe to run concurrently (spec.md §4.1).
package model

import "github.com/voxelforge/implicit/scalar"

// MaxInputs bounds the number of wired inputs any single operation may
// declare. It is a fixed-capacity limit, not a dynamic one: exceeding it is
// a construction-time IncorrectInputCountError, never a runtime allocation.
const MaxInputs = 8

// ImplicitFunction is a leaf node of the graph: a scalar field of
// three-space coordinates with no inputs of its own.
type ImplicitFunction[T scalar.Float] interface {
	Eval(x, y, z T) T
}

// ImplicitOperation is an internal node of the graph: it consumes a fixed
// number of upstream scalar values (its Arity) and produces one scalar.
type ImplicitOperation[T scalar.Float] interface {
	// Eval computes the operation's result from its gathered inputs.
	// len(inputs) == Arity() is guaranteed by the compiler.
	Eval(inputs []T) T

	// Arity returns the number of inputs this operation requires.
	Arity() int
}

// ImplicitFunctionFunc adapts a plain eval function to ImplicitFunction,
// for ad hoc or test-only functions that don't warrant a named type.
type ImplicitFunctionFunc[T scalar.Float] func(x, y, z T) T

// Eval implements ImplicitFunction.
func (f ImplicitFunctionFunc[T]) Eval(x, y, z T) T { return f(x, y, z) }
