package model

import "github.com/voxelforge/implicit/scalar"

// Kind discriminates the three shapes a Component may take.
type Kind int

const (
	KindConstant Kind = iota
	KindFunction
	KindOperation
)

// String renders a Kind for error messages and the JSON persistence envelope.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindFunction:
		return "function"
	case KindOperation:
		return "operation"
	default:
		return "unknown"
	}
}

// Component is a tagged sum wrapping one of the three node shapes the
// graph supports: a bare constant, a coordinate function with no inputs,
// or an operation gathering a fixed number of upstream values.
type Component[T scalar.Float] struct {
	kind      Kind
	constant  T
	function  ImplicitFunction[T]
	operation ImplicitOperation[T]
}

// NewConstantComponent wraps a constant value as a Component.
func NewConstantComponent[T scalar.Float](v T) Component[T] {
	return Component[T]{kind: KindConstant, constant: v}
}

// NewFunctionComponent wraps an ImplicitFunction as a Component.
func NewFunctionComponent[T scalar.Float](f ImplicitFunction[T]) Component[T] {
	return Component[T]{kind: KindFunction, function: f}
}

// NewOperationComponent wraps an ImplicitOperation as a Component.
func NewOperationComponent[T scalar.Float](op ImplicitOperation[T]) Component[T] {
	return Component[T]{kind: KindOperation, operation: op}
}

// Kind reports which of the three node shapes this Component holds.
func (c Component[T]) Kind() Kind { return c.kind }

// Arity returns the number of wired inputs this component requires: zero
// for a constant or function, the operation's declared arity otherwise.
func (c Component[T]) Arity() int {
	if c.kind == KindOperation {
		return c.operation.Arity()
	}
	return 0
}

// Constant returns the wrapped constant value; only meaningful when
// Kind() == KindConstant.
func (c Component[T]) Constant() T { return c.constant }

// Function returns the wrapped ImplicitFunction; only meaningful when
// Kind() == KindFunction.
func (c Component[T]) Function() ImplicitFunction[T] { return c.function }

// Operation returns the wrapped ImplicitOperation; only meaningful when
// Kind() == KindOperation.
func (c Component[T]) Operation() ImplicitOperation[T] { return c.operation }

// Eval evaluates the component given its coordinates and (for operations)
// its gathered input slice. Functions and constants ignore inputs.
func (c Component[T]) Eval(x, y, z T, inputs []T) T {
	switch c.kind {
	case KindConstant:
		return c.constant
	case KindFunction:
		return c.function.Eval(x, y, z)
	case KindOperation:
		return c.operation.Eval(inputs)
	default:
		var zero T
		return zero
	}
}
