package model

import "fmt"

// DuplicateTagError reports that a tag was already registered when
// AddFunction/AddOperation/AddConstant was called again with it.
type DuplicateTagError struct {
	Tag string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("model: tag %q already registered", e.Tag)
}

// MissingTagError reports that a referenced tag is absent from the model.
type MissingTagError struct {
	Tag string
}

func (e *MissingTagError) Error() string {
	return fmt.Sprintf("model: tag %q not found", e.Tag)
}

// InputIndexOutOfRangeError reports a wire/remove-input call against a
// slot beyond the target component's declared arity.
type InputIndexOutOfRangeError struct {
	Component string
	Arity     int
	Index     int
}

func (e *InputIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("model: input index %d out of range for component %q (arity %d)", e.Index, e.Component, e.Arity)
}

// IncorrectInputCountError reports that AddOperationWithInputs was called
// with a source list whose length does not match the operation's arity.
type IncorrectInputCountError struct {
	Component string
	Expected  int
	Got       int
}

func (e *IncorrectInputCountError) Error() string {
	return fmt.Sprintf("model: component %q expects %d inputs, got %d", e.Component, e.Expected, e.Got)
}

// MissingInputError reports that compile found an operation with an
// unwired input slot.
type MissingInputError struct {
	Component string
	Slot      int
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("model: component %q missing input at slot %d", e.Component, e.Slot)
}

// CyclicDependencyError reports that compile's topological walk re-entered
// a node still marked in-progress.
type CyclicDependencyError struct {
	Tag string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("model: cyclic dependency detected at %q", e.Tag)
}
