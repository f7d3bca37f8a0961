package model

import "github.com/voxelforge/implicit/scalar"

// ImplicitModel is a named-tag graph of Components plus, for every tag, an
// ordered list of optional source tags wiring its inputs. Construction and
// mutation are single-threaded (spec.md §5); the model becomes read-only
// once Compile has produced a Plan for evaluation.
type ImplicitModel[T scalar.Float] struct {
	components map[string]Component[T]
	inputs     map[string][]*string
	tagOrder   []string
}

// New constructs an empty ImplicitModel.
func New[T scalar.Float]() *ImplicitModel[T] {
	return &ImplicitModel[T]{
		components: make(map[string]Component[T]),
		inputs:     make(map[string][]*string),
	}
}

// Has reports whether tag is registered in the model.
func (m *ImplicitModel[T]) Has(tag string) bool {
	_, ok := m.components[tag]
	return ok
}

// Component returns the component registered under tag, if any.
func (m *ImplicitModel[T]) Component(tag string) (Component[T], bool) {
	c, ok := m.components[tag]
	return c, ok
}

// Tags returns every registered tag, in registration order.
func (m *ImplicitModel[T]) Tags() []string {
	out := make([]string, len(m.tagOrder))
	copy(out, m.tagOrder)
	return out
}

func (m *ImplicitModel[T]) register(tag string, c Component[T], arity int) error {
	if m.Has(tag) {
		return &DuplicateTagError{Tag: tag}
	}
	if arity > MaxInputs {
		return &IncorrectInputCountError{Component: tag, Expected: MaxInputs, Got: arity}
	}
	m.components[tag] = c
	m.inputs[tag] = make([]*string, arity)
	m.tagOrder = append(m.tagOrder, tag)
	return nil
}

// AddFunction registers a coordinate function under tag.
//
// Parameters:
//   - tag: the unique tag to register the function under
//   - f: the function to register
//
// Returns:
//   - error: DuplicateTagError if tag is already registered
func (m *ImplicitModel[T]) AddFunction(tag string, f ImplicitFunction[T]) error {
	return m.register(tag, NewFunctionComponent(f), 0)
}

// AddConstant registers a constant value under tag.
//
// Parameters:
//   - tag: the unique tag to register the constant under
//   - v: the constant value
//
// Returns:
//   - error: DuplicateTagError if tag is already registered
func (m *ImplicitModel[T]) AddConstant(tag string, v T) error {
	return m.register(tag, NewConstantComponent(v), 0)
}

// AddOperation registers an operation under tag with all input slots
// initially unwired.
//
// Parameters:
//   - tag: the unique tag to register the operation under
//   - op: the operation to register
//
// Returns:
//   - error: DuplicateTagError if tag is already registered
func (m *ImplicitModel[T]) AddOperation(tag string, op ImplicitOperation[T]) error {
	return m.register(tag, NewOperationComponent(op), op.Arity())
}

// AddOperationWithInputs registers an operation under tag and immediately
// wires its inputs from sources, in slot order.
//
// Parameters:
//   - tag: the unique tag to register the operation under
//   - op: the operation to register
//   - sources: source tags for each input slot, in order
//
// Returns:
//   - error: DuplicateTagError, MissingTagError (a source tag is absent),
//     or IncorrectInputCountError (len(sources) != op.Arity())
func (m *ImplicitModel[T]) AddOperationWithInputs(tag string, op ImplicitOperation[T], sources []string) error {
	if len(sources) != op.Arity() {
		return &IncorrectInputCountError{Component: tag, Expected: op.Arity(), Got: len(sources)}
	}
	for _, src := range sources {
		if !m.Has(src) {
			return &MissingTagError{Tag: src}
		}
	}
	if err := m.register(tag, NewOperationComponent(op), op.Arity()); err != nil {
		return err
	}
	for i, src := range sources {
		s := src
		m.inputs[tag][i] = &s
	}
	return nil
}

// Wire sets the input source for a single slot of an already-registered
// operation.
//
// Parameters:
//   - target: the tag of the component whose input is being wired
//   - slot: the input slot index to wire
//   - source: the tag supplying that input
//
// Returns:
//   - error: MissingTagError (target or source absent) or
//     InputIndexOutOfRangeError (slot beyond target's arity)
func (m *ImplicitModel[T]) Wire(target string, slot int, source string) error {
	slots, ok := m.inputs[target]
	if !ok {
		return &MissingTagError{Tag: target}
	}
	if !m.Has(source) {
		return &MissingTagError{Tag: source}
	}
	if slot < 0 || slot >= len(slots) {
		return &InputIndexOutOfRangeError{Component: target, Arity: len(slots), Index: slot}
	}
	s := source
	slots[slot] = &s
	return nil
}

// RemoveInput clears the input source for a single slot, leaving it
// unwired.
//
// Parameters:
//   - target: the tag of the component whose input is being cleared
//   - slot: the input slot index to clear
//
// Returns:
//   - error: MissingTagError or InputIndexOutOfRangeError
func (m *ImplicitModel[T]) RemoveInput(target string, slot int) error {
	slots, ok := m.inputs[target]
	if !ok {
		return &MissingTagError{Tag: target}
	}
	if slot < 0 || slot >= len(slots) {
		return &InputIndexOutOfRangeError{Component: target, Arity: len(slots), Index: slot}
	}
	slots[slot] = nil
	return nil
}
