package model

import "github.com/voxelforge/implicit/scalar"

// planStep is one entry of a compiled Plan: the component to evaluate and,
// for operations, the plan index each input slot is gathered from.
type planStep[T scalar.Float] struct {
	tag       string
	component Component[T]
	inputs    [MaxInputs]int
	numInputs int
}

// Plan is the ordered, topologically sorted list of components to
// evaluate for a given output tag (spec.md §4.1, "Plan" in the glossary).
// A Plan is immutable and safe for concurrent evaluation once compiled.
type Plan[T scalar.Float] struct {
	steps  []planStep[T]
	Output string
}

// Len returns the number of steps in the plan; this is also the required
// length of the per-worker scratch buffer EvalAt (see evaluate.go) uses.
func (p *Plan[T]) Len() int { return len(p.steps) }

type visitState int

const (
	unvisited visitState = iota
	inProgress
	done
)

// Compile performs a depth-first post-order traversal from output,
// producing a Plan whose steps are ordered so every operation's inputs
// appear strictly before it (spec.md §4.1, "Topological validity").
//
// Parameters:
//   - output: the tag to compile a plan for
//
// Returns:
//   - *Plan[T]: the compiled, topologically ordered plan
//   - error: MissingTagError, MissingInputError, or CyclicDependencyError
func (m *ImplicitModel[T]) Compile(output string) (*Plan[T], error) {
	if !m.Has(output) {
		return nil, &MissingTagError{Tag: output}
	}

	state := make(map[string]visitState, len(m.tagOrder))
	planIndex := make(map[string]int, len(m.tagOrder))
	var steps []planStep[T]

	var visit func(tag string) error
	visit = func(tag string) error {
		switch state[tag] {
		case done:
			return nil
		case inProgress:
			return &CyclicDependencyError{Tag: tag}
		}
		state[tag] = inProgress

		comp := m.components[tag]
		slots := m.inputs[tag]
		arity := comp.Arity()
		if arity > MaxInputs {
			return &IncorrectInputCountError{Component: tag, Expected: MaxInputs, Got: arity}
		}

		var step planStep[T]
		step.tag = tag
		step.component = comp
		step.numInputs = arity

		for i := 0; i < arity; i++ {
			src := slots[i]
			if src == nil {
				return &MissingInputError{Component: tag, Slot: i}
			}
			if err := visit(*src); err != nil {
				return err
			}
			step.inputs[i] = planIndex[*src]
		}

		planIndex[tag] = len(steps)
		steps = append(steps, step)
		state[tag] = done
		return nil
	}

	if err := visit(output); err != nil {
		return nil, err
	}

	return &Plan[T]{steps: steps, Output: output}, nil
}
