package model

// EvalAt evaluates the plan at coordinates (x, y, z), using scratch as the
// per-sample working buffer: scratch must have length >= p.Len() and its
// contents are overwritten entirely, one entry per plan step, so callers
// may reuse the same backing array across many samples without
// reallocating (spec.md §4.1, "per-thread scratch buffer").
//
// Constants and functions write their value directly; operations gather
// their inputs by copying from the already-computed scratch slots named in
// the plan, via a fixed MaxInputs-capacity array, and call Eval on the
// gathered slice. The final entry is the plan's result.
//
// No structural validation happens here: all of that is performed once, at
// Compile time. A numerical anomaly (e.g. a Div by zero) simply propagates
// as NaN/Inf through later steps (spec.md §7).
//
// Parameters:
//   - x, y, z: the sample coordinates
//   - scratch: a reusable buffer of length >= p.Len()
//
// Returns:
//   - T: the plan's output value at (x, y, z)
func (p *Plan[T]) EvalAt(x, y, z T, scratch []T) T {
	var gathered [MaxInputs]T
	for i, step := range p.steps {
		switch step.component.Kind() {
		case KindConstant:
			scratch[i] = step.component.Constant()
		case KindFunction:
			scratch[i] = step.component.Function().Eval(x, y, z)
		case KindOperation:
			for k := 0; k < step.numInputs; k++ {
				gathered[k] = scratch[step.inputs[k]]
			}
			scratch[i] = step.component.Operation().Eval(gathered[:step.numInputs])
		}
	}
	return scratch[len(p.steps)-1]
}
