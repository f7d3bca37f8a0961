// Package reflectparam gives optional, headless-safe parameter reflection
// to the Component types whose fields a UI or node editor might want to
// inspect and mutate: Describe lists a component's named parameters,
// Get/Set read and write them by name. Purely optional — nothing in the
// sampling or compilation path depends on it (spec.md §6.5).
package reflectparam

import "fmt"

// ParamKind discriminates the shape of a single reflected parameter.
type ParamKind int

const (
	ParamScalar ParamKind = iota
	ParamVec3
	ParamBool
)

// String renders a ParamKind for diagnostic output.
func (k ParamKind) String() string {
	switch k {
	case ParamScalar:
		return "scalar"
	case ParamVec3:
		return "vec3"
	case ParamBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParamDescriptor names one parameter a Reflectable component exposes.
type ParamDescriptor struct {
	Name string
	Kind ParamKind
}

// Reflectable is implemented by any component that opts into runtime
// parameter access. A component with no mutable parameters worth exposing
// (the stateless boolean/arithmetic operations, for instance) simply does
// not implement it.
type Reflectable interface {
	// Describe lists the component's named, reflectable parameters.
	Describe() []ParamDescriptor

	// Get returns the current value of the named parameter: a float64 for
	// ParamScalar, a [3]float64 for ParamVec3, a bool for ParamBool.
	//
	// Returns:
	//   - any: the parameter's current value
	//   - bool: false if name is not one of Describe's entries
	Get(name string) (any, bool)

	// Set writes the named parameter from value, which must match the
	// Go type Get would return for that parameter.
	//
	// Returns:
	//   - error: UnknownParamError or a type-mismatch error
	Set(name string, value any) error
}

// UnknownParamError reports a Get/Set call against a parameter name
// Describe does not list.
type UnknownParamError struct {
	Name string
}

func (e *UnknownParamError) Error() string {
	return fmt.Sprintf("reflectparam: unknown parameter %q", e.Name)
}

// ParamTypeError reports a Set call whose value does not match the
// parameter's declared ParamKind.
type ParamTypeError struct {
	Name string
	Want ParamKind
}

func (e *ParamTypeError) Error() string {
	return fmt.Sprintf("reflectparam: parameter %q expects a %s value", e.Name, e.Want)
}
