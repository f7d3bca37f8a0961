package modelio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/voxelforge/implicit/model"
	"github.com/voxelforge/implicit/scalar"
)

// UnknownComponentKindError reports that a persisted component's "kind"
// string matched neither the function nor the operation registry.
type UnknownComponentKindError struct {
	Tag  string
	Kind string
}

func (e *UnknownComponentKindError) Error() string {
	return fmt.Sprintf("modelio: component %q has unknown kind %q", e.Tag, e.Kind)
}

// Decode reads a document from r and rebuilds an ImplicitModel from it
// using registry to resolve each component's kind. Components are
// registered in document order; inputs are wired in a second pass so a
// component may freely reference any tag already present in the document,
// matching the same MissingTagError/DuplicateTagError validation
// Model.Wire/AddOperationWithInputs already enforce.
//
// Parameters:
//   - r: the JSON document source
//   - registry: resolves each envelope's kind to a concrete constructor
//
// Returns:
//   - *model.ImplicitModel[T]: the rebuilt model
//   - error: a model validation error, an UnknownComponentKindError, or a
//     JSON decode error
func Decode[T scalar.Float](r io.Reader, registry *Registry[T]) (*model.ImplicitModel[T], error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("modelio: decoding document: %w", err)
	}

	m := model.New[T]()

	for _, c := range doc.Components {
		switch c.Kind {
		case "constant":
			if c.Value == nil {
				return nil, fmt.Errorf("modelio: component %q is kind \"constant\" with no value", c.Tag)
			}
			if err := m.AddConstant(c.Tag, T(*c.Value)); err != nil {
				return nil, err
			}
		default:
			if factory, ok := registry.functions[c.Kind]; ok {
				fn, err := factory(c.Params)
				if err != nil {
					return nil, err
				}
				if err := m.AddFunction(c.Tag, fn); err != nil {
					return nil, err
				}
				continue
			}
			if factory, ok := registry.operations[c.Kind]; ok {
				op, err := factory(c.Params)
				if err != nil {
					return nil, err
				}
				if err := m.AddOperation(c.Tag, op); err != nil {
					return nil, err
				}
				continue
			}
			return nil, &UnknownComponentKindError{Tag: c.Tag, Kind: c.Kind}
		}
	}

	for tag, sources := range doc.Inputs {
		for slot, src := range sources {
			if src == nil {
				continue
			}
			if err := m.Wire(tag, slot, *src); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// DecodeFile opens path and decodes it as a persisted model.
func DecodeFile[T scalar.Float](path string, registry *Registry[T]) (*model.ImplicitModel[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("modelio: opening %s: %w", path, err)
	}
	defer f.Close()
	return Decode[T](f, registry)
}

// ComponentSource is the Encode-side counterpart of componentEnvelope's
// Kind/Tag fields plus whatever a caller supplies to describe each
// component, since the in-memory ImplicitModel does not retain the kind
// string or constructor params a Component was built from (spec.md §6.4:
// persistence is a write-your-own-envelope format, not a full round-trip
// of arbitrary Go closures).
type ComponentSource struct {
	Kind   string
	Tag    string
	Value  *float64
	Params any
}

// Encode writes a document assembled from sources and inputs to w. Callers
// supply the kind/params for each component explicitly (see
// ComponentSource) since an ImplicitFunction/ImplicitOperation value alone
// does not carry enough information to reconstruct its JSON shape.
//
// Parameters:
//   - w: the destination writer
//   - sources: one ComponentSource per persisted component, in the order
//     they should be re-registered on decode
//   - inputs: the same tag→sources wiring map AddOperationWithInputs/Wire
//     would accept
//
// Returns:
//   - error: a JSON encode error or a malformed ComponentSource error
func Encode(w io.Writer, sources []ComponentSource, inputs map[string][]*string) error {
	doc := document{Inputs: inputs}
	for _, s := range sources {
		env := componentEnvelope{Kind: s.Kind, Tag: s.Tag, Value: s.Value}
		if s.Params != nil {
			raw, err := json.Marshal(s.Params)
			if err != nil {
				return fmt.Errorf("modelio: encoding params for %q: %w", s.Tag, err)
			}
			env.Params = raw
		}
		doc.Components = append(doc.Components, env)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("modelio: encoding document: %w", err)
	}
	return nil
}

// EncodeFile creates (or truncates) path and writes the document to it.
func EncodeFile(path string, sources []ComponentSource, inputs map[string][]*string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("modelio: creating %s: %w", path, err)
	}
	defer f.Close()
	return Encode(f, sources, inputs)
}
