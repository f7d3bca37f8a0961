package modelio

import (
	"encoding/json"
	"fmt"

	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/model"
	"github.com/voxelforge/implicit/operation"
	"github.com/voxelforge/implicit/primitive"
	"github.com/voxelforge/implicit/scalar"
)

// FunctionFactory builds an ImplicitFunction from a component envelope's
// raw params.
type FunctionFactory[T scalar.Float] func(params json.RawMessage) (model.ImplicitFunction[T], error)

// OperationFactory builds an ImplicitOperation from a component envelope's
// raw params.
type OperationFactory[T scalar.Float] func(params json.RawMessage) (model.ImplicitOperation[T], error)

// Registry maps a component envelope's "kind" string to the factory that
// constructs it, so Decode never needs a type switch over concrete
// primitive/operation types.
type Registry[T scalar.Float] struct {
	functions  map[string]FunctionFactory[T]
	operations map[string]OperationFactory[T]
}

// NewRegistry constructs an empty Registry.
func NewRegistry[T scalar.Float]() *Registry[T] {
	return &Registry[T]{
		functions:  make(map[string]FunctionFactory[T]),
		operations: make(map[string]OperationFactory[T]),
	}
}

// RegisterFunction adds (or replaces) the factory for a function kind.
func (r *Registry[T]) RegisterFunction(kind string, f FunctionFactory[T]) {
	r.functions[kind] = f
}

// RegisterOperation adds (or replaces) the factory for an operation kind.
func (r *Registry[T]) RegisterOperation(kind string, f OperationFactory[T]) {
	r.operations[kind] = f
}

func toVec3[T scalar.Float](p vec3Params) geometry.Vec3[T] {
	return geometry.NewVec3(T(p.X), T(p.Y), T(p.Z))
}

// DefaultRegistry returns a Registry populated with every primitive and
// operation type SPEC_FULL.md's §6 tables define.
func DefaultRegistry[T scalar.Float]() *Registry[T] {
	r := NewRegistry[T]()

	r.RegisterFunction("sphere", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct {
			Centre vec3Params `json:"centre"`
			Radius float64    `json:"radius"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: sphere params: %w", err)
		}
		return primitive.NewSphere(toVec3[T](p.Centre), T(p.Radius)), nil
	})

	r.RegisterFunction("torus", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct {
			Centre    vec3Params `json:"centre"`
			R         float64    `json:"r"`
			Thickness float64    `json:"thickness"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: torus params: %w", err)
		}
		return primitive.NewTorus(toVec3[T](p.Centre), T(p.R), T(p.Thickness)), nil
	})

	r.RegisterFunction("capsule", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct {
			Start  vec3Params `json:"start"`
			End    vec3Params `json:"end"`
			Radius float64    `json:"radius"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: capsule params: %w", err)
		}
		return primitive.NewCapsule(toVec3[T](p.Start), toVec3[T](p.End), T(p.Radius)), nil
	})

	r.RegisterFunction("plane", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct {
			Origin vec3Params `json:"origin"`
			Normal vec3Params `json:"normal"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: plane params: %w", err)
		}
		return primitive.NewPlane(toVec3[T](p.Origin), toVec3[T](p.Normal)), nil
	})

	r.RegisterFunction("aabb", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct {
			Min vec3Params `json:"min"`
			Max vec3Params `json:"max"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: aabb params: %w", err)
		}
		return primitive.NewAABB(toVec3[T](p.Min), toVec3[T](p.Max)), nil
	})

	r.RegisterFunction("gyroid", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct {
			LengthX float64 `json:"length_x"`
			LengthY float64 `json:"length_y"`
			LengthZ float64 `json:"length_z"`
			Linear  bool    `json:"linear"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: gyroid params: %w", err)
		}
		return primitive.NewGyroid(T(p.LengthX), T(p.LengthY), T(p.LengthZ), p.Linear), nil
	})

	r.RegisterFunction("schwarz_p", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct {
			LengthX float64 `json:"length_x"`
			LengthY float64 `json:"length_y"`
			LengthZ float64 `json:"length_z"`
			Linear  bool    `json:"linear"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: schwarz_p params: %w", err)
		}
		return primitive.NewSchwarzP(T(p.LengthX), T(p.LengthY), T(p.LengthZ), p.Linear), nil
	})

	r.RegisterFunction("neovius", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct {
			LengthX float64 `json:"length_x"`
			LengthY float64 `json:"length_y"`
			LengthZ float64 `json:"length_z"`
			Linear  bool    `json:"linear"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: neovius params: %w", err)
		}
		return primitive.NewNeovius(T(p.LengthX), T(p.LengthY), T(p.LengthZ), p.Linear), nil
	})

	r.RegisterFunction("x_domain", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct{ Min, Max float64 }
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: x_domain params: %w", err)
		}
		return primitive.NewXDomain(T(p.Min), T(p.Max)), nil
	})

	r.RegisterFunction("y_domain", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct{ Min, Max float64 }
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: y_domain params: %w", err)
		}
		return primitive.NewYDomain(T(p.Min), T(p.Max)), nil
	})

	r.RegisterFunction("z_domain", func(raw json.RawMessage) (model.ImplicitFunction[T], error) {
		var p struct{ Min, Max float64 }
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: z_domain params: %w", err)
		}
		return primitive.NewZDomain(T(p.Min), T(p.Max)), nil
	})

	r.RegisterOperation("add", constOperation[T](operation.Add[T]{}))
	r.RegisterOperation("sub", constOperation[T](operation.Sub[T]{}))
	r.RegisterOperation("mul", constOperation[T](operation.Mul[T]{}))
	r.RegisterOperation("div", constOperation[T](operation.Div[T]{}))
	r.RegisterOperation("union", constOperation[T](operation.Union[T]{}))
	r.RegisterOperation("intersection", constOperation[T](operation.Intersection[T]{}))
	r.RegisterOperation("difference", constOperation[T](operation.Difference[T]{}))
	r.RegisterOperation("lerp", constOperation[T](operation.LinearInterpolation[T]{}))

	r.RegisterOperation("offset", func(raw json.RawMessage) (model.ImplicitOperation[T], error) {
		var p struct {
			Distance float64 `json:"distance"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: offset params: %w", err)
		}
		return operation.NewOffset[T](T(p.Distance)), nil
	})

	r.RegisterOperation("thickness", func(raw json.RawMessage) (model.ImplicitOperation[T], error) {
		var p struct {
			Wall float64 `json:"wall"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("modelio: thickness params: %w", err)
		}
		return operation.NewThickness[T](T(p.Wall)), nil
	})

	return r
}

// constOperation adapts a stateless, zero-valued operation (no params to
// decode) to the OperationFactory signature.
func constOperation[T scalar.Float](op model.ImplicitOperation[T]) OperationFactory[T] {
	return func(json.RawMessage) (model.ImplicitOperation[T], error) {
		return op, nil
	}
}
