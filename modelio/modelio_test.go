package modelio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/modelio"
)

func strPtr(s string) *string { return &s }

func TestEncodeDecodeRoundTripsSphereUnion(t *testing.T) {
	sources := []modelio.ComponentSource{
		{Kind: "sphere", Tag: "a", Params: map[string]any{
			"centre": map[string]float64{"x": 0, "y": 0, "z": 0},
			"radius": 1.0,
		}},
		{Kind: "sphere", Tag: "b", Params: map[string]any{
			"centre": map[string]float64{"x": 1, "y": 0, "z": 0},
			"radius": 1.0,
		}},
		{Kind: "union", Tag: "out"},
	}
	inputs := map[string][]*string{
		"out": {strPtr("a"), strPtr("b")},
	}

	var buf bytes.Buffer
	require.NoError(t, modelio.Encode(&buf, sources, inputs))

	registry := modelio.DefaultRegistry[float64]()
	m, err := modelio.Decode[float64](&buf, registry)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"a", "b", "out"}, m.Tags())

	plan, err := m.Compile("out")
	require.NoError(t, err)
	// at the midpoint between the two unit spheres' centres both are
	// roughly -0.5 inside; union picks the minimum (more negative is deeper
	// inside, but here both match so min is about -0.5).
	scratch := make([]float64, plan.Len())
	require.Less(t, plan.EvalAt(0.5, 0.0, 0.0, scratch), 0.0)
}

func TestEncodeDecodeRoundTripsConstant(t *testing.T) {
	val := 3.5
	sources := []modelio.ComponentSource{
		{Kind: "constant", Tag: "k", Value: &val},
	}
	var buf bytes.Buffer
	require.NoError(t, modelio.Encode(&buf, sources, nil))

	registry := modelio.DefaultRegistry[float64]()
	m, err := modelio.Decode[float64](&buf, registry)
	require.NoError(t, err)

	plan, err := m.Compile("k")
	require.NoError(t, err)
	scratch := make([]float64, plan.Len())
	require.Equal(t, 3.5, plan.EvalAt(0, 0, 0, scratch))
}

func TestDefaultRegistryResolvesEveryPrimitiveAndOperationKind(t *testing.T) {
	functionKinds := []string{
		"sphere", "torus", "capsule", "plane", "aabb",
		"gyroid", "schwarz_p", "neovius", "x_domain", "y_domain", "z_domain",
	}
	operationKinds := []string{
		"add", "sub", "mul", "div", "union", "intersection", "difference",
		"lerp", "offset", "thickness",
	}

	for _, kind := range functionKinds {
		t.Run(kind, func(t *testing.T) {
			sources := []modelio.ComponentSource{
				{Kind: kind, Tag: "x", Params: map[string]any{}},
			}
			var buf bytes.Buffer
			require.NoError(t, modelio.Encode(&buf, sources, nil))
			registry := modelio.DefaultRegistry[float64]()
			_, err := modelio.Decode[float64](&buf, registry)
			require.NoError(t, err)
		})
	}

	for _, kind := range operationKinds {
		t.Run(kind, func(t *testing.T) {
			sources := []modelio.ComponentSource{
				{Kind: kind, Tag: "x", Params: map[string]any{}},
			}
			var buf bytes.Buffer
			require.NoError(t, modelio.Encode(&buf, sources, nil))
			registry := modelio.DefaultRegistry[float64]()
			_, err := modelio.Decode[float64](&buf, registry)
			require.NoError(t, err)
		})
	}
}

func TestDecodeUnknownComponentKindError(t *testing.T) {
	sources := []modelio.ComponentSource{
		{Kind: "not_a_real_kind", Tag: "x"},
	}
	var buf bytes.Buffer
	require.NoError(t, modelio.Encode(&buf, sources, nil))

	registry := modelio.DefaultRegistry[float64]()
	_, err := modelio.Decode[float64](&buf, registry)

	var unknown *modelio.UnknownComponentKindError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "x", unknown.Tag)
	require.Equal(t, "not_a_real_kind", unknown.Kind)
}

func TestDecodeConstantWithoutValueErrors(t *testing.T) {
	sources := []modelio.ComponentSource{
		{Kind: "constant", Tag: "k"},
	}
	var buf bytes.Buffer
	require.NoError(t, modelio.Encode(&buf, sources, nil))

	registry := modelio.DefaultRegistry[float64]()
	_, err := modelio.Decode[float64](&buf, registry)
	require.Error(t, err)
}
