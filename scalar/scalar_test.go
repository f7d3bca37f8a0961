package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/scalar"
)

func TestValRejectsNonFinite(t *testing.T) {
	_, err := scalar.Val[float64](math.NaN())
	require.Error(t, err)

	_, err = scalar.Val[float64](math.Inf(1))
	require.Error(t, err)

	v, err := scalar.Val[float64](2.5)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
}

func TestMustValPanicsOnNonFinite(t *testing.T) {
	require.Panics(t, func() {
		scalar.MustVal[float64](math.NaN())
	})
}

func TestPiMatchesPrecision(t *testing.T) {
	require.InDelta(t, math.Pi, float64(scalar.Pi[float64]()), 1e-12)
	require.InDelta(t, math.Pi, float64(scalar.Pi[float32]()), 1e-6)
}

func TestTrigDispatch(t *testing.T) {
	require.InDelta(t, 0.0, float64(scalar.Sin[float64](0)), 1e-12)
	require.InDelta(t, 1.0, float64(scalar.Cos[float64](0)), 1e-12)
	require.InDelta(t, 0.0, float64(scalar.Sin[float32](0)), 1e-6)
}

func TestClampMinMax(t *testing.T) {
	require.Equal(t, 1.0, scalar.Clamp(5.0, 0.0, 1.0))
	require.Equal(t, 0.0, scalar.Clamp(-5.0, 0.0, 1.0))
	require.Equal(t, 0.5, scalar.Clamp(0.5, 0.0, 1.0))
	require.Equal(t, 2.0, scalar.Max(2.0, 1.0))
	require.Equal(t, 1.0, scalar.Min(2.0, 1.0))
}

func TestAbs(t *testing.T) {
	require.Equal(t, 3.0, scalar.Abs(-3.0))
	require.Equal(t, 3.0, scalar.Abs(3.0))
}

func TestIsNaN(t *testing.T) {
	require.True(t, scalar.IsNaN(scalar.FromInt[float64](0)/scalar.FromInt[float64](0)))
	require.False(t, scalar.IsNaN[float64](1.0))
}

func TestFromInt(t *testing.T) {
	require.Equal(t, 7.0, scalar.FromInt[float64](7))
}
