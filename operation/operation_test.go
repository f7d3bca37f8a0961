package operation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/operation"
)

func TestArithmeticOperations(t *testing.T) {
	require.Equal(t, 5.0, operation.Add[float64]{}.Eval([]float64{2, 3}))
	require.Equal(t, -1.0, operation.Sub[float64]{}.Eval([]float64{2, 3}))
	require.Equal(t, 6.0, operation.Mul[float64]{}.Eval([]float64{2, 3}))
	require.Equal(t, 2.0, operation.Div[float64]{}.Eval([]float64{6, 3}))

	require.Equal(t, 2, operation.Add[float64]{}.Arity())
	require.Equal(t, 2, operation.Sub[float64]{}.Arity())
	require.Equal(t, 2, operation.Mul[float64]{}.Arity())
	require.Equal(t, 2, operation.Div[float64]{}.Arity())
}

func TestDivByZeroPropagatesIEEE754InsteadOfPanicking(t *testing.T) {
	require.NotPanics(t, func() {
		v := operation.Div[float64]{}.Eval([]float64{1, 0})
		require.True(t, v > 0 && v*2 == v) // +Inf
	})

	v := operation.Div[float64]{}.Eval([]float64{0, 0})
	require.True(t, v != v) // NaN
}

func TestBooleanLawsUnionIntersectionDifference(t *testing.T) {
	// Union(a,b) == Union(b,a); commutative.
	require.Equal(t,
		operation.Union[float64]{}.Eval([]float64{1, 2}),
		operation.Union[float64]{}.Eval([]float64{2, 1}),
	)
	require.Equal(t, 1.0, operation.Union[float64]{}.Eval([]float64{1, 2}))
	require.Equal(t, 2.0, operation.Intersection[float64]{}.Eval([]float64{1, 2}))
	require.Equal(t, 2.0, operation.Difference[float64]{}.Eval([]float64{1, -2}))
	require.Equal(t, 2.0, operation.Difference[float64]{}.Eval([]float64{-5, -2}))
}

func TestLinearInterpolationClampsAndBlends(t *testing.T) {
	lerp := operation.LinearInterpolation[float64]{}
	require.Equal(t, 3, lerp.Arity())

	require.InDelta(t, 0.0, lerp.Eval([]float64{0, 10, 0}), 1e-12)
	require.InDelta(t, 10.0, lerp.Eval([]float64{0, 10, 1}), 1e-12)
	require.InDelta(t, 5.0, lerp.Eval([]float64{0, 10, 0.5}), 1e-12)
	// t outside [0,1] is clamped.
	require.InDelta(t, 0.0, lerp.Eval([]float64{0, 10, -5}), 1e-12)
	require.InDelta(t, 10.0, lerp.Eval([]float64{0, 10, 5}), 1e-12)
}

func TestOffsetShiftsIsosurface(t *testing.T) {
	off := operation.NewOffset[float64](2)
	require.Equal(t, 1, off.Arity())
	require.InDelta(t, 3.0, off.Eval([]float64{5}), 1e-12)
	require.InDelta(t, -2.0, off.Eval([]float64{0}), 1e-12)
}

func TestThicknessProducesShell(t *testing.T) {
	th := operation.NewThickness[float64](2)
	require.Equal(t, 1, th.Arity())
	// exactly on the original surface: both half-wall offsets are equidistant.
	require.InDelta(t, -1.0, th.Eval([]float64{0}), 1e-12)
}
