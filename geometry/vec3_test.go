package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/geometry"
)

func TestVec3Arithmetic(t *testing.T) {
	a := geometry.NewVec3(1.0, 2.0, 3.0)
	b := geometry.NewVec3(4.0, -1.0, 0.5)

	require.Equal(t, geometry.NewVec3(5.0, 1.0, 3.5), a.Add(b))
	require.Equal(t, geometry.NewVec3(-3.0, 3.0, 2.5), a.Sub(b))
	require.Equal(t, geometry.NewVec3(2.0, 4.0, 6.0), a.Mul(2))
	require.Equal(t, geometry.NewVec3(-1.0, -2.0, -3.0), a.Neg())
}

func TestVec3DotAndCross(t *testing.T) {
	x := geometry.NewVec3(1.0, 0.0, 0.0)
	y := geometry.NewVec3(0.0, 1.0, 0.0)

	require.Equal(t, 0.0, x.Dot(y))
	require.Equal(t, geometry.NewVec3(0.0, 0.0, 1.0), x.Cross(y))
}

func TestVec3LengthAndNormalize(t *testing.T) {
	v := geometry.NewVec3(3.0, 4.0, 0.0)
	require.Equal(t, 25.0, v.LengthSquared())
	require.Equal(t, 5.0, v.Length())

	n := v.Normalize()
	require.InDelta(t, 1.0, n.Length(), 1e-12)
}

func TestVec3DistanceTo(t *testing.T) {
	a := geometry.NewVec3(0.0, 0.0, 0.0)
	b := geometry.NewVec3(3.0, 4.0, 0.0)
	require.Equal(t, 5.0, a.DistanceTo(b))
}

func TestVec3MinMaxTuple(t *testing.T) {
	a := geometry.NewVec3(1.0, 5.0, -2.0)
	b := geometry.NewVec3(3.0, 2.0, -1.0)

	require.Equal(t, geometry.NewVec3(1.0, 2.0, -2.0), a.Min(b))
	require.Equal(t, geometry.NewVec3(3.0, 5.0, -1.0), a.Max(b))
	require.Equal(t, [3]float64{1.0, 5.0, -2.0}, a.Tuple())
	require.Equal(t, a, geometry.FromTuple(a.Tuple()))
}
