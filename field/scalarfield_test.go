package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/field"
	"github.com/voxelforge/implicit/geometry"
)

func TestScalarFieldIndexRoundTrips(t *testing.T) {
	f := field.NewScalarField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 4, 5, 6)
	for k := 0; k < 6; k++ {
		for j := 0; j < 5; j++ {
			for i := 0; i < 4; i++ {
				idx := f.Index(i, j, k)
				gi, gj, gk := f.Coord(idx)
				require.Equal(t, i, gi)
				require.Equal(t, j, gj)
				require.Equal(t, k, gk)
			}
		}
	}
}

func TestScalarFieldSetAt(t *testing.T) {
	f := field.NewScalarField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 2, 2, 2)
	f.Set(1, 0, 1, 42)
	require.Equal(t, 42.0, f.At(1, 0, 1))
}

func TestScalarFieldWorldPosition(t *testing.T) {
	f := field.NewScalarField(geometry.NewVec3(10.0, 20.0, 30.0), 0.5, 4, 4, 4)
	p := f.WorldPosition(2, 3, 1)
	require.Equal(t, geometry.NewVec3(11.0, 21.5, 30.5), p)
}

func TestScalarFieldCellCornersOrdering(t *testing.T) {
	f := field.NewScalarField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 2, 2, 2)
	corners := f.CellCorners(0, 0, 0)
	require.Equal(t, f.Index(0, 0, 0), corners[0])
	require.Equal(t, f.Index(1, 0, 0), corners[1])
	require.Equal(t, f.Index(1, 1, 0), corners[2])
	require.Equal(t, f.Index(0, 1, 0), corners[3])
	require.Equal(t, f.Index(0, 0, 1), corners[4])
	require.Equal(t, f.Index(1, 0, 1), corners[5])
	require.Equal(t, f.Index(1, 1, 1), corners[6])
	require.Equal(t, f.Index(0, 1, 1), corners[7])
}

func TestScalarFieldCapForcesOuterFaces(t *testing.T) {
	f := field.NewScalarField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 3, 3, 3)
	f.Cap()
	require.Equal(t, 1e6, f.At(0, 1, 1))
	require.Equal(t, 1e6, f.At(2, 1, 1))
	require.Equal(t, 0.0, f.At(1, 1, 1))
}

func TestScalarFieldSmoothLeavesBoundaryUntouched(t *testing.T) {
	f := field.NewScalarField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 3, 3, 3)
	f.Set(1, 1, 1, 100)
	f.Smooth(0.5, 1)

	require.Equal(t, 0.0, f.At(0, 0, 0))
	require.Less(t, f.At(1, 1, 1), 100.0)
}

func TestScalarFieldSmoothNoOpWhenIterZero(t *testing.T) {
	f := field.NewScalarField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 3, 3, 3)
	f.Set(1, 1, 1, 5)
	f.Smooth(0.5, 0)
	require.Equal(t, 5.0, f.At(1, 1, 1))
}
