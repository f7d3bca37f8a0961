package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/field"
	"github.com/voxelforge/implicit/geometry"
)

func TestValidBlockSize(t *testing.T) {
	require.True(t, field.ValidBlockSize(4))
	require.True(t, field.ValidBlockSize(8))
	require.True(t, field.ValidBlockSize(16))
	require.False(t, field.ValidBlockSize(5))
	require.False(t, field.ValidBlockSize(32))
}

func TestSparseFieldSetCornersClassifiesActive(t *testing.T) {
	f := field.NewSparseField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 8, 8, 8, 4, field.CORNERS, 0.0, 0.1)

	active := f.SetCorners(0, 0, 0, [8]float64{-1, -1, -1, -1, 1, 1, 1, 1})
	require.True(t, active)

	tile := f.TileAt(0, 0, 0)
	require.True(t, tile.Active)
	require.Equal(t, 0, tile.ConstantSign)
}

func TestSparseFieldSetCornersClassifiesInactive(t *testing.T) {
	f := field.NewSparseField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 8, 8, 8, 4, field.CORNERS, 0.0, 0.1)

	active := f.SetCorners(1, 0, 0, [8]float64{5, 5, 5, 5, 5, 5, 5, 5})
	require.False(t, active)

	tile := f.TileAt(1, 0, 0)
	require.False(t, tile.Active)
	require.Equal(t, 1, tile.ConstantSign)
}

func TestSparseFieldConstantSignAtSkipsInactiveCells(t *testing.T) {
	f := field.NewSparseField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 8, 8, 8, 4, field.CORNERS, 0.0, 0.1)
	f.SetCorners(0, 0, 0, [8]float64{5, 5, 5, 5, 5, 5, 5, 5})

	sign, ok := f.ConstantSignAt(0, 0, 0)
	require.True(t, ok)
	require.Equal(t, 1, sign)
}

func TestSparseFieldConstantSignAtStraddlingCellNotSkippable(t *testing.T) {
	f := field.NewSparseField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 8, 8, 8, 4, field.CORNERS, 0.0, 0.1)
	f.SetCorners(0, 0, 0, [8]float64{5, 5, 5, 5, 5, 5, 5, 5})

	// cell (3,0,0) straddles the tile boundary at x=4.
	_, ok := f.ConstantSignAt(3, 0, 0)
	require.False(t, ok)
}

func TestSparseFieldAtInterpolatesInactiveTileCorners(t *testing.T) {
	f := field.NewSparseField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 8, 8, 8, 4, field.CORNERS, 0.0, 0.1)
	f.SetCorners(0, 0, 0, [8]float64{10, 14, 14, 10, 10, 14, 14, 10})

	tile := f.TileAt(0, 0, 0)
	require.False(t, tile.Active)

	// midpoint along x at the tile's base should be the trilinear mean.
	v := f.At(2, 0, 0)
	require.InDelta(t, 12.0, v, 1e-9)
}

func TestSparseFieldAtReadsDenseSubgridWhenActive(t *testing.T) {
	f := field.NewSparseField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, 8, 8, 8, 4, field.CORNERS, 0.0, 1.0)
	f.SetCorners(0, 0, 0, [8]float64{-1, -1, -1, -1, 1, 1, 1, 1})
	dense := f.AllocateDense(0, 0, 0)
	dense.Set(2, 2, 2, 99)

	require.Equal(t, 99.0, f.At(2, 2, 2))
}
