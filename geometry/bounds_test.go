package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/geometry"
)

func TestNewBoundingBoxNormalizesCorners(t *testing.T) {
	a := geometry.NewVec3(5.0, -1.0, 2.0)
	b := geometry.NewVec3(-3.0, 4.0, 0.0)
	bb := geometry.NewBoundingBox(a, b)

	require.Equal(t, geometry.NewVec3(-3.0, -1.0, 0.0), bb.Min)
	require.Equal(t, geometry.NewVec3(5.0, 4.0, 2.0), bb.Max)
}

func TestBoundingBoxContains(t *testing.T) {
	bb := geometry.NewBoundingBox(geometry.NewVec3(0.0, 0.0, 0.0), geometry.NewVec3(1.0, 1.0, 1.0))
	require.True(t, bb.Contains(geometry.NewVec3(0.5, 0.5, 0.5)))
	require.True(t, bb.Contains(geometry.NewVec3(0.0, 0.0, 0.0)))
	require.False(t, bb.Contains(geometry.NewVec3(1.5, 0.5, 0.5)))
}

func TestBoundingBoxIntersects(t *testing.T) {
	a := geometry.NewBoundingBox(geometry.NewVec3(0.0, 0.0, 0.0), geometry.NewVec3(1.0, 1.0, 1.0))
	b := geometry.NewBoundingBox(geometry.NewVec3(0.5, 0.5, 0.5), geometry.NewVec3(2.0, 2.0, 2.0))
	c := geometry.NewBoundingBox(geometry.NewVec3(2.0, 2.0, 2.0), geometry.NewVec3(3.0, 3.0, 3.0))

	require.True(t, a.Intersects(b))
	require.False(t, a.Intersects(c))
}

func TestBoundingBoxOffsetDeflatesToCentroidWhenCollapsing(t *testing.T) {
	bb := geometry.NewBoundingBox(geometry.NewVec3(0.0, 0.0, 0.0), geometry.NewVec3(2.0, 2.0, 2.0))
	shrunk := bb.Offset(-10)
	c := bb.Centroid()
	require.Equal(t, c, shrunk.Min)
	require.Equal(t, c, shrunk.Max)
}

func TestBoundingBoxOffsetInflates(t *testing.T) {
	bb := geometry.NewBoundingBox(geometry.NewVec3(0.0, 0.0, 0.0), geometry.NewVec3(1.0, 1.0, 1.0))
	grown := bb.Offset(1)
	require.Equal(t, geometry.NewVec3(-1.0, -1.0, -1.0), grown.Min)
	require.Equal(t, geometry.NewVec3(2.0, 2.0, 2.0), grown.Max)
}

func TestBoundingBoxSignedDistance(t *testing.T) {
	bb := geometry.NewBoundingBox(geometry.NewVec3(0.0, 0.0, 0.0), geometry.NewVec3(1.0, 1.0, 1.0))

	require.InDelta(t, 1.0, bb.SignedDistance(geometry.NewVec3(2.0, 0.5, 0.5)), 1e-12)
	require.Less(t, bb.SignedDistance(geometry.NewVec3(0.5, 0.5, 0.5)), 0.0)
	require.InDelta(t, 0.0, bb.SignedDistance(geometry.NewVec3(0.0, 0.5, 0.5)), 1e-12)
}

func TestBoundingBoxLowerBoundDistance(t *testing.T) {
	bb := geometry.NewBoundingBox(geometry.NewVec3(0.0, 0.0, 0.0), geometry.NewVec3(1.0, 1.0, 1.0))
	require.Equal(t, 0.0, bb.LowerBoundDistance(geometry.NewVec3(0.5, 0.5, 0.5)))
	require.InDelta(t, 1.0, bb.LowerBoundDistance(geometry.NewVec3(2.0, 0.0, 0.0)), 1e-12)
}

func TestBoundingBoxUnion(t *testing.T) {
	a := geometry.NewBoundingBox(geometry.NewVec3(0.0, 0.0, 0.0), geometry.NewVec3(1.0, 1.0, 1.0))
	b := geometry.NewBoundingBox(geometry.NewVec3(2.0, 2.0, 2.0), geometry.NewVec3(3.0, 3.0, 3.0))
	u := a.Union(b)
	require.Equal(t, geometry.NewVec3(0.0, 0.0, 0.0), u.Min)
	require.Equal(t, geometry.NewVec3(3.0, 3.0, 3.0), u.Max)
}

func TestBoundingBoxOctantPartitionsSpace(t *testing.T) {
	bb := geometry.NewBoundingBox(geometry.NewVec3(0.0, 0.0, 0.0), geometry.NewVec3(2.0, 2.0, 2.0))
	lowOctant := bb.Octant(0)
	highOctant := bb.Octant(7)

	require.Equal(t, geometry.NewVec3(0.0, 0.0, 0.0), lowOctant.Min)
	require.Equal(t, bb.Centroid(), lowOctant.Max)
	require.Equal(t, bb.Centroid(), highOctant.Min)
	require.Equal(t, geometry.NewVec3(2.0, 2.0, 2.0), highOctant.Max)
}
