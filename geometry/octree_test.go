package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/geometry"
)

// pointPayload is the simplest possible OctreePayload: a single point with
// a zero-extent bounding box, used to exercise the octree's best-first
// closest-point search independent of triangle geometry.
type pointPayload struct {
	id int
	p  geometry.Vec3[float64]
}

func (pp pointPayload) Bounds() geometry.BoundingBox[float64] {
	return geometry.NewBoundingBox(pp.p, pp.p)
}

func (pp pointPayload) ClosestPoint(q geometry.Vec3[float64]) (geometry.Vec3[float64], bool) {
	return pp.p, true
}

func TestOctreeClosestPointFindsNearest(t *testing.T) {
	points := []pointPayload{
		{id: 0, p: geometry.NewVec3(0.0, 0.0, 0.0)},
		{id: 1, p: geometry.NewVec3(5.0, 5.0, 5.0)},
		{id: 2, p: geometry.NewVec3(9.0, 9.0, 9.0)},
	}
	bounds := geometry.NewBoundingBox(geometry.NewVec3(0.0, 0.0, 0.0), geometry.NewVec3(10.0, 10.0, 10.0))
	tree := geometry.NewOctree[pointPayload, float64](bounds, points, 4, 1)

	p, obj, ok := tree.ClosestPoint(geometry.NewVec3(5.5, 5.5, 5.5))
	require.True(t, ok)
	require.Equal(t, 1, obj.id)
	require.Equal(t, geometry.NewVec3(5.0, 5.0, 5.0), p)
}

func TestOctreeClosestPointEmptyTree(t *testing.T) {
	bounds := geometry.NewBoundingBox(geometry.NewVec3(0.0, 0.0, 0.0), geometry.NewVec3(1.0, 1.0, 1.0))
	tree := geometry.NewOctree[pointPayload, float64](bounds, nil, 4, 1)

	_, _, ok := tree.ClosestPoint(geometry.NewVec3(0.5, 0.5, 0.5))
	require.False(t, ok)
}

func TestSignedDistanceOnUnitCubeMesh(t *testing.T) {
	mesh := unitCubeMesh()
	octree := mesh.ComputeOctree(6, 4)

	outside := geometry.SignedDistance[*geometry.SDFTriangle[float64]](octree, geometry.NewVec3(2.0, 0.5, 0.5))
	require.Greater(t, outside, 0.0)

	inside := geometry.SignedDistance[*geometry.SDFTriangle[float64]](octree, geometry.NewVec3(0.5, 0.5, 0.5))
	require.Less(t, inside, 0.0)
}
