package meshsdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/meshsdf"
)

// unitCubeMesh builds a closed, outward-winding mesh of the [0,1]^3 cube.
func unitCubeMesh() *geometry.Mesh[float64] {
	v := []geometry.Vec3[float64]{
		geometry.NewVec3(0.0, 0.0, 0.0),
		geometry.NewVec3(1.0, 0.0, 0.0),
		geometry.NewVec3(1.0, 1.0, 0.0),
		geometry.NewVec3(0.0, 1.0, 0.0),
		geometry.NewVec3(0.0, 0.0, 1.0),
		geometry.NewVec3(1.0, 0.0, 1.0),
		geometry.NewVec3(1.0, 1.0, 1.0),
		geometry.NewVec3(0.0, 1.0, 1.0),
	}
	faces := []geometry.Face{
		{0, 3, 2}, {0, 2, 1}, // bottom (-z)
		{4, 5, 6}, {4, 6, 7}, // top (+z)
		{0, 1, 5}, {0, 5, 4}, // -y
		{3, 7, 6}, {3, 6, 2}, // +y
		{0, 4, 7}, {0, 7, 3}, // -x
		{1, 2, 6}, {1, 6, 5}, // +x
	}
	return geometry.NewMesh(v, faces)
}

func TestMeshSDFSignsInsideAndOutside(t *testing.T) {
	sdf := meshsdf.New[float64](unitCubeMesh())

	// centre of the cube: inside, negative.
	require.Less(t, sdf.Eval(0.5, 0.5, 0.5), 0.0)

	// far outside: positive, roughly the Euclidean distance to the nearest
	// face (the point (2,0.5,0.5) is 1.0 from the x=1 face).
	require.InDelta(t, 1.0, sdf.Eval(2.0, 0.5, 0.5), 1e-6)
}

func TestMeshSDFZeroOnSurface(t *testing.T) {
	sdf := meshsdf.New[float64](unitCubeMesh())
	require.InDelta(t, 0.0, sdf.Eval(1.0, 0.5, 0.5), 1e-6)
	require.InDelta(t, 0.0, sdf.Eval(0.5, 0.5, 0.0), 1e-6)
}

func TestMeshSDFMagnitudeScalesWithDistance(t *testing.T) {
	sdf := meshsdf.New[float64](unitCubeMesh())
	near := sdf.Eval(1.1, 0.5, 0.5)
	far := sdf.Eval(2.0, 0.5, 0.5)
	require.Greater(t, far, near)
	require.Greater(t, near, 0.0)
}

func TestMeshSDFRespectsMaxDepthAndLeafSizeOptions(t *testing.T) {
	sdf := meshsdf.New[float64](unitCubeMesh(), meshsdf.WithMaxDepth[float64](2), meshsdf.WithMaxTrianglesPerLeaf[float64](2))
	require.Less(t, sdf.Eval(0.5, 0.5, 0.5), 0.0)
	require.InDelta(t, 1.0, sdf.Eval(2.0, 0.5, 0.5), 1e-6)
}
