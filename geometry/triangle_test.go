package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/geometry"
)

func unitTriangle() *geometry.Triangle[float64] {
	return geometry.NewTriangle(
		geometry.NewVec3(0.0, 0.0, 0.0),
		geometry.NewVec3(1.0, 0.0, 0.0),
		geometry.NewVec3(0.0, 1.0, 0.0),
	)
}

func TestTriangleFaceNormal(t *testing.T) {
	tri := unitTriangle()
	n := tri.FaceNormal()
	require.InDelta(t, 0.0, n.X, 1e-12)
	require.InDelta(t, 0.0, n.Y, 1e-12)
	require.InDelta(t, 1.0, n.Z, 1e-12)
}

func TestTriangleArea(t *testing.T) {
	tri := unitTriangle()
	require.InDelta(t, 0.5, tri.Area(), 1e-12)
}

func TestTriangleClosestPointFaceInterior(t *testing.T) {
	tri := unitTriangle()
	p, region := tri.ClosestPoint(geometry.NewVec3(0.25, 0.25, 1.0))
	require.Equal(t, geometry.RegionFace, region)
	require.InDelta(t, 0.25, p.X, 1e-12)
	require.InDelta(t, 0.25, p.Y, 1e-12)
	require.InDelta(t, 0.0, p.Z, 1e-12)
}

func TestTriangleClosestPointVertex(t *testing.T) {
	tri := unitTriangle()
	p, region := tri.ClosestPoint(geometry.NewVec3(-1.0, -1.0, 0.0))
	require.Equal(t, geometry.RegionVertex0, region)
	require.Equal(t, geometry.NewVec3(0.0, 0.0, 0.0), p)
}

func TestTriangleClosestPointEdge(t *testing.T) {
	tri := unitTriangle()
	p, region := tri.ClosestPoint(geometry.NewVec3(0.5, -1.0, 0.0))
	require.Equal(t, geometry.RegionEdge01, region)
	require.InDelta(t, 0.5, p.X, 1e-12)
	require.InDelta(t, 0.0, p.Y, 1e-12)
}

func TestTriangleVertexAngleSumsToPi(t *testing.T) {
	tri := unitTriangle()
	sum := tri.VertexAngle(0) + tri.VertexAngle(1) + tri.VertexAngle(2)
	require.InDelta(t, 3.14159265358979, sum, 1e-9)
}

func TestTriangleBounds(t *testing.T) {
	tri := unitTriangle()
	bb := tri.Bounds()
	require.Equal(t, geometry.NewVec3(0.0, 0.0, 0.0), bb.Min)
	require.Equal(t, geometry.NewVec3(1.0, 1.0, 0.0), bb.Max)
}
