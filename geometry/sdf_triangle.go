package geometry

import "github.com/voxelforge/implicit/scalar"

// SDFTriangle wraps a Triangle with its precomputed edge and vertex
// pseudonormals, so that signed-distance queries against it are read-only
// (spec.md §4.3 requires the octree build to precompute these so queries
// are trivially parallelizable).
type SDFTriangle[T scalar.Float] struct {
	*Triangle[T]
	VertexNormal [3]Vec3[T] // indexed by vertex corner 0,1,2
	EdgeNormal   [3]Vec3[T] // indexed by edge 0:(v0,v1), 1:(v1,v2), 2:(v2,v0)
}

// Bounds returns the wrapped triangle's bounding box, satisfying OctreePayload.
func (s *SDFTriangle[T]) Bounds() BoundingBox[T] {
	return s.Triangle.Bounds()
}

// ClosestPoint returns the closest point on the wrapped triangle to q,
// satisfying OctreePayload.
func (s *SDFTriangle[T]) ClosestPoint(q Vec3[T]) (Vec3[T], bool) {
	p, _ := s.Triangle.ClosestPoint(q)
	return p, true
}

// PseudoNormalAt returns the pseudonormal to use for inside/outside
// classification at a closest point that landed in the given region: the
// face normal for an interior hit, the precomputed edge pseudonormal for
// an edge hit, or the precomputed vertex pseudonormal for a vertex hit.
func (s *SDFTriangle[T]) PseudoNormalAt(r Region) Vec3[T] {
	switch r {
	case RegionEdge01:
		return s.EdgeNormal[0]
	case RegionEdge12:
		return s.EdgeNormal[1]
	case RegionEdge20:
		return s.EdgeNormal[2]
	case RegionVertex0:
		return s.VertexNormal[0]
	case RegionVertex1:
		return s.VertexNormal[1]
	case RegionVertex2:
		return s.VertexNormal[2]
	default:
		return s.Triangle.FaceNormal()
	}
}

// SignedClosestPoint returns the closest point and the pseudonormal to use
// for sign classification there. This is the
// primitive the mesh SDF octree's signed-distance query is built on.
func (s *SDFTriangle[T]) SignedClosestPoint(q Vec3[T]) (Vec3[T], Vec3[T]) {
	p, region := s.Triangle.ClosestPoint(q)
	return p, s.PseudoNormalAt(region)
}
