// Package meshsdf turns a triangle mesh into a model.ImplicitFunction: a
// signed-distance oracle backed by an octree of precomputed pseudonormals
// (spec.md §4.3).
package meshsdf

import (
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/scalar"
)

// DefaultMaxDepth and DefaultMaxTrianglesPerLeaf are the octree build
// parameters used when a caller doesn't override them (spec.md §4.3).
const (
	DefaultMaxDepth            = 10
	DefaultMaxTrianglesPerLeaf = 12
)

// MeshSDF evaluates the signed distance from a query point to the nearest
// point of a triangle mesh, positive outside and negative inside per the
// Baerentzen–Aanaes pseudonormal sign test.
type MeshSDF[T scalar.Float] struct {
	octree *geometry.Octree[*geometry.SDFTriangle[T], T]
}

// Option configures New.
type Option[T scalar.Float] func(*options[T])

type options[T scalar.Float] struct {
	maxDepth            int
	maxTrianglesPerLeaf int
}

// WithMaxDepth overrides the octree's maximum subdivision depth.
func WithMaxDepth[T scalar.Float](depth int) Option[T] {
	return func(o *options[T]) { o.maxDepth = depth }
}

// WithMaxTrianglesPerLeaf overrides the triangle count a leaf subdivides past.
func WithMaxTrianglesPerLeaf[T scalar.Float](n int) Option[T] {
	return func(o *options[T]) { o.maxTrianglesPerLeaf = n }
}

// New builds a MeshSDF over mesh, precomputing the octree and its per-
// triangle pseudonormals once so later Eval calls are read-only and safe to
// call concurrently from a Sampler's worker pool.
//
// Parameters:
//   - mesh: the triangle mesh to wrap
//   - opts: optional overrides for octree depth / leaf size
//
// Returns:
//   - *MeshSDF[T]: the constructed signed-distance oracle
func New[T scalar.Float](mesh *geometry.Mesh[T], opts ...Option[T]) *MeshSDF[T] {
	o := options[T]{maxDepth: DefaultMaxDepth, maxTrianglesPerLeaf: DefaultMaxTrianglesPerLeaf}
	for _, opt := range opts {
		opt(&o)
	}
	return &MeshSDF[T]{
		octree: mesh.ComputeOctree(o.maxDepth, o.maxTrianglesPerLeaf),
	}
}

// Eval implements model.ImplicitFunction.
func (m *MeshSDF[T]) Eval(x, y, z T) T {
	return geometry.SignedDistance(m.octree, geometry.NewVec3(x, y, z))
}
