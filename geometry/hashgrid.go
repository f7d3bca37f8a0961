package geometry

import (
	"math"

	"github.com/voxelforge/implicit/scalar"
)

// DefaultWeldTolerance is the vertex-welding tolerance marchcube passes to
// NewSpatialHashGrid when its Config leaves WeldTolerance at zero.
const DefaultWeldTolerance = 1e-7

// SpatialHashGrid maps quantized coordinate triplets to buckets of vertex
// indices, used by the marching-cubes mesh assembler to weld duplicate
// vertices produced by adjacent cells.
//
// Known limitation (spec.md §4.7): points straddling a bucket boundary may
// land in different buckets and so fail to merge even though they are
// within tolerance of each other; this implementation does not probe
// neighboring buckets.
type SpatialHashGrid[T scalar.Float] struct {
	buckets   map[int64][]int
	vertices  []Vec3[T]
	tolerance T
}

// NewSpatialHashGrid constructs a SpatialHashGrid with the given weld
// tolerance.
//
// Parameters:
//   - tolerance: the weld distance; points closer than this are merged
//
// Returns:
//   - *SpatialHashGrid[T]: the constructed grid
func NewSpatialHashGrid[T scalar.Float](tolerance T) *SpatialHashGrid[T] {
	return &SpatialHashGrid[T]{
		buckets:   make(map[int64][]int),
		tolerance: tolerance,
	}
}

// Vertices returns the deduplicated vertex list accumulated so far.
func (g *SpatialHashGrid[T]) Vertices() []Vec3[T] {
	return g.vertices
}

// AddPoint welds v into the grid: if an existing vertex within tolerance
// occupies v's bucket, its index is returned; otherwise v is appended as a
// new vertex and its new index is returned.
//
// Parameters:
//   - v: the point to weld
//
// Returns:
//   - int: the index of the (possibly newly added) welded vertex
func (g *SpatialHashGrid[T]) AddPoint(v Vec3[T]) int {
	h := g.spatialHash(v)
	bucket, ok := g.buckets[h]
	if ok {
		for _, idx := range bucket {
			if v.DistanceTo(g.vertices[idx]) < g.tolerance {
				return idx
			}
		}
	}
	newIndex := len(g.vertices)
	g.vertices = append(g.vertices, v)
	g.buckets[h] = append(g.buckets[h], newIndex)
	return newIndex
}

// spatialHash quantizes v to integer cell coordinates (floor(coord/tol))
// and combines them with the same 23*37+... multiplier hash the reference
// implementation's hash_grid.rs uses, so collision behavior (and hence the
// welder's straddling-boundary limitation) matches the documented contract
// exactly.
func (g *SpatialHashGrid[T]) spatialHash(v Vec3[T]) int64 {
	mult := 1 / g.tolerance
	ix := int64(math.Floor(float64(v.X * mult)))
	iy := int64(math.Floor(float64(v.Y * mult)))
	iz := int64(math.Floor(float64(v.Z * mult)))

	h := int64(23)
	h = h*37 + ix
	h = h*37 + iy
	h = h*37 + iz
	return h
}
