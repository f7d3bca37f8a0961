// Package marchcube extracts a triangle mesh from a sampled scalar field by
// the marching cubes algorithm: each grid cell is classified against an
// isovalue into one of 256 configurations, each configuration's cut edges
// are interpolated to a surface point, and the resulting per-cell triangles
// are welded into a single indexed mesh (spec.md §4.6).
package marchcube

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/voxelforge/implicit/field"
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/profiler"
	"github.com/voxelforge/implicit/scalar"
)

// defaultQueueCapacity and defaultIdleTimeout mirror the sizing convention
// package sampler uses for its own worker pools.
const (
	defaultQueueCapacity = 256
	defaultIdleTimeout   = 1 * time.Second
)

// DenseField is the grid surface this package samples against. Both
// field.ScalarField and field.SparseField satisfy it; ExtractSparse wraps a
// SparseField so extraction can also use its ConstantSignAt skip hint.
type DenseField[T scalar.Float] interface {
	Dims() (nx, ny, nz int)
	At(i, j, k int) T
	WorldPosition(i, j, k int) geometry.Vec3[T]
}

// Config controls extraction.
type Config[T scalar.Float] struct {
	// Iso is the isovalue defining the extracted surface (spec.md §4.6).
	Iso T
	// WeldTolerance is the distance within which two cell-local vertices
	// are merged into one mesh vertex. Zero selects
	// geometry.DefaultWeldTolerance.
	WeldTolerance T
	// Workers is the number of goroutines used for per-cell extraction.
	// Zero or negative selects a single worker.
	Workers int
	// Profiler, if set, receives the number of cells classified and logs a
	// throughput report once extraction completes.
	Profiler *profiler.EvalProfiler
}

// cellTriangle is one triangle's three cell-local vertex positions, emitted
// by a worker before welding.
type cellTriangle[T scalar.Float] [3]geometry.Vec3[T]

// Extract runs marching cubes over a dense scalar field, producing a single
// welded indexed mesh.
//
// Parameters:
//   - f: the sampled field to extract a surface from
//   - cfg: extraction parameters
//
// Returns:
//   - *geometry.Mesh[T]: the extracted, vertex-welded mesh
func Extract[T scalar.Float](f *field.ScalarField[T], cfg Config[T]) *geometry.Mesh[T] {
	return extract[T](f, cfg)
}

// ExtractSparse runs marching cubes over a narrow-band sparse field,
// skipping any cell that ConstantSignAt reports as lying entirely within an
// inactive tile (spec.md §4.5/§4.6).
//
// Parameters:
//   - f: the sampled sparse field to extract a surface from
//   - cfg: extraction parameters
//
// Returns:
//   - *geometry.Mesh[T]: the extracted, vertex-welded mesh
func ExtractSparse[T scalar.Float](f *field.SparseField[T], cfg Config[T]) *geometry.Mesh[T] {
	return extract[T](sparseAdapter[T]{f}, cfg)
}

// sparseAdapter presents a field.SparseField as a DenseField, additionally
// exposing the constant-sign skip hint that extract uses when present.
type sparseAdapter[T scalar.Float] struct {
	f *field.SparseField[T]
}

func (a sparseAdapter[T]) Dims() (int, int, int) { return a.f.Dims() }
func (a sparseAdapter[T]) At(i, j, k int) T      { return a.f.At(i, j, k) }
func (a sparseAdapter[T]) WorldPosition(i, j, k int) geometry.Vec3[T] {
	return a.f.WorldPosition(i, j, k)
}

type constantSignField[T scalar.Float] interface {
	ConstantSignAt(i, j, k int) (sign int, ok bool)
}

func extract[T scalar.Float](f DenseField[T], cfg Config[T]) *geometry.Mesh[T] {
	nx, ny, nz := f.Dims()
	if nx < 2 || ny < 2 || nz < 2 {
		return geometry.NewMesh[T](nil, nil)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	var skip constantSignField[T]
	if adapter, ok := f.(sparseAdapter[T]); ok {
		skip = adapter.f
	}

	nCellsX, nCellsY, nCellsZ := nx-1, ny-1, nz-1
	total := nCellsX * nCellsY * nCellsZ
	chunks := partitionCells(total, workers)

	partials := make([][]cellTriangle[T], len(chunks))
	var wg sync.WaitGroup
	pool := worker.NewDynamicWorkerPool(workers, defaultQueueCapacity, defaultIdleTimeout)

	for idx, c := range chunks {
		if c.start >= c.end {
			continue
		}
		wg.Add(1)
		id, start, end := idx, c.start, c.end
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				partials[id] = extractRange[T](f, skip, cfg.Iso, nCellsX, nCellsY, start, end)
				return nil, nil
			},
		})
	}
	wg.Wait()

	tol := cfg.WeldTolerance
	if tol == 0 {
		tol = scalar.MustVal[T](geometry.DefaultWeldTolerance)
	}
	grid := geometry.NewSpatialHashGrid[T](tol)

	var faces []geometry.Face
	for _, tris := range partials {
		for _, tri := range tris {
			a := grid.AddPoint(tri[0])
			b := grid.AddPoint(tri[1])
			c := grid.AddPoint(tri[2])
			if a == b || b == c || a == c {
				continue
			}
			faces = append(faces, geometry.Face{a, b, c})
		}
	}

	if cfg.Profiler != nil {
		cfg.Profiler.Add(total)
		cfg.Profiler.Report()
	}
	return geometry.NewMesh(grid.Vertices(), faces)
}

// extractRange processes linear cell indices [start,end) of an
// nCellsX*nCellsY*nCellsZ cell grid, returning the triangles produced.
func extractRange[T scalar.Float](f DenseField[T], skip constantSignField[T], iso T, nCellsX, nCellsY, start, end int) []cellTriangle[T] {
	var out []cellTriangle[T]
	for idx := start; idx < end; idx++ {
		k := idx / (nCellsX * nCellsY)
		rem := idx - k*nCellsX*nCellsY
		j := rem / nCellsX
		i := rem % nCellsX

		if skip != nil {
			if _, ok := skip.ConstantSignAt(i, j, k); ok {
				continue
			}
		}
		out = appendCellTriangles(out, f, iso, i, j, k)
	}
	return out
}

// appendCellTriangles classifies the cell whose min corner is (i,j,k),
// interpolates its cut edges, and appends its triangles to out.
func appendCellTriangles[T scalar.Float](out []cellTriangle[T], f DenseField[T], iso T, i, j, k int) []cellTriangle[T] {
	var values [8]T
	var positions [8]geometry.Vec3[T]
	anyNaN := false
	for c := 0; c < 8; c++ {
		off := cornerOffset[c]
		gi, gj, gk := i+off[0], j+off[1], k+off[2]
		v := f.At(gi, gj, gk)
		if scalar.IsNaN(v) {
			anyNaN = true
		}
		values[c] = v
		positions[c] = f.WorldPosition(gi, gj, gk)
	}
	// spec.md §4.6: a cell with any NaN corner is skipped outright.
	if anyNaN {
		return out
	}

	cubeIndex := 0
	for c := 0; c < 8; c++ {
		if values[c] < iso {
			cubeIndex |= 1 << uint(c)
		}
	}

	edges := edgeTable[cubeIndex]
	if edges == 0 {
		return out
	}

	var edgePoint [12]geometry.Vec3[T]
	for e := 0; e < 12; e++ {
		if edges&(1<<uint(e)) == 0 {
			continue
		}
		pair := edgeCorners[e]
		a, b := pair[0], pair[1]
		edgePoint[e] = interpolate(iso, values[a], values[b], positions[a], positions[b])
	}

	row := triTable[cubeIndex]
	for t := 0; t+2 < len(row) && row[t] != -1; t += 3 {
		out = append(out, cellTriangle[T]{
			edgePoint[row[t]],
			edgePoint[row[t+1]],
			edgePoint[row[t+2]],
		})
	}
	return out
}

// interpolate returns the point along segment a->b where the field crosses
// iso, linearly interpolating by value: p = a + clamp((iso-va)/(vb-va),0,1)*(b-a).
func interpolate[T scalar.Float](iso, va, vb T, a, b geometry.Vec3[T]) geometry.Vec3[T] {
	denom := vb - va
	if denom == 0 {
		return a
	}
	t := scalar.Clamp((iso-va)/denom, scalar.MustVal[T](0), scalar.MustVal[T](1))
	return a.Add(b.Sub(a).Mul(t))
}

type cellRange struct{ start, end int }

// partitionCells splits [0,total) into up to workers contiguous ranges.
func partitionCells(total, workers int) []cellRange {
	if workers < 1 {
		workers = 1
	}
	if total == 0 {
		return nil
	}
	chunkSize := (total + workers - 1) / workers
	out := make([]cellRange, 0, workers)
	for start := 0; start < total; start += chunkSize {
		end := start + chunkSize
		if end > total {
			end = total
		}
		out = append(out, cellRange{start, end})
	}
	return out
}
