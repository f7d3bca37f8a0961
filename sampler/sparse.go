package sampler

import (
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/voxelforge/implicit/field"
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/model"
	"github.com/voxelforge/implicit/profiler"
	"github.com/voxelforge/implicit/scalar"
)

// SparseConfig configures a narrow-band sampling pass (spec.md §4.5).
type SparseConfig[T scalar.Float] struct {
	Bounds    geometry.BoundingBox[T]
	CellSize  T
	BlockSize int
	Mode      field.Mode
	Iso       T
	Epsilon   T
}

// SparseSampler discretizes an ImplicitModel only where the iso level set
// is likely to pass: every tile is probed at its corners, and only tiles
// whose corners straddle the narrow band are densely sampled.
type SparseSampler[T scalar.Float] struct {
	pool    worker.DynamicWorkerPool
	workers int
	prof    *profiler.EvalProfiler
}

// SparseOption configures NewSparse.
type SparseOption[T scalar.Float] func(*SparseSampler[T])

// WithSparseProfiler attaches an already-started profiler.EvalProfiler;
// Sample adds the number of corner probes and densely sampled points
// evaluated to it and logs a report when the pass completes.
func WithSparseProfiler[T scalar.Float](p *profiler.EvalProfiler) SparseOption[T] {
	return func(s *SparseSampler[T]) { s.prof = p }
}

// NewSparse constructs a SparseSampler with the same pool sizing
// convention as Sampler.
func NewSparse[T scalar.Float](workers int, opts ...SparseOption[T]) *SparseSampler[T] {
	s := New[T](workers)
	sp := &SparseSampler[T]{pool: s.pool, workers: s.workers}
	for _, opt := range opts {
		opt(sp)
	}
	return sp
}

// Sample compiles output from m and evaluates it over a new SparseField
// covering cfg.Bounds.
func (s *SparseSampler[T]) Sample(m *model.ImplicitModel[T], output string, cfg SparseConfig[T]) (*field.SparseField[T], error) {
	plan, err := m.Compile(output)
	if err != nil {
		return nil, err
	}

	dims := cfg.Bounds.Dimensions()
	nx := int(dims.X/cfg.CellSize) + 1
	ny := int(dims.Y/cfg.CellSize) + 1
	nz := int(dims.Z/cfg.CellSize) + 1

	sf := field.NewSparseField(cfg.Bounds.Min, cfg.CellSize, nx, ny, nz, cfg.BlockSize, cfg.Mode, cfg.Iso, cfg.Epsilon)
	s.evaluateCorners(plan, sf)
	s.evaluateActiveTiles(plan, sf)

	if s.prof != nil {
		ntx, nty, ntz := sf.TileCounts()
		evals := ntx * nty * ntz * 8
		for tk := 0; tk < ntz; tk++ {
			for tj := 0; tj < nty; tj++ {
				for ti := 0; ti < ntx; ti++ {
					if d := sf.TileAt(ti, tj, tk).Dense; d != nil {
						evals += d.Nx * d.Ny * d.Nz
					}
				}
			}
		}
		s.prof.Add(evals)
		s.prof.Report()
	}
	return sf, nil
}

// evaluateCorners evaluates every tile's 8 corner samples in parallel and
// classifies each tile active/inactive.
func (s *SparseSampler[T]) evaluateCorners(plan *model.Plan[T], sf *field.SparseField[T]) {
	ntx, nty, ntz := sf.TileCounts()
	total := ntx * nty * ntz
	if total == 0 {
		return
	}
	chunks := partition(total, s.workers)

	var wg sync.WaitGroup
	for id, c := range chunks {
		if c.start >= c.end {
			continue
		}
		wg.Add(1)
		start, end := c.start, c.end
		s.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				scratch := make([]T, plan.Len())
				for idx := start; idx < end; idx++ {
					tk := idx / (ntx * nty)
					rem := idx - tk*ntx*nty
					tj := rem / ntx
					ti := rem % ntx

					var corners [8]T
					for c := 0; c < 8; c++ {
						gi, gj, gk := sf.TileCornerGridCoord(ti, tj, tk, c)
						p := sf.WorldPosition(gi, gj, gk)
						corners[c] = plan.EvalAt(p.X, p.Y, p.Z, scratch)
					}
					sf.SetCorners(ti, tj, tk, corners)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// evaluateActiveTiles allocates and fills a dense sub-grid for every tile
// SetCorners marked active when the field is in DENSE mode. In CORNERS
// mode it returns at once and no tile gets a dense sub-grid.
func (s *SparseSampler[T]) evaluateActiveTiles(plan *model.Plan[T], sf *field.SparseField[T]) {
	if sf.Mode == field.CORNERS {
		return
	}
	ntx, nty, ntz := sf.TileCounts()
	type tileCoord struct{ ti, tj, tk int }
	var active []tileCoord
	for tk := 0; tk < ntz; tk++ {
		for tj := 0; tj < nty; tj++ {
			for ti := 0; ti < ntx; ti++ {
				if sf.TileAt(ti, tj, tk).Active {
					active = append(active, tileCoord{ti, tj, tk})
				}
			}
		}
	}
	if len(active) == 0 {
		return
	}
	chunks := partition(len(active), s.workers)

	var wg sync.WaitGroup
	for id, c := range chunks {
		if c.start >= c.end {
			continue
		}
		wg.Add(1)
		start, end := c.start, c.end
		s.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				scratch := make([]T, plan.Len())
				for idx := start; idx < end; idx++ {
					tc := active[idx]
					dense := sf.AllocateDense(tc.ti, tc.tj, tc.tk)
					for k := 0; k < dense.Nz; k++ {
						for j := 0; j < dense.Ny; j++ {
							for i := 0; i < dense.Nx; i++ {
								p := dense.WorldPosition(i, j, k)
								dense.Set(i, j, k, plan.EvalAt(p.X, p.Y, p.Z, scratch))
							}
						}
					}
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}
