// Package sampler discretizes a compiled model plan onto a ScalarField or
// SparseField by fanning sample evaluation out across a reusable worker
// pool (spec.md §4.4, §4.5, §5), the same
// github.com/Carmen-Shannon/automation/tools/worker pattern the teacher
// uses to fan per-frame animator prep work across goroutines: workers are
// created once and reused, and a sync.WaitGroup — not pool.Wait — forms
// the barrier at the end of each parallel phase, since the pool itself
// doesn't block until idle.
package sampler

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/voxelforge/implicit/field"
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/model"
	"github.com/voxelforge/implicit/profiler"
	"github.com/voxelforge/implicit/scalar"
)

// DefaultQueueCapacity is the worker pool's task queue depth, matching the
// teacher's per-frame compute pool sizing.
const DefaultQueueCapacity = 256

// DefaultIdleTimeout bounds how long an idle worker goroutine lingers
// before the pool shrinks it back out.
const DefaultIdleTimeout = 1 * time.Second

// Sampler discretizes an ImplicitModel over a dense ScalarField.
type Sampler[T scalar.Float] struct {
	pool    worker.DynamicWorkerPool
	workers int
	prof    *profiler.EvalProfiler
}

// Option configures New, mirroring the teacher's XBuilderOption pattern.
type Option[T scalar.Float] func(*Sampler[T])

// WithProfiler attaches an already-started profiler.EvalProfiler; Sample
// adds the number of grid points evaluated to it and logs a report when
// the pass completes.
func WithProfiler[T scalar.Float](p *profiler.EvalProfiler) Option[T] {
	return func(s *Sampler[T]) { s.prof = p }
}

// New constructs a Sampler with a worker pool sized to workers (0 or
// negative picks runtime.NumCPU()-1, floored at 1, mirroring the
// teacher's default).
func New[T scalar.Float](workers int, opts ...Option[T]) *Sampler[T] {
	if workers <= 0 {
		workers = max(runtime.NumCPU()-1, 1)
	}
	s := &Sampler[T]{
		pool:    worker.NewDynamicWorkerPool(workers, DefaultQueueCapacity, DefaultIdleTimeout),
		workers: workers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample compiles output from model and evaluates it at every point of a
// newly allocated dense ScalarField covering bounds at the given cell
// size. If cfg.Cap is set the outer faces are capped after sampling; if
// cfg.SmoothingIter > 0, Laplacian smoothing runs afterward.
func (s *Sampler[T]) Sample(m *model.ImplicitModel[T], output string, cfg Config[T]) (*field.ScalarField[T], error) {
	plan, err := m.Compile(output)
	if err != nil {
		return nil, err
	}

	dims := cfg.Bounds.Dimensions()
	nx := int(dims.X/cfg.CellSize) + 1
	ny := int(dims.Y/cfg.CellSize) + 1
	nz := int(dims.Z/cfg.CellSize) + 1

	f := field.NewScalarField(cfg.Bounds.Min, cfg.CellSize, nx, ny, nz)
	s.evaluatePlan(plan, f)

	if cfg.Cap {
		f.Cap()
	}
	if cfg.SmoothingIter > 0 {
		f.Smooth(cfg.SmoothingFactor, cfg.SmoothingIter)
	}

	if s.prof != nil {
		s.prof.Add(f.Nx * f.Ny * f.Nz)
		s.prof.Report()
	}
	return f, nil
}

// evaluatePlan fans sample evaluation out across the pool: the linear
// index space [0, nx*ny*nz) is partitioned into one contiguous range per
// worker, and each worker reuses a single scratch buffer across its whole
// range (spec.md §4.1's "per-thread scratch buffer").
func (s *Sampler[T]) evaluatePlan(plan *model.Plan[T], f *field.ScalarField[T]) {
	total := f.Nx * f.Ny * f.Nz
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
					i, j, k := f.Coord(idx)
					p := f.WorldPosition(i, j, k)
					f.Values[idx] = plan.EvalAt(p.X, p.Y, p.Z, scratch)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}

type indexRange struct{ start, end int }

// partition splits [0,total) into up to workers contiguous, roughly
// equal-sized ranges.
func partition(total, workers int) []indexRange {
	if workers <= 0 {
		workers = 1
	}
	if workers > total {
		workers = total
	}
	chunks := make([]indexRange, workers)
	base := total / workers
	rem := total % workers
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks[i] = indexRange{start: start, end: start + size}
		start += size
	}
	return chunks
}

// Config configures a single sampling pass (spec.md §4.2's ModelConfig).
type Config[T scalar.Float] struct {
	Bounds          geometry.BoundingBox[T]
	CellSize        T
	Cap             bool
	SmoothingIter   int
	SmoothingFactor T
}
