// Package profiler reports coarse throughput and memory statistics for a
// single sampling or extraction pass, the same log-driven shape the
// teacher's per-frame Profiler reports FPS and GC stats with, adapted from
// a per-frame counter to a per-evaluation-call one: samples/triangles
// accumulate across one call instead of resetting every frame, and Report
// logs once at the end of the call rather than on a timer.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// EvalProfiler accumulates sample counts across a sampling or extraction
// pass and reports throughput and memory statistics when Report is called.
type EvalProfiler struct {
	label      string
	count      int64
	started    time.Time
	memStats   runtime.MemStats
	startAlloc uint64
	startGC    uint32
}

// New constructs an EvalProfiler labeled for the pass it will report on
// (e.g. "sample", "extract") and starts its clock immediately.
//
// Returns:
//   - *EvalProfiler: the newly started profiler instance
func New(label string) *EvalProfiler {
	p := &EvalProfiler{label: label, started: time.Now()}
	runtime.ReadMemStats(&p.memStats)
	p.startAlloc = p.memStats.TotalAlloc
	p.startGC = p.memStats.NumGC
	return p
}

// Add accumulates n more evaluations (samples, triangles, cells) into the
// running count for this pass.
func (p *EvalProfiler) Add(n int) {
	p.count += int64(n)
}

// Report logs the pass's throughput (evaluations/sec), elapsed wall time,
// heap growth, and GC activity since New was called.
//
// Returns:
//   - time.Duration: the elapsed wall time since New
func (p *EvalProfiler) Report() time.Duration {
	elapsed := time.Since(p.started)

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.startAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()
	gcCount := p.memStats.NumGC - p.startGC

	var rate float64
	if elapsed.Seconds() > 0 {
		rate = float64(p.count) / elapsed.Seconds()
	}

	log.Printf("[%s] count: %d | rate: %.0f/s | elapsed: %s | heap: %.2f MB | alloc rate: %.2f MB/s | GC: %d",
		p.label, p.count, rate, elapsed, allocMB, allocRateMB, gcCount)
	return elapsed
}
