// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/roughsurf/surface"
)

// Result is the outcome of one job. Exactly one of Field and Err is set.
type Result struct {
	Index  int
	Params surface.Parameters
	Field  *surface.HeightField
	Err    error
}

// Runner synthesizes parameter sets on a fixed pool of workers.
type Runner struct {
	synth   *surface.Synthesizer
	workers int
	seed    int64
	logger  *slog.Logger
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithWorkers sets the pool size (≥ 1). Panics otherwise.
func WithWorkers(n int) RunnerOption {
	if n < 1 {
		panic(fmt.Sprintf("batch: WithWorkers(%d)", n))
	}
	return func(r *Runner) { r.workers = n }
}

// WithSeed sets the base seed from which every job seed is derived.
func WithSeed(seed int64) RunnerOption {
	return func(r *Runner) { r.seed = seed }
}

// WithLogger routes per-job diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) RunnerOption {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(r *Runner) { r.logger = l }
}

// NewRunner builds a Runner around synth (nil selects a default
// Synthesizer). Defaults: GOMAXPROCS workers, base seed 1, silent logger.
func NewRunner(synth *surface.Synthesizer, opts ...RunnerOption) *Runner {
	if synth == nil {
		synth = surface.NewSynthesizer()
	}
	r := &Runner{
		synth:   synth,
		workers: runtime.GOMAXPROCS(0),
		seed:    1,
		logger:  surface.NopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run synthesizes every parameter set and returns one Result per input, in
// input order. Failures never stop the batch. After ctx is done, jobs that
// have not started are reported with ctx.Err().
func (r *Runner) Run(ctx context.Context, params []surface.Parameters) []Result {
	results := make([]Result, len(params))
	jobs := make(chan int)

	var wg sync.WaitGroup
	workers := r.workers
	if workers > len(params) {
		workers = len(params)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.runOne(ctx, i, params[i])
			}
		}()
	}

	for i := range params {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (r *Runner) runOne(ctx context.Context, i int, p surface.Parameters) Result {
	res := Result{Index: i, Params: p}
	if err := ctx.Err(); err != nil {
		res.Err = err
		r.logger.Warn("job skipped", slog.Int("index", i), slog.String("params", p.String()), slog.Any("err", err))
		return res
	}

	start := time.Now()
	res.Field, res.Err = r.synth.Generate(p, jobRand(r.seed, i))
	if res.Err != nil {
		r.logger.Warn("job failed", slog.Int("index", i), slog.String("params", p.String()), slog.Any("err", res.Err))
		return res
	}
	r.logger.Debug("job done", slog.Int("index", i), slog.Duration("elapsed", time.Since(start)))

	return res
}

// Split partitions results into successful fields and failed results,
// preserving input order.
func Split(results []Result) (fields []*surface.HeightField, failed []Result) {
	for _, res := range results {
		if res.Err != nil {
			failed = append(failed, res)
			continue
		}
		fields = append(fields, res.Field)
	}

	return fields, failed
}
