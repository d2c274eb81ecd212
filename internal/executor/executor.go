// Package executor runs shader compile jobs on a bounded worker pool. Jobs
// are mutually independent, so scheduling is a plain fan-out: a failing job
// records its compiler diagnostic and the pool keeps draining; failures are
// aggregated and reported once every job has settled.
package executor

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/vk/shadergridgo/internal/ctxlog"
	"github.com/vk/shadergridgo/internal/shadergraph"
)

// Stats summarizes one build pass.
type Stats struct {
	Compiled int
	Skipped  int
	Failed   int
}

// Executor owns the worker pool for one build pass.
type Executor struct {
	graph   *shadergraph.Graph
	workers int

	// Progress enables a terminal progress bar over the compile jobs.
	Progress bool
}

// New creates an executor. A non-positive worker count defaults to the
// number of CPUs.
func New(graph *shadergraph.Graph, workers int) *Executor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Executor{graph: graph, workers: workers}
}

// Run discovers jobs, skips fresh ones, and compiles the rest concurrently.
// The hash cache is persisted after all jobs settle, successful ones
// included, so a partially failed build never marks failed jobs fresh.
func (e *Executor) Run(ctx context.Context) (Stats, error) {
	logger := ctxlog.FromContext(ctx)
	var stats Stats

	jobs, err := e.graph.Discover(ctx)
	if err != nil {
		return stats, err
	}

	var stale []*shadergraph.Job
	for _, job := range jobs {
		if e.graph.Stale(ctx, job) {
			stale = append(stale, job)
		} else {
			logger.Debug("Job is fresh, skipping.", "job", job.Name())
			stats.Skipped++
		}
	}

	if len(stale) == 0 {
		logger.Info("All shader artifacts up to date.", "jobs", len(jobs))
		return stats, nil
	}

	var bar *progressbar.ProgressBar
	if e.Progress {
		bar = progressbar.Default(int64(len(stale)), "compiling shaders")
	}

	jobChan := make(chan *shadergraph.Job)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures []error

	for workerID := range e.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.worker(ctx, workerID, jobChan, bar, &mu, &failures, &stats)
		}()
	}

	for _, job := range stale {
		jobChan <- job
	}
	close(jobChan)
	wg.Wait()

	if err := e.graph.SaveCache(); err != nil {
		return stats, fmt.Errorf("persisting hash cache: %w", err)
	}

	if len(failures) > 0 {
		return stats, fmt.Errorf("%d of %d shader jobs failed: %w",
			stats.Failed, len(stale), errors.Join(failures...))
	}
	logger.Info("Shader build complete.", "compiled", stats.Compiled, "skipped", stats.Skipped)
	return stats, nil
}

// worker is the processing loop for a single concurrent worker.
func (e *Executor) worker(
	ctx context.Context,
	workerID int,
	jobChan <-chan *shadergraph.Job,
	bar *progressbar.ProgressBar,
	mu *sync.Mutex,
	failures *[]error,
	stats *Stats,
) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for job := range jobChan {
		workerLogger := logger.With("workerID", workerID, "job", job.Name())

		var err error
		if ctx.Err() != nil {
			err = ctx.Err()
		} else {
			workerLogger.Debug("Worker picked up job.")
			err = e.graph.Compile(ctx, job)
		}

		mu.Lock()
		if err != nil {
			workerLogger.Error("Job failed.", "error", err)
			stats.Failed++
			*failures = append(*failures, err)
		} else {
			workerLogger.Debug("Job succeeded.")
			stats.Compiled++
		}
		mu.Unlock()

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}
