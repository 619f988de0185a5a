package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed. Jobs absorb their own
// failures: Execute always produces a Result, degrading internally rather
// than propagating errors.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	Err() error
}

// Pool runs batches of independent jobs with bounded concurrency. Results
// come back in submission order regardless of completion order: each job
// writes into its own slot of an index-addressed buffer, so no other state is
// shared between jobs.
type Pool struct {
	workers int
}

// NewPool creates a pool admitting at most workers jobs in flight.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Workers returns the concurrency limit.
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes all jobs and returns one result per job, index-aligned with
// the input. Every job runs to completion; cancellation is the job's concern
// (a cancelled context makes backend calls fail fast, which jobs degrade
// from, so coverage stays total).
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, j Job) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = j.Execute(ctx)
		}(i, job)
	}

	wg.Wait()
	return results
}
