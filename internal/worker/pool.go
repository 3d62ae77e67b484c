// Package worker runs independent jobs across a fixed set of
// goroutines. It exists for bulk re-anchoring, where every fact is
// localized against its source in isolation.
package worker

import (
	"context"
	"sync"
)

// Job is one unit of work. Execute must honor ctx cancellation.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is what a Job produces. Err reports a failed execution;
// domain-level misses (a quote that simply is not in its document)
// are not errors.
type Result interface {
	Err() error
}

// Pool fans jobs out to a fixed number of workers. The submission
// protocol is Start, any number of Submit, then Close; Wait returns
// once every accepted job has reported. Shutdown abandons queued work
// instead.
type Pool struct {
	workers int
	jobs    chan Job
	results chan Result

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	queueOnce  sync.Once
	resultOnce sync.Once
}

// NewPool creates a pool. Non-positive worker counts fall back to a
// single worker. Both channels hold twice the worker count so short
// bursts neither block submitters nor stall workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
		results: make(chan Result, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

// Submit queues one job. It drops the job silently after Shutdown.
// Must not be called after Close.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Close marks submission complete: workers drain what is queued and
// exit.
func (p *Pool) Close() {
	p.queueOnce.Do(func() { close(p.jobs) })
}

// Wait collects results until every job submitted before Close has
// finished. Close must happen, here or on the submitting goroutine;
// submitting from its own goroutine lets Wait drain results while
// jobs still queue, so the buffered channels never wedge on batches
// larger than they are.
func (p *Pool) Wait() []Result {
	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var collected []Result
	for r := range p.results {
		collected = append(collected, r)
	}
	return collected
}

// Shutdown cancels in-flight work and returns once the workers exit.
// Queued jobs are dropped.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			if !p.deliver(job.Execute(p.ctx)) {
				return
			}
		}
	}
}

// deliver hands one result to Wait, giving up on cancellation so a
// full results channel cannot strand a worker during Shutdown.
func (p *Pool) deliver(r Result) bool {
	select {
	case p.results <- r:
		return true
	case <-p.ctx.Done():
		return false
	}
}

func (p *Pool) closeResults() {
	p.resultOnce.Do(func() { close(p.results) })
}
