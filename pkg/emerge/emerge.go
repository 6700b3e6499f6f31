// Package emerge is a small worker pool that runs chunk-generation
// jobs concurrently, one goroutine per worker, each with exclusive
// ownership of the voxel buffer it was handed. It follows the
// context-cancellable accept-loop shape used elsewhere in this module
// for long-running services, adapted from a listener loop to a job
// queue.
package emerge

import (
	"context"
	"log/slog"
	"sync"

	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

// Job is one chunk-generation unit: a callback that owns manip
// exclusively for the duration of the call. No two Jobs may reference
// the same underlying Manip.
type Job struct {
	Nmin, Nmax voxel.Pos
	Run        func(ctx context.Context)
}

// Pool runs queued Jobs across a fixed number of worker goroutines.
type Pool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	log     *slog.Logger
	workers int
}

// New creates a Pool with the given worker count. workers <= 0 is
// treated as 1.
func New(workers int, log *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		jobs:    make(chan Job),
		log:     log,
		workers: workers,
	}
}

// Start launches the worker goroutines. They run until ctx is
// cancelled or Close is called, whichever comes first.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		id := i
		go p.worker(ctx, id)
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.run(ctx, id, job)
		}
	}
}

func (p *Pool) run(ctx context.Context, workerID int, job Job) {
	defer func() {
		if r := recover(); r != nil && p.log != nil {
			p.log.Error("emerge worker recovered from panic",
				"worker", workerID, "nmin", job.Nmin, "nmax", job.Nmax, "panic", r)
		}
	}()
	job.Run(ctx)
}

// Submit enqueues job, blocking until a worker accepts it or ctx is
// cancelled.
func (p *Pool) Submit(ctx context.Context, job Job) {
	select {
	case p.jobs <- job:
	case <-ctx.Done():
	}
}

// Close stops accepting new jobs and waits for in-flight jobs to
// finish.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}
