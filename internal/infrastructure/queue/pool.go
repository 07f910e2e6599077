package queue

import (
	"context"
	"errors"
	"runtime"
)

// ErrPoolStopped is returned by Do once the context passed to Start has ended.
var ErrPoolStopped = errors.New("queue: pool stopped")

const channelBuffer = 256

// Pool runs CPU-bound jobs on a fixed set of workers so concurrent callers
// never use more than len(workers) CPUs for the same kind of work.
type Pool struct {
	jobs    chan job
	workers int
	stopped chan struct{}
}

type job struct {
	fn   func()
	done chan struct{}
}

// NewPool creates a Pool with numWorkers workers.
// If numWorkers <= 0, runtime.NumCPU() is used.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Pool{
		jobs:    make(chan job, channelBuffer),
		workers: numWorkers,
		stopped: make(chan struct{}),
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// Start launches all worker goroutines. Workers stop when ctx is cancelled,
// and from then on Do returns ErrPoolStopped. Start must be called once.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		go p.runWorker(ctx)
	}
	go func() {
		<-ctx.Done()
		close(p.stopped)
	}()
}

// Do enqueues fn and blocks until a worker has run it, ctx is done, or the
// pool stops. When Do returns an error, fn may still run later if it was
// already queued, so it must not write to state the caller reads after an
// error.
func (p *Pool) Do(ctx context.Context, fn func()) error {
	j := job{fn: fn, done: make(chan struct{})}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.stopped:
		return ErrPoolStopped
	case p.jobs <- j:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.stopped:
		select {
		case <-j.done:
			return nil
		default:
			return ErrPoolStopped
		}
	case <-j.done:
		return nil
	}
}

func (p *Pool) runWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-p.jobs:
			j.fn()
			close(j.done)
		}
	}
}
