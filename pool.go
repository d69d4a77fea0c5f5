package pubsub

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Pool schedules the tasks of asynchronous dispatches. Implementations must
// run every submitted task exactly once; Submit may block while the pool is
// saturated. A pool is shared infrastructure injected at publisher
// construction: publishers never create, size, or shut down the pool they
// are given, and several publishers may share one.
type Pool interface {
	Submit(task func())
}

// NewPool returns a worker pool for asynchronous dispatch.
// With maxWorkers <= 0 every task gets its own goroutine; otherwise at most
// maxWorkers tasks run concurrently and Submit blocks once the limit is
// reached.
//
// Example:
//
//	pool := pubsub.NewPool(8)
//	orders := pubsub.New[OrderPlaced](pubsub.WithPool[OrderPlaced](pool))
//	refunds := pubsub.New[RefundIssued](pubsub.WithPool[RefundIssued](pool))
func NewPool(maxWorkers int) Pool {
	if maxWorkers <= 0 {
		return unboundedPool{}
	}

	return &boundedPool{
		sem: semaphore.NewWeighted(int64(maxWorkers)),
	}
}

// unboundedPool runs each task on its own goroutine.
type unboundedPool struct{}

func (unboundedPool) Submit(task func()) {
	go task()
}

// boundedPool caps concurrent tasks with a weighted semaphore.
type boundedPool struct {
	sem *semaphore.Weighted
}

func (p *boundedPool) Submit(task func()) {
	// Acquire with a background context cannot be interrupted, so the only
	// way out is a freed worker slot.
	_ = p.sem.Acquire(context.Background(), 1)

	go func() {
		defer p.sem.Release(1)
		task()
	}()
}

// defaultPool serves publishers constructed without WithPool.
var defaultPool Pool = unboundedPool{}
