// Package workerpool provides the data-parallel fan-out the bandit
// core's UCB rounds need: arms, and the reference samples within an
// arm, are embarrassingly parallel and are dispatched onto a pool sized
// to the machine rather than spawned one goroutine per task.
//
// The bound-concurrency shape mirrors vecgo's resource.Controller,
// which wraps golang.org/x/sync/semaphore to cap how many goroutines a
// resource-heavy operation may run at once; here errgroup.Group's
// SetLimit gives the same bound along with first-error propagation.
package workerpool

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs submitted work with bounded concurrency.
type Pool struct {
	limit int
}

// New creates a Pool that runs at most numWorkers tasks concurrently. A
// non-positive numWorkers defaults to runtime.GOMAXPROCS(0), i.e. "sized
// to the machine".
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &Pool{limit: numWorkers}
}

// ParallelFor runs fn(i) for every i in [0, n), blocking until all
// invocations complete, with at most Pool's limit running concurrently.
// Updates that different invocations make to disjoint slices of shared
// arm-statistics arrays are safe without further synchronization; fn is
// responsible for only touching its own partition.
func (p *Pool) ParallelFor(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	var g errgroup.Group
	g.SetLimit(p.limit)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// Close is a no-op: a Pool holds no background goroutines between
// ParallelFor calls. It exists so callers can defer pool.Close()
// uniformly regardless of the underlying implementation.
func (p *Pool) Close() {}
