// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for parallel
// computation. A Pool is created once and reused across many operations,
// eliminating per-call goroutine spawn overhead.
//
// Besides flat data-parallel loops (ParallelFor), the pool supports nested
// fork/join through Group. A goroutine blocked in Group.Wait keeps executing
// queued work until its own children are done, so recursive divide and
// conquer algorithms can nest joins deeper than the number of workers
// without deadlocking the pool.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	g := pool.Group()
//	g.Go(func() error { return left() })
//	g.Go(func() error { return right() })
//	if err := g.Wait(); err != nil {
//	    return err
//	}
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu guards closed and every send on workC, so Close never races a send.
	mu     sync.RWMutex
	closed bool
}

// workItem is a single task queued on the pool, owned by the group that
// submitted it.
type workItem struct {
	fn    func() error
	group *Group
}

func (it workItem) run() {
	it.group.exec(it.fn)
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Forked tasks come in pairs per join, so leave room for a few
		// levels of pending work per worker before callers run inline.
		workC: make(chan workItem, numWorkers*16),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.run()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// submit hands item to the workers without blocking. It reports false when
// the queue is full and the caller has to run the item itself.
func (p *Pool) submit(item workItem) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false, ErrClosed
	}
	select {
	case p.workC <- item:
		return true, nil
	default:
		return false, nil
	}
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
// A panic in fn is re-raised on the calling goroutine as a *PanicError.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.Closed() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Determine number of workers to use (don't use more workers than items)
	workers := min(p.numWorkers, n)

	// For very small n, just run sequentially
	if workers == 1 {
		fn(0, n)
		return
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	g := p.Group()
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			break
		}
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		panic(err)
	}
}
