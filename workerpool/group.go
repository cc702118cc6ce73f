// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Group is a fork/join scope on a Pool. Tasks forked with Go run on the
// pool's workers (or inline when the queue is full) and Wait joins them.
//
// A Group is single use: Go must not be called after Wait.
type Group struct {
	pool *Pool

	// pending counts unfinished tasks plus one token held by the waiter,
	// so done cannot close before Wait has been called.
	pending atomic.Int64
	done    chan struct{}

	errOnce sync.Once
	err     error
}

// Group returns a new fork/join scope on p.
func (p *Pool) Group() *Group {
	g := &Group{
		pool: p,
		done: make(chan struct{}),
	}
	g.pending.Store(1)
	return g
}

// Go forks fn. It never blocks: if every worker is busy and the queue is
// full, fn runs on the calling goroutine before Go returns. Forking on a
// closed pool records ErrClosed and fn is not run.
func (g *Group) Go(fn func() error) {
	g.pending.Add(1)
	item := workItem{fn: fn, group: g}

	queued, err := g.pool.submit(item)
	switch {
	case err != nil:
		g.fail(err)
		g.finish()
	case !queued:
		item.run()
	}
}

// Wait blocks until every task forked on g has returned, and reports the
// first error (or *PanicError) any of them produced.
//
// While waiting, the calling goroutine runs other queued pool work instead
// of parking, which keeps nested joins from starving the pool.
func (g *Group) Wait() error {
	g.finish()

	for {
		select {
		case <-g.done:
			return g.err
		default:
		}

		select {
		case <-g.done:
			return g.err
		case item, ok := <-g.pool.workC:
			if !ok {
				// Pool closed and drained: the remaining tasks are already
				// running on other goroutines.
				<-g.done
				return g.err
			}
			item.run()
		}
	}
}

func (g *Group) exec(fn func() error) {
	defer g.finish()
	defer func() {
		if r := recover(); r != nil {
			g.fail(&PanicError{Value: r, Stack: debug.Stack()})
		}
	}()
	if err := fn(); err != nil {
		g.fail(err)
	}
}

func (g *Group) fail(err error) {
	g.errOnce.Do(func() {
		g.err = err
	})
}

func (g *Group) finish() {
	if g.pending.Add(-1) == 0 {
		close(g.done)
	}
}
