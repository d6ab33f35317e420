// SPDX-License-Identifier: MIT

// Package forkjoin provides the structured "spawn N, block until all done"
// primitive the recursive multipliers fork their branches through.
//
// A Pool bounds how many forked tasks run on their own goroutine at once.
// When every worker slot is busy a task runs inline on the goroutine that
// called Join instead of waiting for a slot, so nested joins (a forked task
// that itself joins) can never deadlock on slot exhaustion, and the number
// of live goroutines stays close to the pool size regardless of recursion
// fan-out.
//
// Usage:
//
//	pool := forkjoin.New(runtime.GOMAXPROCS(0))
//	var left, right *matrix.Dense
//	err := pool.Join(
//	    func() (err error) { left, err = f(a); return err },
//	    func() (err error) { right, err = f(b); return err },
//	)
//
// Join never returns before every task has returned, even when one of them
// failed: callers may combine results right after a nil error, and may drop
// partial results after a non-nil one.
package forkjoin

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sys/cpu"
)

// Task is one independent unit of work forked by Join.
type Task func() error

// Pool is a bounded fork-join executor. The zero value is not usable; build
// one with New. A nil *Pool is valid and runs every Join sequentially.
// A Pool is safe for concurrent use and may be shared across calls.
type Pool struct {
	workers int
	sem     *semaphore.Weighted
	stats   counters
}

// counters are updated from many goroutines at once; padding keeps each on
// its own cache line.
type counters struct {
	_       cpu.CacheLinePad
	forked  atomic.Int64
	_       cpu.CacheLinePad
	inlined atomic.Int64
	_       cpu.CacheLinePad
	joins   atomic.Int64
	_       cpu.CacheLinePad
}

// Stats is a snapshot of how tasks were scheduled by a Pool.
type Stats struct {
	Forked  int64 // tasks run on their own goroutine
	Inlined int64 // tasks run on the joining goroutine
	Joins   int64 // Join calls
}

// New creates a pool allowing up to workers concurrently forked tasks.
// If workers <= 0, uses GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Pool{workers: workers, sem: semaphore.NewWeighted(int64(workers))}
}

// Workers returns the maximum number of concurrently forked tasks.
// A nil pool reports 0.
func (p *Pool) Workers() int {
	if p == nil {
		return 0
	}

	return p.workers
}

// Stats returns the scheduling counters accumulated so far.
func (p *Pool) Stats() Stats {
	if p == nil {
		return Stats{}
	}

	return Stats{
		Forked:  p.stats.forked.Load(),
		Inlined: p.stats.inlined.Load(),
		Joins:   p.stats.joins.Load(),
	}
}

// Join runs tasks concurrently and blocks until all of them complete.
//
// Implementation:
//   - Stage 1: for every task but the last, try to take a worker slot; on
//     success run it on an errgroup goroutine, otherwise queue it inline.
//   - Stage 2: run the last task and the queued ones on the caller.
//   - Stage 3: wait for the group (the join barrier).
//
// Behavior highlights:
//   - Returns the first error observed: inline errors win over forked ones
//     because they are observed before the barrier; ties among forked tasks
//     resolve as errgroup does (first to return).
//   - After an inline task fails the remaining inline tasks are skipped;
//     forked tasks are never interrupted (there is no cancellation).
//   - A nil pool runs the tasks one by one in order and stops at the first error.
func (p *Pool) Join(tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if p == nil {
		return runInline(tasks)
	}
	p.stats.joins.Add(1)

	var g errgroup.Group
	inline := make([]Task, 0, len(tasks))
	last := len(tasks) - 1
	for _, t := range tasks[:last] {
		t := t
		if !p.sem.TryAcquire(1) {
			inline = append(inline, t)
			continue
		}
		p.stats.forked.Add(1)
		g.Go(func() error {
			defer p.sem.Release(1)
			return t()
		})
	}
	inline = append(inline, tasks[last])
	p.stats.inlined.Add(int64(len(inline)))

	inlineErr := runInline(inline)
	forkErr := g.Wait() // barrier: every forked task has returned past this line
	if inlineErr != nil {
		return inlineErr
	}

	return forkErr
}

// runInline executes tasks in order on the calling goroutine.
func runInline(tasks []Task) error {
	for _, t := range tasks {
		if err := t(); err != nil {
			return err
		}
	}

	return nil
}
