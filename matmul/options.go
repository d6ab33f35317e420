// SPDX-License-Identifier: MIT

// Package matmul: functional configuration for the recursive multipliers.
// This file defines:
//   - Option (functional options over an internal config),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options over the defaults.
//
// Design goals:
//   - Deterministic results: options tune speed only, never the output.
//   - No global state: every call resolves its own config, so the engine is
//     stateless and reentrant.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matmul

import (
	"fmt"

	"github.com/katalvlaran/quadmul/forkjoin"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultThreshold is the side length at or below which recursion stops
	// and the iterative kernel runs directly.
	DefaultThreshold = 128

	// DefaultMaxParallelDepth is the recursion depth from which the parallel
	// variants stop forking and continue sequentially. Fan-out at depth d is
	// up to 4*2^d (divide-and-conquer) or 7^d (Strassen) tasks, so a small
	// cap already saturates a typical machine.
	DefaultMaxParallelDepth = 4

	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers for per-call pools.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "matmul: WithThreshold: threshold must be >= 1"
	panicDepthInvalid     = "matmul: WithMaxParallelDepth: depth must be >= 0"
	panicWorkersInvalid   = "matmul: WithWorkers: workers must be >= 0"
	panicPoolNil          = "matmul: WithPool(nil)"
	panicHookNil          = "matmul: WithOnBaseCase(nil)"
)

// Option mutates the internal config. Safe to apply repeatedly; later
// options override earlier ones. Constructors panic only on nonsensical values.
type Option func(*config)

// config stores the effective configuration after applying Option setters.
type config struct {
	threshold  int                  // >= 1; DefaultThreshold
	maxDepth   int                  // >= 0; DefaultMaxParallelDepth
	workers    int                  // >= 0; DefaultWorkers (0 => GOMAXPROCS)
	pool       *forkjoin.Pool       // shared pool; nil => fresh pool per call
	onBaseCase func(rows, cols int) // never nil after gatherOptions
}

// WithThreshold sets the recursion base-case side length.
// Panics if t < 1.
//
// Notes:
//   - Any value is correct; it only moves the crossover between recursion
//     overhead and the iterative kernel. Tests use tiny thresholds to drive
//     deep recursion on small inputs.
func WithThreshold(t int) Option {
	if t < 1 {
		panic(panicThresholdInvalid)
	}

	return func(c *config) { c.threshold = t }
}

// WithMaxParallelDepth caps the recursion depth at which parallel variants
// still fork. 0 disables forking entirely. Panics if d < 0.
func WithMaxParallelDepth(d int) Option {
	if d < 0 {
		panic(panicDepthInvalid)
	}

	return func(c *config) { c.maxDepth = d }
}

// WithWorkers sizes the per-call pool (ignored when WithPool is given).
// 0 means GOMAXPROCS. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.workers = n }
}

// WithPool shares an existing pool across calls instead of building one per
// call. The pool's counters then accumulate over every call that used it.
// Panics on nil.
func WithPool(p *forkjoin.Pool) Option {
	if p == nil {
		panic(panicPoolNil)
	}

	return func(c *config) { c.pool = p }
}

// WithOnBaseCase installs a hook called once per iterative-kernel invocation
// made by the recursive multipliers, with the shape of the product computed.
// Parallel variants call it from many goroutines: fn must be safe for
// concurrent use. Panics on nil.
func WithOnBaseCase(fn func(rows, cols int)) Option {
	if fn == nil {
		panic(panicHookNil)
	}

	return func(c *config) { c.onBaseCase = fn }
}

// defaultConfig returns the documented defaults.
func defaultConfig() config {
	return config{
		threshold:  DefaultThreshold,
		maxDepth:   DefaultMaxParallelDepth,
		workers:    DefaultWorkers,
		onBaseCase: func(int, int) {},
	}
}

// gatherOptions applies opts in order over the defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// String renders the effective knobs; used in benchmark logs.
func (c config) String() string {
	return fmt.Sprintf("threshold=%d maxDepth=%d workers=%d sharedPool=%t", c.threshold, c.maxDepth, c.workers, c.pool != nil)
}
