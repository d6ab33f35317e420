// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through config.

package builder

import (
	"math/rand"
)

// Option customizes a builder call by mutating config before generation.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
//
// Notes:
//   - The builder advances r; share one r across calls to get a stream of
//     distinct matrices (the benchmark loop does this per iteration).
//   - *rand.Rand is not safe for concurrent use; neither is a shared r here.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange sets the half-open interval [lo, hi) for random entries.
// Panics if hi <= lo or if hi-lo overflows int64.
func WithRange(lo, hi int64) Option {
	if hi <= lo || hi-lo <= 0 {
		panic("builder: WithRange: need lo < hi with hi-lo representable")
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}
