// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng    = nil      (stochastic builders fail with ErrNeedRandSource)
//   - lo, hi = 0, 10    (single-digit entries, as the benchmark expects)

package builder

import (
	"math/rand"
)

// Default entry range for Random: [DefaultLow, DefaultHigh).
const (
	DefaultLow  int64 = 0
	DefaultHigh int64 = 10
)

// config aggregates all knobs used by builders. Passed by value.
type config struct {
	rng    *rand.Rand // nil means "no randomness"
	lo, hi int64      // half-open entry range, lo < hi
}

// newConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{lo: DefaultLow, hi: DefaultHigh}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// draw returns one entry in [cfg.lo, cfg.hi). cfg.rng must be non-nil.
func (cfg config) draw() int64 {
	return cfg.lo + cfg.rng.Int63n(cfg.hi-cfg.lo)
}
