// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public matrix factories.
//
// Determinism:
//   - Entries are drawn in row-major order; same seed ⇒ same matrix.
//   - RandomPair draws all of A before any of B.

package builder

import (
	"github.com/katalvlaran/quadmul/matrix"
)

// Method tags for error context.
const (
	methodRandom     = "Random"
	methodRandomPair = "RandomPair"
	methodRamp       = "Ramp"
	minDim           = 1
)

// Random returns a rows×cols matrix with entries drawn uniformly from the
// configured range (default [0, 10)).
//
// Errors:
//   - ErrTooSmall (rows or cols < 1), ErrNeedRandSource (no WithSeed/WithRand).
//
// Complexity: Time O(rows*cols), Space O(rows*cols).
func Random(rows, cols int, opts ...Option) (*matrix.Dense, error) {
	cfg := newConfig(opts...)

	return random(methodRandom, rows, cols, cfg)
}

// RandomPair returns two n×n operands drawn from the same source, A first.
// This is the benchmark's per-iteration input.
//
// Errors: as Random.
func RandomPair(n int, opts ...Option) (a, b *matrix.Dense, err error) {
	cfg := newConfig(opts...)
	if a, err = random(methodRandomPair, n, n, cfg); err != nil {
		return nil, nil, err
	}
	if b, err = random(methodRandomPair, n, n, cfg); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// random validates, then fills a fresh buffer in row-major order.
func random(method string, rows, cols int, cfg config) (*matrix.Dense, error) {
	if err := validateMin(method, "rows", rows, minDim); err != nil {
		return nil, err
	}
	if err := validateMin(method, "cols", cols, minDim); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, builderErrorf(method, ErrNeedRandSource)
	}

	data := make([]int64, rows*cols)
	for i := range data {
		data[i] = cfg.draw()
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		return nil, builderErrorf(method, err)
	}

	return m, nil
}

// Ramp returns a rows×cols matrix holding start, start+1, ... in row-major order.
// Deterministic; options are not consulted.
//
// Errors: ErrTooSmall.
func Ramp(rows, cols int, start int64) (*matrix.Dense, error) {
	if err := validateMin(methodRamp, "rows", rows, minDim); err != nil {
		return nil, err
	}
	if err := validateMin(methodRamp, "cols", cols, minDim); err != nil {
		return nil, err
	}

	data := make([]int64, rows*cols)
	for i := range data {
		data[i] = start + int64(i)
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		return nil, builderErrorf(methodRamp, err)
	}

	return m, nil
}
