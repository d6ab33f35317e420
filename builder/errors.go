// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach method context with %w.
//   - Matrix-level failures (matrix.ErrInvalidDimensions) pass through wrapped.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a size parameter (rows, cols, n) below the allowed minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic builder ran without an RNG;
// supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf wraps err with the given method context.
// The result reads "<Method>: <err>" and keeps err visible to errors.Is.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
