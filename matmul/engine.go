// SPDX-License-Identifier: MIT

package matmul

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quadmul/forkjoin"
	"github.com/katalvlaran/quadmul/matrix"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm and Multiply for an
// Algorithm value or name outside the supported set.
var ErrUnknownAlgorithm = errors.New("matmul: unknown algorithm")

// Operation name constants for unified error wrapping.
const (
	opIterative      = "Iterative"
	opIterativeInto  = "IterativeInto"
	opDC             = "DivideAndConquer"
	opDCSeq          = "DivideAndConquerSequential"
	opDCInto         = "DivideAndConquerInto"
	opStrassen       = "Strassen"
	opStrassenSeq    = "StrassenSequential"
	opMultiply       = "Multiply"
	opParseAlgorithm = "ParseAlgorithm"
)

// matmulErrorf wraps err with an operation tag, preserving it for errors.Is.
func matmulErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// engine is the per-call state shared by one top-level recursive multiply.
// It holds no data, only the resolved knobs and the pool branches fork on.
type engine struct {
	cfg  config
	pool *forkjoin.Pool // nil => sequential recursion
}

// newEngine resolves opts; parallel selects whether branches fork at all.
func newEngine(parallel bool, opts ...Option) *engine {
	cfg := gatherOptions(opts...)
	e := &engine{cfg: cfg}
	if !parallel {
		return e
	}
	e.pool = cfg.pool
	if e.pool == nil {
		e.pool = forkjoin.New(cfg.workers)
	}

	return e
}

// poolAt returns the pool to fork on at the given recursion depth, or nil
// (sequential) once the depth cap is reached.
func (e *engine) poolAt(depth int) *forkjoin.Pool {
	if depth >= e.cfg.maxDepth {
		return nil
	}

	return e.pool
}

// isBase reports whether a product of side n is computed directly.
func (e *engine) isBase(n int) bool { return n <= e.cfg.threshold }

// base runs the iterative kernel for one leaf of the recursion.
func (e *engine) base(a, b matrix.View) (*matrix.Dense, error) {
	e.cfg.onBaseCase(a.Rows(), b.Cols())

	return Iterative(a, b)
}

// baseInto runs the accumulating kernel for one leaf of the recursion.
func (e *engine) baseInto(a, b matrix.View, out matrix.ViewMut) error {
	e.cfg.onBaseCase(a.Rows(), b.Cols())

	return IterativeInto(a, b, out)
}

// validateRecursive is the boundary check shared by the recursive algorithms:
// compatible inner dimensions first, then square power-of-two operands.
func validateRecursive(a, b matrix.View) error {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if err := matrix.ValidateSquarePow2(a); err != nil {
		return err
	}

	return matrix.ValidateSquarePow2(b)
}
