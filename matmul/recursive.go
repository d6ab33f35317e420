// SPDX-License-Identifier: MIT

package matmul

import (
	"github.com/katalvlaran/quadmul/forkjoin"
	"github.com/katalvlaran/quadmul/matrix"
)

// DivideAndConquer multiplies two square power-of-two views by block
// recursion, forking independent branches in parallel.
//
// Implementation:
//   - Base case: side <= threshold → iterative kernel.
//   - Otherwise split A and B into quadrants and compute
//     C11 = A11·B11 + A12·B21, C12 = A11·B12 + A12·B22,
//     C21 = A21·B11 + A22·B21, C22 = A21·B12 + A22·B22.
//     Each quadrant forks its two products, joins, then adds them; the four
//     quadrant computations are themselves forked. MergeQuadrants assembles
//     the result after the outer join.
//
// Behavior highlights:
//   - Every branch writes only to matrices it allocated itself; inputs are shared read-only.
//   - Below WithMaxParallelDepth the recursion continues sequentially.
//
// Errors:
//   - ErrDimensionMismatch, ErrInvalidShape (boundary), first branch error otherwise.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) live per level of recursion.
func DivideAndConquer(a, b matrix.View, opts ...Option) (*matrix.Dense, error) {
	if err := validateRecursive(a, b); err != nil {
		return nil, matmulErrorf(opDC, err)
	}
	c, err := newEngine(true, opts...).dc(a, b, 0)
	if err != nil {
		return nil, matmulErrorf(opDC, err)
	}

	return c, nil
}

// DivideAndConquerSequential performs the same recursion as DivideAndConquer
// without forking. It is the correctness oracle for the parallel variants and
// the cheaper choice for small inputs where fork overhead dominates.
func DivideAndConquerSequential(a, b matrix.View, opts ...Option) (*matrix.Dense, error) {
	if err := validateRecursive(a, b); err != nil {
		return nil, matmulErrorf(opDCSeq, err)
	}
	c, err := newEngine(false, opts...).dc(a, b, 0)
	if err != nil {
		return nil, matmulErrorf(opDCSeq, err)
	}

	return c, nil
}

// dc is the allocating divide-and-conquer recursion.
func (e *engine) dc(a, b matrix.View, depth int) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	if e.isBase(a.Rows()) {
		return e.base(a, b)
	}

	a11, a12, a21, a22 := matrix.Quadrants(a)
	b11, b12, b21, b22 := matrix.Quadrants(b)
	pool := e.poolAt(depth)

	// quadrant returns the task computing dst = x1·y1 + x2·y2.
	quadrant := func(dst **matrix.Dense, x1, y1, x2, y2 matrix.View) forkjoin.Task {
		return func() error {
			var p1, p2 *matrix.Dense
			err := pool.Join(
				func() (err error) { p1, err = e.dc(x1, y1, depth+1); return err },
				func() (err error) { p2, err = e.dc(x2, y2, depth+1); return err },
			)
			if err != nil {
				return err
			}
			sum, err := matrix.Add(p1.View(), p2.View())
			if err != nil {
				return err
			}
			*dst = sum

			return nil
		}
	}

	var c [4]*matrix.Dense // each slot written by exactly one task
	err := pool.Join(
		quadrant(&c[0], a11, b11, a12, b21),
		quadrant(&c[1], a11, b12, a12, b22),
		quadrant(&c[2], a21, b11, a22, b21),
		quadrant(&c[3], a21, b12, a22, b22),
	)
	if err != nil {
		return nil, err
	}

	return matrix.MergeQuadrants(c[0], c[1], c[2], c[3])
}

// DivideAndConquerInto accumulates out += A × B by block recursion directly
// into the quadrants of out, allocating no intermediate matrices.
//
// Implementation:
//   - Base case: side <= threshold → IterativeInto on the out quadrant.
//   - Otherwise each out quadrant receives its two products one after the
//     other (both accumulate into the same window, so they must not overlap
//     in time); the four quadrants are disjoint and are forked.
//
// Behavior highlights:
//   - No scratch buffer is shared between branches: concurrently active
//     calls always write to disjoint windows of out.
//   - out must be zeroed by the caller for a plain product.
//   - out must not overlap A or B.
//
// Errors:
//   - ErrDimensionMismatch, ErrInvalidShape, ErrShapeMismatch (out shape).
func DivideAndConquerInto(a, b matrix.View, out matrix.ViewMut, opts ...Option) error {
	if err := validateRecursive(a, b); err != nil {
		return matmulErrorf(opDCInto, err)
	}
	if err := matrix.ValidateProductOut(a, b, out); err != nil {
		return matmulErrorf(opDCInto, err)
	}
	if err := newEngine(true, opts...).dcInto(a, b, out, 0); err != nil {
		return matmulErrorf(opDCInto, err)
	}

	return nil
}

// dcInto is the accumulating divide-and-conquer recursion.
func (e *engine) dcInto(a, b matrix.View, out matrix.ViewMut, depth int) error {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if e.isBase(a.Rows()) {
		return e.baseInto(a, b, out)
	}

	a11, a12, a21, a22 := matrix.Quadrants(a)
	b11, b12, b21, b22 := matrix.Quadrants(b)
	c11, c12, c21, c22 := matrix.QuadrantsMut(out)

	// quadrant returns the task computing dst += x1·y1 + x2·y2; the two
	// accumulations target the same window and therefore run in sequence.
	quadrant := func(dst matrix.ViewMut, x1, y1, x2, y2 matrix.View) forkjoin.Task {
		return func() error {
			if err := e.dcInto(x1, y1, dst, depth+1); err != nil {
				return err
			}
			return e.dcInto(x2, y2, dst, depth+1)
		}
	}

	return e.poolAt(depth).Join(
		quadrant(c11, a11, b11, a12, b21),
		quadrant(c12, a11, b12, a12, b22),
		quadrant(c21, a21, b11, a22, b21),
		quadrant(c22, a21, b12, a22, b22),
	)
}
