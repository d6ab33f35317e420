// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// and matmul packages. All kernels MUST return these sentinels (optionally
// wrapped with %w) and tests MUST check them via errors.Is. No kernel should
// panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap at the detection site with
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimension mismatch -> shape mismatch -> invalid shape.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive, or that a backing slice does not hold rows*cols elements.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) or a window is
	// outside valid bounds. Public indexers (At/Set/Window) return this.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a product was requested with
	// a.Cols != b.Rows, at the boundary or anywhere inside a recursion.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShapeMismatch indicates that element-wise operands (Add/Sub/Into)
	// or the four quadrants given to MergeQuadrants have unequal shapes.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidShape indicates that an input is not square, its side is not
	// a power of two, or a view cannot be halved exactly.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
