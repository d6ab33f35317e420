// Package matrix provides owned integer matrices and the borrowed strided
// views the recursive multipliers operate on.
//
// The matrix package provides:
//
//   - Dense: an owned, contiguous, row-major []int64 buffer (len == rows*cols).
//   - View / ViewMut: non-owning (offset, rows, cols, stride) windows into a
//     buffer; stride exceeds cols whenever the window is a submatrix.
//   - Split / SplitMut: halve a view into four quadrant views over the same
//     buffer, without allocating.
//   - Add / Sub: materialize the sum or difference of two views into a fresh
//     Dense, because a sum cannot be expressed as a view.
//   - MergeQuadrants: assemble four owned blocks into one double-size matrix.
//
// All public operations validate their inputs and return sentinel errors
// (ErrDimensionMismatch, ErrShapeMismatch, ErrInvalidShape, ...) matched with
// errors.Is. Arithmetic is exact int64 arithmetic.
//
// See the matmul package for the multipliers built on top of these types.
package matrix
