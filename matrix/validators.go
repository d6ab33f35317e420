// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/power-of-two checks here.
//  - Return sentinels wrapped with the validator tag so call sites can wrap again uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Dimension → Shape).

package matrix

import (
	"fmt"
	"math/bits"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Return: nil or wrapped ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Shaped) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
// Complexity: O(1).
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// ValidateSquarePow2 ensures m is square with a power-of-two side, the
// structural precondition of the recursive multipliers.
// Errors: ErrInvalidShape.
// Complexity: O(1).
func ValidateSquarePow2(m Shaped) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquarePow2",
			fmt.Errorf("%dx%d is not square: %w", m.Rows(), m.Cols(), ErrInvalidShape))
	}
	if !IsPowerOfTwo(m.Rows()) {
		return validatorErrorf("ValidateSquarePow2",
			fmt.Errorf("side %d is not a power of two: %w", m.Rows(), ErrInvalidShape))
	}

	return nil
}

// ValidateProductOut ensures out can hold a·b (out is a.Rows × b.Cols).
// Errors: ErrShapeMismatch.
// Complexity: O(1).
func ValidateProductOut(a, b, out Shaped) error {
	if out.Rows() != a.Rows() || out.Cols() != b.Cols() {
		return validatorErrorf("ValidateProductOut",
			fmt.Errorf("out %dx%d, want %dx%d: %w", out.Rows(), out.Cols(), a.Rows(), b.Cols(), ErrShapeMismatch))
	}

	return nil
}
