// SPDX-License-Identifier: MIT

// Package matrix: shared shape contract and operation tags.
// This file intentionally contains ONLY the small interfaces and constants the
// other files build on. Errors live in errors.go, storage in impl_dense.go,
// views in impl_view.go.
package matrix

import "fmt"

// Shaped is anything with a row/column count: *Dense, View and ViewMut.
// Validators accept Shaped so one guard serves owned and borrowed operands.
// Complexity: both methods are expected O(1).
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opAddInto = "AddInto"
	opSubInto = "SubInto"
	opMerge   = "MergeQuadrants"
	opSplit   = "Split"
	opFrom    = "NewDenseFrom"
	opRows    = "FromRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
