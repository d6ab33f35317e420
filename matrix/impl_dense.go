// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major int64 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Hand out no-copy windows (View / ViewMut) for the recursive multipliers.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int64 values that owns its storage.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (>0)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Shaped       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewDenseFrom wraps an existing row-major slice without copying.
// The Dense takes ownership of data: the caller must not keep writing to it.
//
// Errors:
//   - ErrInvalidDimensions when rows/cols are non-positive or len(data) != rows*cols.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewDenseFrom(rows, cols int, data []int64) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, matrixErrorf(opFrom, fmt.Errorf("%dx%d with %d elements: %w", rows, cols, len(data), ErrInvalidDimensions))
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows copies a rectangular [][]int64 literal into a new Dense.
// Handy for fixtures: FromRows([][]int64{{1, 2}, {3, 4}}).
//
// Errors:
//   - ErrInvalidDimensions when rows is empty, a row is empty, or rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]int64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrInvalidDimensions))
		}
		data = append(data, row...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange wrapped with
// the caller's method tag and coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange when indices are invalid.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange when indices are invalid.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and identical elements.
// Two nil matrices are equal; a nil and a non-nil one are not.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// View returns a read-only window over the whole matrix (stride == cols).
// Complexity: O(1).
func (m *Dense) View() View {
	return View{data: m.data, r: m.r, c: m.c, stride: m.c}
}

// ViewMut returns a writable window over the whole matrix (stride == cols).
// Writes through the view land in m.
// Complexity: O(1).
func (m *Dense) ViewMut() ViewMut {
	return ViewMut{data: m.data, r: m.r, c: m.c, stride: m.c}
}

// String renders rows as "[a, b]\n" lines for logs and debugging.
// Not for hot paths.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(strconv.FormatInt(m.data[base+j], 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
