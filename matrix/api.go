// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for neutral elements and shape helpers.
//   - Each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c). Handy to preallocate accumulation targets.
func ZerosLike(m Shaped) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}
