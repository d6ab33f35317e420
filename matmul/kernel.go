// SPDX-License-Identifier: MIT

package matmul

import (
	"github.com/katalvlaran/quadmul/matrix"
)

// Iterative computes C = A × B with the cache-friendly i→k→j triple loop and
// returns a freshly allocated result.
//
// Implementation:
//   - Stage 1: validate A.Cols == B.Rows.
//   - Stage 2: allocate C (A.Rows × B.Cols) and accumulate into it via mulAdd.
//
// Behavior highlights:
//   - The inner loop streams one row of B and one row of C sequentially,
//     which is what makes this order cache-friendly on row-major storage.
//   - Works on any compatible rectangular views; no power-of-two requirement.
//
// Errors:
//   - ErrDimensionMismatch, ErrInvalidDimensions (empty operands).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Iterative(a, b matrix.View) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, matmulErrorf(opIterative, err)
	}
	out, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matmulErrorf(opIterative, err)
	}
	mulAdd(a, b, out.ViewMut())

	return out, nil
}

// IterativeInto accumulates out += A × B in place, without allocating.
// out must be A.Rows × B.Cols and must not overlap A or B.
//
// Errors:
//   - ErrDimensionMismatch (A.Cols != B.Rows), ErrShapeMismatch (out shape).
//
// Complexity:
//   - Time O(r*n*c), Space O(1).
func IterativeInto(a, b matrix.View, out matrix.ViewMut) error {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return matmulErrorf(opIterativeInto, err)
	}
	if err := matrix.ValidateProductOut(a, b, out); err != nil {
		return matmulErrorf(opIterativeInto, err)
	}
	mulAdd(a, b, out)

	return nil
}

// mulAdd is the shared kernel: out[i,j] += Σ_k a[i,k]·b[k,j], shapes assumed valid.
// Zero a[i,k] entries are skipped.
func mulAdd(a, b matrix.View, out matrix.ViewMut) {
	var (
		i, k   int
		av     int64
		ar, cr []int64
	)
	rows, inner := a.Rows(), a.Cols()
	for i = 0; i < rows; i++ {
		ar = a.Row(i)
		cr = out.Row(i)
		for k = 0; k < inner; k++ {
			av = ar[k]
			if av == 0 {
				continue // skip zero for performance
			}
			for j, bv := range b.Row(k) {
				cr[j] += av * bv
			}
		}
	}
}
