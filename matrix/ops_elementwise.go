// SPDX-License-Identifier: MIT
// Package matrix: element-wise Add/Sub over views.
//
// Purpose:
//   - A sum of two views cannot itself be a view; Add/Sub materialize it into
//     a freshly owned Dense so it can feed the next recursive product.
//   - AddInto/SubInto write into a caller-provided ViewMut instead, for
//     combine steps that already own a destination.
//
// Determinism:
//   - Fixed i→j order; each row walks two contiguous slices.

package matrix

// addSubRows computes out[i,*] = a[i,*] + sign*b[i,*] for every row.
// Shapes are assumed validated. out may alias a or b exactly (same window);
// partial overlap is not supported.
// Complexity: Time O(r*c), Space O(1).
func addSubRows(a, b View, sign int64, out ViewMut) {
	var i, j int
	for i = 0; i < a.r; i++ {
		ar, br, or := a.Row(i), b.Row(i), out.Row(i)
		if sign > 0 {
			for j = range or {
				or[j] = ar[j] + br[j]
			}
			continue
		}
		for j = range or {
			or[j] = ar[j] - br[j]
		}
	}
}

// addSub allocates a compact result and fills it with a + sign*b.
// Internal helper for Add/Sub to share validation and allocation.
func addSub(a, b View, sign int64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	addSubRows(a, b, sign, res.ViewMut())

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate identical shapes.
//   - Stage 2: Allocate a compact Dense and walk both views row by row.
//
// Errors:
//   - ErrShapeMismatch (shape mismatch), ErrInvalidDimensions (empty operands).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inputs are never mutated; strides of a and b may differ.
func Add(a, b View) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same contract as Add.
func Sub(a, b View) (*Dense, error) { return addSub(a, b, -1, opSub) }

// AddInto writes a + b into out without allocating.
// Errors: ErrShapeMismatch when any of the three shapes differ.
// Complexity: Time O(r*c), Space O(1).
func AddInto(a, b View, out ViewMut) error {
	if err := validateInto(a, b, out); err != nil {
		return matrixErrorf(opAddInto, err)
	}
	addSubRows(a, b, +1, out)

	return nil
}

// SubInto writes a - b into out without allocating.
// Same contract as AddInto.
func SubInto(a, b View, out ViewMut) error {
	if err := validateInto(a, b, out); err != nil {
		return matrixErrorf(opSubInto, err)
	}
	addSubRows(a, b, -1, out)

	return nil
}

// validateInto checks a, b and out share one shape (a first, then out).
func validateInto(a, b View, out ViewMut) error {
	if err := ValidateSameShape(a, b); err != nil {
		return err
	}

	return ValidateSameShape(a, out)
}
