// SPDX-License-Identifier: MIT
// Package matrix: block decomposition and quadrant merge.
//
// Split halves a view along both axes into four views over the same buffer:
//
//	+-----+-----+
//	| TL  | TR  |
//	+-----+-----+
//	| BL  | BR  |
//	+-----+-----+
//
// Only exact halves are supported; ragged splits (odd sides) are rejected.
// MergeQuadrants is the inverse for owned matrices.

package matrix

import "fmt"

// validateHalvable rejects views whose sides cannot be halved exactly.
func validateHalvable(s Shaped) error {
	r, c := s.Rows(), s.Cols()
	if r < 2 || c < 2 || r%2 != 0 || c%2 != 0 {
		return fmt.Errorf("%dx%d cannot be halved: %w", r, c, ErrInvalidShape)
	}

	return nil
}

// Split returns the four quadrant views of v (top-left, top-right,
// bottom-left, bottom-right), each Rows()/2 × Cols()/2 with v's stride.
//
// Errors:
//   - ErrInvalidShape when either side is odd or smaller than 2.
//
// Complexity: Time O(1), Space O(1); no allocation.
func Split(v View) (tl, tr, bl, br View, err error) {
	if err = validateHalvable(v); err != nil {
		return View{}, View{}, View{}, View{}, matrixErrorf(opSplit, err)
	}
	tl, tr, bl, br = Quadrants(v)

	return tl, tr, bl, br, nil
}

// SplitMut is Split for writable views. The four results are disjoint and
// may be written concurrently by different goroutines.
func SplitMut(v ViewMut) (tl, tr, bl, br ViewMut, err error) {
	if err = validateHalvable(v); err != nil {
		return ViewMut{}, ViewMut{}, ViewMut{}, ViewMut{}, matrixErrorf(opSplit, err)
	}
	tl, tr, bl, br = QuadrantsMut(v)

	return tl, tr, bl, br, nil
}

// Quadrants is the unchecked form of Split for callers that validated the
// power-of-two shape once at their boundary (the recursive multipliers).
// With odd sides the bottom/right quadrants silently drop the last row/column.
func Quadrants(v View) (tl, tr, bl, br View) {
	h, w := v.r/2, v.c/2

	return v.window(0, 0, h, w), v.window(0, w, h, w), v.window(h, 0, h, w), v.window(h, w, h, w)
}

// QuadrantsMut is the unchecked form of SplitMut.
func QuadrantsMut(v ViewMut) (tl, tr, bl, br ViewMut) {
	h, w := v.r/2, v.c/2

	return v.window(0, 0, h, w), v.window(0, w, h, w), v.window(h, 0, h, w), v.window(h, w, h, w)
}

// MergeQuadrants assembles four equally shaped owned blocks into one
// 2r × 2c matrix:
//
//	[ c11 c12 ]
//	[ c21 c22 ]
//
// Implementation:
//   - Stage 1: reject nil blocks, then require all four shapes to match c11.
//   - Stage 2: allocate the result and copy each block row into its offset region.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(4*r*c), Space O(4*r*c).
func MergeQuadrants(c11, c12, c21, c22 *Dense) (*Dense, error) {
	for _, q := range [...]*Dense{c11, c12, c21, c22} {
		if err := ValidateNotNil(q); err != nil {
			return nil, matrixErrorf(opMerge, err)
		}
	}
	for _, q := range [...]*Dense{c12, c21, c22} {
		if err := ValidateSameShape(c11, q); err != nil {
			return nil, matrixErrorf(opMerge, err)
		}
	}

	h, w := c11.r, c11.c
	res, err := NewDense(2*h, 2*w)
	if err != nil {
		return nil, matrixErrorf(opMerge, err)
	}
	var i, top, bottom int
	for i = 0; i < h; i++ {
		top = i * res.c          // row i of the result
		bottom = (i + h) * res.c // row i+h of the result
		copy(res.data[top:top+w], c11.data[i*w:(i+1)*w])
		copy(res.data[top+w:top+2*w], c12.data[i*w:(i+1)*w])
		copy(res.data[bottom:bottom+w], c21.data[i*w:(i+1)*w])
		copy(res.data[bottom+w:bottom+2*w], c22.data[i*w:(i+1)*w])
	}

	return res, nil
}
