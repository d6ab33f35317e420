// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmul/matrix"
)

// TestSplit_Quadrants checks placement and zero-copy sharing.
func TestSplit_Quadrants(t *testing.T) {
	m := ramp(t, 4, 4)
	tl, tr, bl, br, err := matrix.Split(m.View())
	require.NoError(t, err)

	require.Equal(t, [][]int64{{0, 1}, {4, 5}}, rowsOf(tl))
	require.Equal(t, [][]int64{{2, 3}, {6, 7}}, rowsOf(tr))
	require.Equal(t, [][]int64{{8, 9}, {12, 13}}, rowsOf(bl))
	require.Equal(t, [][]int64{{10, 11}, {14, 15}}, rowsOf(br))
	for _, q := range []matrix.View{tl, tr, bl, br} {
		require.Equal(t, 4, q.Stride())
	}

	// a write through the owner is visible in the quadrant
	require.NoError(t, m.Set(3, 3, -5))
	v, err := br.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(-5), v)
}

// TestSplit_Nested splits a quadrant again; offsets compose.
func TestSplit_Nested(t *testing.T) {
	m := ramp(t, 8, 8)
	_, _, _, br, err := matrix.Split(m.View())
	require.NoError(t, err)
	_, tr, _, _, err := matrix.Split(br)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{38, 39}, {46, 47}}, rowsOf(tr))
	require.Equal(t, 4*8+6, tr.Offset())
}

// TestSplit_Invalid rejects sides that cannot be halved.
func TestSplit_Invalid(t *testing.T) {
	for _, sz := range [][2]int{{3, 4}, {4, 3}, {1, 1}, {2, 1}} {
		_, _, _, _, err := matrix.Split(MustDense(t, sz[0], sz[1]).View())
		require.ErrorIs(t, err, matrix.ErrInvalidShape, "%dx%d", sz[0], sz[1])
	}
	_, _, _, _, err := matrix.SplitMut(MustDense(t, 3, 3).ViewMut())
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

// TestSplitMerge_RoundTrip: Split then MergeQuadrants of materialized
// quadrants reproduces the original.
func TestSplitMerge_RoundTrip(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16} {
		m := MustDense(t, n, n)
		fillRand(t, m, int64(n))
		tl, tr, bl, br, err := matrix.Split(m.View())
		require.NoError(t, err)

		merged, err := matrix.MergeQuadrants(tl.ToDense(), tr.ToDense(), bl.ToDense(), br.ToDense())
		require.NoError(t, err)
		if diff := cmp.Diff(rowsOf(m.View()), rowsOf(merged.View())); diff != "" {
			t.Fatalf("n=%d round trip mismatch (-want +got):\n%s", n, diff)
		}
	}
}

// TestMergeQuadrants_Rectangular merges 1×2 blocks into 2×4.
func TestMergeQuadrants_Rectangular(t *testing.T) {
	c11 := MustRows(t, [][]int64{{1, 2}})
	c12 := MustRows(t, [][]int64{{3, 4}})
	c21 := MustRows(t, [][]int64{{5, 6}})
	c22 := MustRows(t, [][]int64{{7, 8}})

	m, err := matrix.MergeQuadrants(c11, c12, c21, c22)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{1, 2, 3, 4}, {5, 6, 7, 8}}, rowsOf(m.View()))
}

// TestMergeQuadrants_Errors covers nil and shape failures.
func TestMergeQuadrants_Errors(t *testing.T) {
	q := MustDense(t, 2, 2)
	_, err := matrix.MergeQuadrants(q, nil, q, q)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MergeQuadrants(q, q, q, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
