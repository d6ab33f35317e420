// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmul/matrix"
)

// TestAddSub_Basic covers the element-wise contract on owned matrices.
func TestAddSub_Basic(t *testing.T) {
	a := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a.View(), b.View())
	require.NoError(t, err)
	require.Equal(t, [][]int64{{11, 22}, {33, 44}}, rowsOf(sum.View()))

	diff, err := matrix.Sub(a.View(), b.View())
	require.NoError(t, err)
	require.Equal(t, [][]int64{{-9, -18}, {-27, -36}}, rowsOf(diff.View()))

	// inputs untouched
	require.Equal(t, [][]int64{{1, 2}, {3, 4}}, rowsOf(a.View()))
}

// TestAddSub_MixedStrides adds two windows whose strides differ.
func TestAddSub_MixedStrides(t *testing.T) {
	big := ramp(t, 4, 4)
	tl, _, _, br, err := matrix.Split(big.View())
	require.NoError(t, err)
	small := MustRows(t, [][]int64{{1, 1}, {1, 1}})

	sum, err := matrix.Add(br, small.View())
	require.NoError(t, err)
	require.Equal(t, [][]int64{{11, 12}, {15, 16}}, rowsOf(sum.View()))

	diff, err := matrix.Sub(br, tl)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{10, 10}, {10, 10}}, rowsOf(diff.View()))
}

// TestAddSub_ShapeMismatch rejects unequal shapes.
func TestAddSub_ShapeMismatch(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)
	_, err := matrix.Add(a.View(), b.View())
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Sub(a.View(), b.View())
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.ErrorIs(t, matrix.AddInto(a.View(), a.View(), b.ViewMut()), matrix.ErrShapeMismatch)
}

// TestAddSubInto_InPlace accumulates into an operand that aliases out exactly.
func TestAddSubInto_InPlace(t *testing.T) {
	acc := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int64{{1, 1}, {1, 1}})

	require.NoError(t, matrix.AddInto(acc.View(), b.View(), acc.ViewMut()))
	require.Equal(t, [][]int64{{2, 3}, {4, 5}}, rowsOf(acc.View()))

	require.NoError(t, matrix.SubInto(acc.View(), b.View(), acc.ViewMut()))
	require.NoError(t, matrix.SubInto(acc.View(), b.View(), acc.ViewMut()))
	require.Equal(t, [][]int64{{0, 1}, {2, 3}}, rowsOf(acc.View()))
}

// TestAddInto_QuadrantTarget writes into one quadrant and leaves the rest alone.
func TestAddInto_QuadrantTarget(t *testing.T) {
	out := MustDense(t, 4, 4)
	_, tr, _, _, err := matrix.SplitMut(out.ViewMut())
	require.NoError(t, err)
	x := MustRows(t, [][]int64{{1, 2}, {3, 4}})

	require.NoError(t, matrix.AddInto(x.View(), x.View(), tr))
	require.Equal(t, [][]int64{
		{0, 0, 2, 4},
		{0, 0, 6, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, rowsOf(out.View()))
}
