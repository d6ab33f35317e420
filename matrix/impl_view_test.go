// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmul/matrix"
)

// TestView_Descriptor checks value(i,j) = data[off + i*stride + j].
func TestView_Descriptor(t *testing.T) {
	data := []int64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}
	v, err := matrix.NewView(data, 5, 2, 2, 4)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{5, 6}, {9, 10}}, rowsOf(v))
	require.Equal(t, 4, v.Stride())
	require.Equal(t, 5, v.Offset())

	_, err = matrix.NewView(data, 10, 2, 2, 4) // runs past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.NewView(data, 0, 2, 4, 3) // stride < cols
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.NewView(data, 0, 0, 4, 4)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestView_Window shares the buffer and rejects windows leaving the view.
func TestView_Window(t *testing.T) {
	m := ramp(t, 4, 4)
	w, err := m.View().Window(1, 2, 2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{6, 7}, {10, 11}}, rowsOf(w))

	inner, err := w.Window(1, 1, 1, 1)
	require.NoError(t, err)
	v, err := inner.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(11), v)

	_, err = m.View().Window(3, 3, 2, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = w.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestView_RowCapacity keeps appends from clobbering the neighbor column.
func TestView_RowCapacity(t *testing.T) {
	m := ramp(t, 2, 4)
	w, err := m.View().Window(0, 0, 2, 2)
	require.NoError(t, err)
	row := w.Row(0)
	require.Len(t, row, 2)
	require.Equal(t, 2, cap(row))
	_ = append(row, 99)

	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), v)
}

// TestViewMut_WriteThrough checks Set, Zero and CopyFrom land in the owner only
// within the window.
func TestViewMut_WriteThrough(t *testing.T) {
	m := ramp(t, 4, 4)
	w, err := m.ViewMut().Window(2, 2, 2, 2)
	require.NoError(t, err)

	require.NoError(t, w.Set(0, 0, -1))
	v, err := m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)

	w.Zero()
	require.Equal(t, [][]int64{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 0, 0},
		{12, 13, 0, 0},
	}, rowsOf(m.View()))

	src := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	require.NoError(t, w.CopyFrom(src.View()))
	require.Equal(t, [][]int64{{1, 2}, {3, 4}}, rowsOf(w.View()))

	require.ErrorIs(t, w.CopyFrom(MustDense(t, 1, 2).View()), matrix.ErrShapeMismatch)
	require.ErrorIs(t, w.Set(2, 0, 1), matrix.ErrOutOfRange)
}

// TestView_ToDense compacts a strided window.
func TestView_ToDense(t *testing.T) {
	m := ramp(t, 4, 4)
	w, err := m.View().Window(1, 1, 2, 3)
	require.NoError(t, err)
	d := w.ToDense()
	require.Equal(t, [][]int64{{5, 6, 7}, {9, 10, 11}}, rowsOf(d.View()))
	require.Equal(t, 3, d.View().Stride())

	require.NoError(t, d.Set(0, 0, 100))
	orig, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(5), orig)
}
