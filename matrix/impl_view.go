// SPDX-License-Identifier: MIT

// Package matrix - borrowed strided views.
//
// A view is the descriptor (offset, rows, cols, stride) over a buffer it does
// not own: value(i,j) = data[off + i*stride + j]. Stride is the row pitch of
// the underlying buffer and exceeds cols whenever the view is a submatrix.
//
// Lifetime & aliasing:
//   - The owner (a *Dense or the caller) keeps the buffer alive for as long
//     as any view on it is used; the GC makes this automatic in Go.
//   - Any number of goroutines may read through Views concurrently.
//   - Two goroutines must never write through ViewMuts whose index ranges
//     overlap. Quadrants returned by SplitMut are disjoint and may be handed
//     to different goroutines.
//
// Views are small values (five words); pass and return them by value.

package matrix

import "fmt"

// View is a read-only strided window over a row-major int64 buffer.
type View struct {
	data   []int64 // borrowed backing buffer
	off    int     // index of element (0,0) in data
	r, c   int     // view height and width
	stride int     // row pitch in data (>= c)
}

// ViewMut is the writable counterpart of View, used as an accumulation target.
type ViewMut struct {
	data   []int64
	off    int
	r, c   int
	stride int
}

var (
	_ Shaped = View{}
	_ Shaped = ViewMut{}
)

// checkDescriptor validates an (off, rows, cols, stride) descriptor against
// a buffer of length n. The last element touched is
// off + (rows-1)*stride + cols - 1.
func checkDescriptor(n, off, rows, cols, stride int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if off < 0 || stride < cols || off+(rows-1)*stride+cols > n {
		return ErrOutOfRange
	}

	return nil
}

// NewView builds a View over data without copying.
//
// Errors:
//   - ErrInvalidDimensions for non-positive rows/cols.
//   - ErrOutOfRange when the descriptor reaches outside data or stride < cols.
//
// Complexity: O(1).
func NewView(data []int64, off, rows, cols, stride int) (View, error) {
	if err := checkDescriptor(len(data), off, rows, cols, stride); err != nil {
		return View{}, fmt.Errorf("NewView(off=%d,%dx%d,stride=%d): %w", off, rows, cols, stride, err)
	}

	return View{data: data, off: off, r: rows, c: cols, stride: stride}, nil
}

// NewViewMut builds a ViewMut over data without copying. Same contract as NewView.
func NewViewMut(data []int64, off, rows, cols, stride int) (ViewMut, error) {
	if err := checkDescriptor(len(data), off, rows, cols, stride); err != nil {
		return ViewMut{}, fmt.Errorf("NewViewMut(off=%d,%dx%d,stride=%d): %w", off, rows, cols, stride, err)
	}

	return ViewMut{data: data, off: off, r: rows, c: cols, stride: stride}, nil
}

// Rows returns the number of rows in the view.
func (v View) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v View) Cols() int { return v.c }

// Stride returns the row pitch of the underlying buffer.
func (v View) Stride() int { return v.stride }

// Offset returns the buffer index of element (0,0).
func (v View) Offset() int { return v.off }

// At reads element (i,j) or returns ErrOutOfRange.
// Complexity: O(1).
func (v View) At(i, j int) (int64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.data[v.off+i*v.stride+j], nil
}

// Row returns row i as a subslice of the shared buffer (len == Cols()).
// The slice aliases the owner's storage; callers must treat it as read-only.
// Panics if i is out of range (hot-loop accessor; validate shapes first).
func (v View) Row(i int) []int64 {
	start := v.off + i*v.stride

	return v.data[start : start+v.c : start+v.c]
}

// Window returns the sub-view [r0:r0+rows, c0:c0+cols) sharing the same buffer.
//
// Errors:
//   - ErrOutOfRange when the window is empty or leaves the view.
//
// Complexity: O(1).
func (v View) Window(r0, c0, rows, cols int) (View, error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > v.r || c0+cols > v.c {
		return View{}, fmt.Errorf("View.Window(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrOutOfRange)
	}

	return v.window(r0, c0, rows, cols), nil
}

// window is the unchecked form of Window used after shapes are validated.
func (v View) window(r0, c0, rows, cols int) View {
	return View{data: v.data, off: v.off + r0*v.stride + c0, r: rows, c: cols, stride: v.stride}
}

// ToDense materializes the view into a freshly allocated, compact Dense.
// Complexity: Time O(r*c), Space O(r*c).
func (v View) ToDense() *Dense {
	out := make([]int64, v.r*v.c)
	for i := 0; i < v.r; i++ {
		copy(out[i*v.c:(i+1)*v.c], v.Row(i))
	}

	return &Dense{r: v.r, c: v.c, data: out}
}

// Rows returns the number of rows in the view.
func (v ViewMut) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v ViewMut) Cols() int { return v.c }

// Stride returns the row pitch of the underlying buffer.
func (v ViewMut) Stride() int { return v.stride }

// Offset returns the buffer index of element (0,0).
func (v ViewMut) Offset() int { return v.off }

// View demotes the writable view to a read-only one over the same region.
func (v ViewMut) View() View {
	return View{data: v.data, off: v.off, r: v.r, c: v.c, stride: v.stride}
}

// At reads element (i,j) or returns ErrOutOfRange.
func (v ViewMut) At(i, j int) (int64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("ViewMut.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.data[v.off+i*v.stride+j], nil
}

// Set writes element (i,j) through to the owner or returns ErrOutOfRange.
func (v ViewMut) Set(i, j int, val int64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("ViewMut.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v.data[v.off+i*v.stride+j] = val // write through

	return nil
}

// Row returns row i as a writable subslice of the shared buffer.
// Panics if i is out of range.
func (v ViewMut) Row(i int) []int64 {
	start := v.off + i*v.stride

	return v.data[start : start+v.c : start+v.c]
}

// Window returns the writable sub-view [r0:r0+rows, c0:c0+cols).
// Errors: ErrOutOfRange when the window is empty or leaves the view.
func (v ViewMut) Window(r0, c0, rows, cols int) (ViewMut, error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > v.r || c0+cols > v.c {
		return ViewMut{}, fmt.Errorf("ViewMut.Window(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrOutOfRange)
	}

	return v.window(r0, c0, rows, cols), nil
}

func (v ViewMut) window(r0, c0, rows, cols int) ViewMut {
	return ViewMut{data: v.data, off: v.off + r0*v.stride + c0, r: rows, c: cols, stride: v.stride}
}

// Zero clears every element of the window, leaving the rest of the buffer intact.
// Complexity: O(r*c).
func (v ViewMut) Zero() {
	for i := 0; i < v.r; i++ {
		clear(v.Row(i))
	}
}

// CopyFrom overwrites the window with src.
// Errors: ErrShapeMismatch when shapes differ.
// Complexity: O(r*c).
func (v ViewMut) CopyFrom(src View) error {
	if err := ValidateSameShape(v, src); err != nil {
		return fmt.Errorf("ViewMut.CopyFrom: %w", err)
	}
	for i := 0; i < v.r; i++ {
		copy(v.Row(i), src.Row(i))
	}

	return nil
}
