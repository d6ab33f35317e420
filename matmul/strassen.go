// SPDX-License-Identifier: MIT

package matmul

import (
	"github.com/katalvlaran/quadmul/forkjoin"
	"github.com/katalvlaran/quadmul/matrix"
)

// operand is one factor of a Strassen product: x, or x ± y when sign != 0.
// It is materialized lazily inside the product task that consumes it, so
// the temporaries are owned by that task alone.
type operand struct {
	x, y matrix.View
	sign int64 // 0: x alone; +1: x+y; -1: x-y
}

func single(x matrix.View) operand  { return operand{x: x} }
func sum(x, y matrix.View) operand  { return operand{x: x, y: y, sign: +1} }
func diff(x, y matrix.View) operand { return operand{x: x, y: y, sign: -1} }

// view returns the operand as a readable view, allocating only for sums/differences.
func (o operand) view() (matrix.View, error) {
	switch o.sign {
	case 0:
		return o.x, nil
	case +1:
		m, err := matrix.Add(o.x, o.y)
		if err != nil {
			return matrix.View{}, err
		}
		return m.View(), nil
	default:
		m, err := matrix.Sub(o.x, o.y)
		if err != nil {
			return matrix.View{}, err
		}
		return m.View(), nil
	}
}

// Strassen multiplies two square power-of-two views with Strassen's seven
// product scheme, forking the seven sub-products in parallel.
//
// Implementation:
//   - Base case: side <= threshold → iterative kernel.
//   - Otherwise, over quadrants of A and B:
//     M1 = (A11+A22)(B11+B22)   M2 = (A21+A22)B11     M3 = A11(B12−B22)
//     M4 = A22(B21−B11)         M5 = (A11+A12)B22     M6 = (A21−A11)(B11+B12)
//     M7 = (A12−A22)(B21+B22)
//     C11 = M1+M4−M5+M7   C12 = M3+M5   C21 = M2+M4   C22 = M1−M2+M3+M6
//     The seven products are forked and joined; combination and
//     MergeQuadrants run after the join.
//
// Behavior highlights:
//   - Exact over int64: results equal the iterative product bit for bit,
//     wrapping included.
//   - Each product task builds its own operand sums; nothing is shared.
//
// Errors:
//   - ErrDimensionMismatch, ErrInvalidShape (boundary), first branch error otherwise.
//
// Complexity:
//   - Time O(n^log2(7)) ≈ O(n^2.807), Space O(n^2) temporaries per level.
func Strassen(a, b matrix.View, opts ...Option) (*matrix.Dense, error) {
	if err := validateRecursive(a, b); err != nil {
		return nil, matmulErrorf(opStrassen, err)
	}
	c, err := newEngine(true, opts...).strassen(a, b, 0)
	if err != nil {
		return nil, matmulErrorf(opStrassen, err)
	}

	return c, nil
}

// StrassenSequential performs the same recursion as Strassen without forking.
func StrassenSequential(a, b matrix.View, opts ...Option) (*matrix.Dense, error) {
	if err := validateRecursive(a, b); err != nil {
		return nil, matmulErrorf(opStrassenSeq, err)
	}
	c, err := newEngine(false, opts...).strassen(a, b, 0)
	if err != nil {
		return nil, matmulErrorf(opStrassenSeq, err)
	}

	return c, nil
}

// strassen is the recursion behind both Strassen variants.
func (e *engine) strassen(a, b matrix.View, depth int) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	if e.isBase(a.Rows()) {
		return e.base(a, b)
	}

	a11, a12, a21, a22 := matrix.Quadrants(a)
	b11, b12, b21, b22 := matrix.Quadrants(b)

	// product returns the task computing *dst = l·r one level down.
	product := func(dst **matrix.Dense, l, r operand) forkjoin.Task {
		return func() error {
			lv, err := l.view()
			if err != nil {
				return err
			}
			rv, err := r.view()
			if err != nil {
				return err
			}
			*dst, err = e.strassen(lv, rv, depth+1)

			return err
		}
	}

	var m [7]*matrix.Dense // m[i] holds M(i+1); each slot written by one task
	err := e.poolAt(depth).Join(
		product(&m[0], sum(a11, a22), sum(b11, b22)),
		product(&m[1], sum(a21, a22), single(b11)),
		product(&m[2], single(a11), diff(b12, b22)),
		product(&m[3], single(a22), diff(b21, b11)),
		product(&m[4], sum(a11, a12), single(b22)),
		product(&m[5], diff(a21, a11), sum(b11, b12)),
		product(&m[6], diff(a12, a22), sum(b21, b22)),
	)
	if err != nil {
		return nil, err
	}

	c11, err := linear(m[0], term{m[3], +1}, term{m[4], -1}, term{m[6], +1})
	if err != nil {
		return nil, err
	}
	c12, err := linear(m[2], term{m[4], +1})
	if err != nil {
		return nil, err
	}
	c21, err := linear(m[1], term{m[3], +1})
	if err != nil {
		return nil, err
	}
	c22, err := linear(m[0], term{m[1], -1}, term{m[2], +1}, term{m[5], +1})
	if err != nil {
		return nil, err
	}

	return matrix.MergeQuadrants(c11, c12, c21, c22)
}

// term is one signed addend of a linear combination.
type term struct {
	m    *matrix.Dense
	sign int64
}

// linear returns first + Σ sign·m over rest as a newly allocated matrix.
// The first addition allocates the accumulator; the rest update it in place.
func linear(first *matrix.Dense, rest ...term) (*matrix.Dense, error) {
	acc, err := apply(first.View(), rest[0])
	if err != nil {
		return nil, err
	}
	for _, t := range rest[1:] {
		if t.sign < 0 {
			err = matrix.SubInto(acc.View(), t.m.View(), acc.ViewMut())
		} else {
			err = matrix.AddInto(acc.View(), t.m.View(), acc.ViewMut())
		}
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func apply(x matrix.View, t term) (*matrix.Dense, error) {
	if t.sign < 0 {
		return matrix.Sub(x, t.m.View())
	}

	return matrix.Add(x, t.m.View())
}
