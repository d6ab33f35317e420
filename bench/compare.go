// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/quadmul/builder"
	"github.com/katalvlaran/quadmul/matmul"
	"github.com/katalvlaran/quadmul/matrix"
)

// Comparison is the outcome of one algorithm in compare mode.
type Comparison struct {
	Algorithm matmul.Algorithm
	Size      int
	Elapsed   time.Duration
	Equal     bool // product matches the iterative reference
}

// Compare multiplies one random size×size pair with every configured
// algorithm and checks each product against the iterative one.
// The reference is computed first and is not part of the returned slice
// unless "iterative" is configured.
//
// Errors: matrix.ErrInvalidShape (size not a power of two) marked
// ErrInvalidConfig, or the first multiply failure.
func (r *Runner) Compare(size int) ([]Comparison, error) {
	if !matrix.IsPowerOfTwo(size) {
		err := errors.Wrapf(matrix.ErrInvalidShape, "size %d is not a power of two", size)
		return nil, errors.Mark(err, ErrInvalidConfig)
	}
	a, b, err := builder.RandomPair(size, builder.WithRand(r.rng))
	if err != nil {
		return nil, errors.Wrapf(err, "generating %dx%d operands", size, size)
	}
	ref, err := matmul.Iterative(a.View(), b.View())
	if err != nil {
		return nil, errors.Wrap(err, "reference product")
	}

	out := make([]Comparison, 0, len(r.algs))
	for _, alg := range r.algs {
		start := time.Now()
		c, err := matmul.Multiply(alg, a, b, r.opts...)
		elapsed := time.Since(start)
		if err != nil {
			return out, errors.Wrapf(err, "%s n=%d", alg, size)
		}
		cmp := Comparison{Algorithm: alg, Size: size, Elapsed: elapsed, Equal: ref.Equal(c)}
		out = append(out, cmp)
		if cmp.Equal {
			r.log.Info("Matrices are equal", "algorithm", alg.String(), "size", size, "elapsed", elapsed)
		} else {
			r.log.Warn("Matrices differ", "algorithm", alg.String(), "size", size)
		}
	}

	return out, nil
}

// AllEqual reports whether every comparison matched the reference.
func AllEqual(cs []Comparison) bool {
	for _, c := range cs {
		if !c.Equal {
			return false
		}
	}

	return true
}
