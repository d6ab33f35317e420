// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quadmul/matrix"
)

// Algorithm selects one multiplication strategy for Multiply.
type Algorithm int

const (
	AlgIterative                  Algorithm = iota // i→k→j triple loop
	AlgDivideAndConquer                            // parallel block recursion
	AlgDivideAndConquerSequential                  // block recursion, no forking
	AlgDivideAndConquerInto                        // parallel block recursion into one output buffer
	AlgStrassen                                    // parallel Strassen
	AlgStrassenSequential                          // Strassen, no forking
)

var algorithmNames = [...]string{
	AlgIterative:                  "iterative",
	AlgDivideAndConquer:           "dc",
	AlgDivideAndConquerSequential: "dc-seq",
	AlgDivideAndConquerInto:       "dc-into",
	AlgStrassen:                   "strassen",
	AlgStrassenSequential:         "strassen-seq",
}

// String returns the short name used on the command line and in CSV file names.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Recursive reports whether a requires square power-of-two operands.
func (a Algorithm) Recursive() bool { return a != AlgIterative }

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}

	return out
}

// ParseAlgorithm maps a short name (case-insensitive) back to its Algorithm.
// Errors: ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range algorithmNames {
		if s == n {
			return Algorithm(i), nil
		}
	}

	return 0, matmulErrorf(opParseAlgorithm, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name))
}

// Multiply computes A × B with the chosen algorithm and returns a new matrix.
//
// Implementation:
//   - Stage 1: reject nil operands and unknown algorithms.
//   - Stage 2: check A.Cols == B.Rows; recursive algorithms additionally
//     require square power-of-two sides.
//   - Stage 3: dispatch; opts apply to the recursive algorithms only.
//
// Errors:
//   - ErrNilMatrix, ErrUnknownAlgorithm, ErrDimensionMismatch, ErrInvalidShape.
//
// Notes:
//   - Every algorithm returns the same matrix for the same inputs; the choice
//     affects speed only.
func Multiply(alg Algorithm, a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, matmulErrorf(opMultiply, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, matmulErrorf(opMultiply, err)
	}
	av, bv := a.View(), b.View()

	switch alg {
	case AlgIterative:
		return Iterative(av, bv)
	case AlgDivideAndConquer:
		return DivideAndConquer(av, bv, opts...)
	case AlgDivideAndConquerSequential:
		return DivideAndConquerSequential(av, bv, opts...)
	case AlgDivideAndConquerInto:
		if err := validateRecursive(av, bv); err != nil {
			return nil, matmulErrorf(opMultiply, err)
		}
		out, err := matrix.NewZeros(a.Rows(), b.Cols())
		if err != nil {
			return nil, matmulErrorf(opMultiply, err)
		}
		if err = DivideAndConquerInto(av, bv, out.ViewMut(), opts...); err != nil {
			return nil, err
		}
		return out, nil
	case AlgStrassen:
		return Strassen(av, bv, opts...)
	case AlgStrassenSequential:
		return StrassenSequential(av, bv, opts...)
	default:
		return nil, matmulErrorf(opMultiply, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg))
	}
}
