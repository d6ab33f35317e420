// SPDX-License-Identifier: MIT
// Package matmul_test contains shared fixtures for the multiplier tests.

package matmul_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmul/builder"
	"github.com/katalvlaran/quadmul/matmul"
	"github.com/katalvlaran/quadmul/matrix"
)

// recursiveFn is the common signature of the allocating recursive multipliers.
type recursiveFn func(a, b matrix.View, opts ...matmul.Option) (*matrix.Dense, error)

// intoAsFn adapts DivideAndConquerInto to recursiveFn by zeroing a fresh output.
func intoAsFn(a, b matrix.View, opts ...matmul.Option) (*matrix.Dense, error) {
	out, err := matrix.NewZeros(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	if err = matmul.DivideAndConquerInto(a, b, out.ViewMut(), opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// recursiveCases lists every recursive multiplier under test.
var recursiveCases = []struct {
	name string
	fn   recursiveFn
}{
	{"DivideAndConquer", matmul.DivideAndConquer},
	{"DivideAndConquerSequential", matmul.DivideAndConquerSequential},
	{"DivideAndConquerInto", intoAsFn},
	{"Strassen", matmul.Strassen},
	{"StrassenSequential", matmul.StrassenSequential},
}

// MustRows builds a *Dense from a literal or fails the test.
func MustRows(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// randPair returns two n×n operands with entries in [0,10).
func randPair(tb testing.TB, n int, seed int64) (a, b *matrix.Dense) {
	tb.Helper()
	a, b, err := builder.RandomPair(n, builder.WithSeed(seed))
	require.NoError(tb, err)

	return a, b
}

// mustIterative is the reference product.
func mustIterative(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	c, err := matmul.Iterative(a.View(), b.View())
	require.NoError(tb, err)

	return c
}

// requireSame fails with a readable diff when two products differ.
func requireSame(tb testing.TB, want, got *matrix.Dense, msgAndArgs ...interface{}) {
	tb.Helper()
	require.NotNil(tb, got, msgAndArgs...)
	if !want.Equal(got) {
		require.Equal(tb, want.String(), got.String(), msgAndArgs...)
	}
}
