// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for views, quadrants and kernels.
//   • Keep values small so nothing in the tests comes near int64 overflow.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmul/matrix"
)

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustRows builds a *Dense from a literal or fails the test.
func MustRows(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// ramp returns an r×c matrix holding 0,1,2,... in row-major order.
func ramp(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	data := make([]int64, r*c)
	for i := range data {
		data[i] = int64(i)
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// fillRand fills m with entries in [0,10) from a seeded source.
func fillRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, rng.Int63n(10)))
		}
	}
}

// rowsOf copies any view into [][]int64 for readable assertions.
func rowsOf(v matrix.View) [][]int64 {
	out := make([][]int64, v.Rows())
	for i := range out {
		out[i] = append([]int64(nil), v.Row(i)...)
	}

	return out
}
