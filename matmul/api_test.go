// SPDX-License-Identifier: MIT

package matmul_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmul/matmul"
	"github.com/katalvlaran/quadmul/matrix"
)

// TestAlgorithm_Names round-trips every algorithm through its short name.
func TestAlgorithm_Names(t *testing.T) {
	names := make([]string, 0)
	for _, alg := range matmul.Algorithms() {
		names = append(names, alg.String())
		got, err := matmul.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		require.Equal(t, alg, got)
	}
	require.Equal(t, []string{"iterative", "dc", "dc-seq", "dc-into", "strassen", "strassen-seq"}, names)

	got, err := matmul.ParseAlgorithm("  Strassen ")
	require.NoError(t, err)
	require.Equal(t, matmul.AlgStrassen, got)

	_, err = matmul.ParseAlgorithm("winograd")
	require.ErrorIs(t, err, matmul.ErrUnknownAlgorithm)
	require.Equal(t, "Algorithm(42)", matmul.Algorithm(42).String())
}

// TestMultiply_AllAlgorithms dispatches every algorithm on the same operands.
func TestMultiply_AllAlgorithms(t *testing.T) {
	a, b := randPair(t, 32, 1234)
	want := mustIterative(t, a, b)
	for _, alg := range matmul.Algorithms() {
		got, err := matmul.Multiply(alg, a, b, matmul.WithThreshold(4))
		require.NoError(t, err, alg.String())
		requireSame(t, want, got, alg.String())
	}
}

// TestMultiply_Errors covers the boundary failures.
func TestMultiply_Errors(t *testing.T) {
	a, b := randPair(t, 4, 1)
	_, err := matmul.Multiply(matmul.AlgStrassen, nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matmul.Multiply(matmul.AlgIterative, a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matmul.Multiply(matmul.Algorithm(-1), a, b)
	require.ErrorIs(t, err, matmul.ErrUnknownAlgorithm)

	rect := MustRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	rectT := MustRows(t, [][]int64{{1, 2}, {3, 4}, {5, 6}})
	for _, alg := range matmul.Algorithms() {
		_, err = matmul.Multiply(alg, rect, rectT)
		if !alg.Recursive() {
			require.NoError(t, err)
			continue
		}
		require.ErrorIs(t, err, matrix.ErrInvalidShape, alg.String())

		_, err = matmul.Multiply(alg, a, rect)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, alg.String())
	}
}
