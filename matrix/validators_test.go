// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmul/matrix"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024, 1 << 20} {
		require.True(t, matrix.IsPowerOfTwo(n), n)
	}
	for _, n := range []int{0, -2, 3, 6, 1000} {
		require.False(t, matrix.IsPowerOfTwo(n), n)
	}
}

func TestValidators(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 4)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSameShape(a, a.View()))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrShapeMismatch)

	require.NoError(t, matrix.ValidateProductOut(a, b, MustDense(t, 2, 4)))
	require.ErrorIs(t, matrix.ValidateProductOut(a, b, MustDense(t, 4, 2)), matrix.ErrShapeMismatch)

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(a))
}

func TestValidateSquarePow2(t *testing.T) {
	require.NoError(t, matrix.ValidateSquarePow2(MustDense(t, 8, 8)))
	require.NoError(t, matrix.ValidateSquarePow2(MustDense(t, 1, 1)))
	require.ErrorIs(t, matrix.ValidateSquarePow2(MustDense(t, 4, 8)), matrix.ErrInvalidShape)
	require.ErrorIs(t, matrix.ValidateSquarePow2(MustDense(t, 3, 3)), matrix.ErrInvalidShape)
}
