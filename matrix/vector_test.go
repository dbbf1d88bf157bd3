// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	sum, err := matrix.AddVectors([]int{1, 2, 3}, []int{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, sum)

	diff, err := matrix.SubVectors([]float64{0.3, 1}, []float64{0.1, 1})
	require.NoError(t, err)
	require.InDelta(t, 0.2, diff[0], tol)
	require.Equal(t, 0.0, diff[1])

	dot, err := matrix.DotProduct([]int{1, 2, 3}, []int{4, -5, 6})
	require.NoError(t, err)
	require.Equal(t, 12.0, dot)

	scaled, err := matrix.ScaleVector([]int{1, -2}, 0.5)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, -1}, scaled)

	norm, err := matrix.VectorLength([]int{3, 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, norm)
}

func TestVectorInputsAreNotMutated(t *testing.T) {
	a, b := []float64{1, 2}, []float64{3, 4}
	_, err := matrix.AddVectors(a, b)
	require.NoError(t, err)
	_, err = matrix.ScaleVector(a, 10)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, a)
	require.Equal(t, []float64{3, 4}, b)
}

func TestVectorSnapping(t *testing.T) {
	sum, err := matrix.AddVectors([]float64{0.1, 1.9999999999}, []float64{0.2, 0})
	require.NoError(t, err)
	require.InDelta(t, 0.3, sum[0], tol)
	require.Equal(t, 2.0, sum[1])
}

func TestCrossProduct(t *testing.T) {
	got, err := matrix.CrossProduct([]int{1, 0, 0}, []int{0, 1, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1}, got)

	got, err = matrix.CrossProduct([]float64{2, 3, 4}, []float64{5, 6, 7})
	require.NoError(t, err)
	require.Equal(t, []float64{-3, 6, -3}, got)

	_, err = matrix.CrossProduct([]int{1, 2}, []int{3, 4})
	require.ErrorIs(t, err, matrix.ErrIncompatibleSize)
	_, err = matrix.CrossProduct([]int{1, 2, 3, 4}, []int{3, 4, 5, 6})
	require.ErrorIs(t, err, matrix.ErrIncompatibleSize)
}

func TestPerpendicularVector(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"2d", []float64{3, 4}, []float64{-4, 3}},
		{"2d y only", []float64{0, 2}, []float64{-2, 0}},
		{"3d", []float64{1, 2, 3}, []float64{-2, 1, 0}},
		{"leading zeros", []float64{0, 0, 5}, []float64{-5, 0, 0}},
		{"zero vector", []float64{0, 0, 0}, []float64{1, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.PerpendicularVector(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			dot, err := matrix.DotProduct(tc.in, got)
			require.NoError(t, err)
			require.Equal(t, 0.0, dot)
		})
	}

	_, err := matrix.PerpendicularVector([]int{7})
	require.ErrorIs(t, err, matrix.ErrIncompatibleSize)
}

func TestVectorErrors(t *testing.T) {
	_, err := matrix.AddVectors([]int{1, 2}, []int{1})
	require.ErrorIs(t, err, matrix.ErrIncompatibleSize)
	_, err = matrix.SubVectors(nil, []int{1})
	require.ErrorIs(t, err, matrix.ErrNilArgument)
	_, err = matrix.DotProduct([]int{}, []int{})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = matrix.ScaleVector[int](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilArgument)
	_, err = matrix.VectorLength([]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = matrix.PerpendicularVector[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilArgument)
}
