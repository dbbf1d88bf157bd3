// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for matrix and algebra tests.
//   • Keep all data finite so the numeric policy never interferes by accident.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance for non-integral results.
const tol = 1e-9

// MustNumeric builds a matrix from rows or fails the test.
func MustNumeric(t testing.TB, rows [][]float64) *matrix.Numeric {
	t.Helper()
	m, err := matrix.NumericFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// Rows materializes every row of m as [][]float64.
func Rows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		r, err := m.Row(i)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

// CompareExact asserts m equals want element by element.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, want, Rows(t, m))
}

// CompareClose asserts a and b share a shape and agree within tol.
func CompareClose(t testing.TB, a, b *matrix.Numeric, eps float64) {
	t.Helper()
	ok, err := matrix.EqualApprox(a, b, eps)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\n%s\nvs\n%s", a, b)
}

// RandInvertible returns an n×n strictly diagonally dominant matrix with
// integer entries in [-10, 10] off the diagonal; dominance guarantees a
// non-zero determinant.
func RandInvertible(t testing.TB, n int, seed int64) *matrix.Numeric {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		var sum float64
		for j := range rows[i] {
			if i == j {
				continue
			}
			v := float64(rng.Intn(21) - 10)
			rows[i][j] = v
			if v < 0 {
				sum -= v
			} else {
				sum += v
			}
		}
		rows[i][i] = sum + 1 + float64(rng.Intn(5))
	}

	return MustNumeric(t, rows)
}

// RandSquare returns an n×n matrix with integer entries in [-10, 10].
func RandSquare(t testing.TB, n int, seed int64) *matrix.Numeric {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(21) - 10)
		}
	}

	return MustNumeric(t, rows)
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Numeric {
	t.Helper()
	id, err := matrix.Identity(n)
	require.NoError(t, err)

	return id
}
