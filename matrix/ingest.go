// SPDX-License-Identifier: MIT

// Package matrix - generic numeric ingestion.
//
// One conversion path serves every numeric element type: ToFloat64s converts
// a []T once at the boundary, and the *Of helpers feed the result into a
// Numeric. Nullable inputs ([]*T) go through FromPointers, which rejects nil
// elements with ErrNilArgument before anything is stored.

package matrix

import "fmt"

// ToFloat64s converts xs to a fresh []float64. A nil input stays nil so the
// nil-argument check downstream still fires.
func ToFloat64s[T Number](xs []T) []float64 {
	if xs == nil {
		return nil
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}

// FromPointers converts a nullable collection. Any nil element yields
// ErrNilArgument; a nil slice stays nil.
func FromPointers[T Number](xs []*T) ([]float64, error) {
	if xs == nil {
		return nil, nil
	}
	out := make([]float64, len(xs))
	for i, p := range xs {
		if p == nil {
			return nil, fmt.Errorf("FromPointers: element %d: %w", i, ErrNilArgument)
		}
		out[i] = float64(*p)
	}

	return out, nil
}

// AddRowOf appends a row of any numeric type.
func AddRowOf[T Number](m *Numeric, row []T) error { return m.AddRow(ToFloat64s(row)) }

// InsertRowOf inserts a row of any numeric type at index i.
func InsertRowOf[T Number](m *Numeric, i int, row []T) error {
	return m.InsertRow(i, ToFloat64s(row))
}

// AddColumnOf appends a column of any numeric type.
func AddColumnOf[T Number](m *Numeric, col []T) error { return m.AddColumn(ToFloat64s(col)) }

// InsertColumnOf inserts a column of any numeric type at index j.
func InsertColumnOf[T Number](m *Numeric, j int, col []T) error {
	return m.InsertColumn(j, ToFloat64s(col))
}

// SetRowOf replaces row i with values of any numeric type.
func SetRowOf[T Number](m *Numeric, i int, row []T) ([]float64, error) {
	return m.SetRow(i, ToFloat64s(row))
}

// SetColumnOf replaces column j with values of any numeric type.
func SetColumnOf[T Number](m *Numeric, j int, col []T) ([]float64, error) {
	return m.SetColumn(j, ToFloat64s(col))
}

// NumericFromRows builds a matrix from row slices. The first row fixes the
// column count; a ragged input fails with ErrIncompatibleSize. An empty
// outer slice yields an empty matrix.
func NumericFromRows[T Number](rows [][]T, opts ...Option) (*Numeric, error) {
	m, err := NewNumeric(len(rows), firstLen(rows), opts...)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err = AddRowOf(m, r); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// NumericFromColumns builds a matrix from column slices.
func NumericFromColumns[T Number](cols [][]T, opts ...Option) (*Numeric, error) {
	m, err := NewNumeric(firstLen(cols), len(cols), opts...)
	if err != nil {
		return nil, err
	}
	for _, c := range cols {
		if err = AddColumnOf(m, c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func firstLen[T any](xs [][]T) int {
	if len(xs) == 0 {
		return 0
	}

	return len(xs[0])
}
