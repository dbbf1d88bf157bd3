// SPDX-License-Identifier: MIT

// Package matrix: shared types.
// This file contains ONLY the element-type constraint and the read-only
// Matrix interface. Errors and options live in errors.go and options.go.

package matrix

// Number is the set of element types accepted by the generic ingestion path
// and the vector operations.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is the read-only view of a float64 matrix. Serializers and
// renderers accept it so they work for both *Numeric and *Regular[float64].
//
// Complexity notes: Rows/Cols/At are O(1); Row is O(Cols()) (it copies).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (float64, error)

	// Row returns a copy of row i.
	Row(i int) ([]float64, error)
}

// Compile-time assertions.
var (
	_ Matrix = (*Numeric)(nil)
	_ Matrix = (*Regular[float64])(nil)
)
