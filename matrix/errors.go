// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every public operation returns one of these (possibly wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines stay greppable.
// Call sites wrap with an operation tag, e.g. "Regular.InsertRow(4): matrix:
// index out of range", and callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil argument -> index range -> size compatibility -> numeric policy.

var (
	// ErrInvalidArgument reports a value that is never acceptable for the
	// operation: negative capacity, an empty row/column offered to an
	// unfixed matrix, an empty vector.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrNilArgument reports a missing argument: a nil row/column slice or a
	// nil element inside a nullable numeric collection.
	ErrNilArgument = errors.New("matrix: nil argument")

	// ErrIncompatibleSize reports a length that does not match the fixed
	// dimension of the matrix, or operands whose shapes cannot be combined.
	ErrIncompatibleSize = errors.New("matrix: incompatible size")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square, non-empty matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonInvertible is returned when the determinant is zero or no
	// non-zero pivot can be found by row swapping during inversion.
	ErrNonInvertible = errors.New("matrix: matrix is not invertible")

	// ErrNaNInf signals a NaN or ±Inf value was offered while the numeric
	// policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
