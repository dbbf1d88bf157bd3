// SPDX-License-Identifier: MIT

// Package matrix provides a growable dense matrix and the linear algebra
// built on top of it.
//
// The matrix package provides:
//
//   - Regular[E], a rectangular matrix of any comparable element type over a
//     single contiguous, capacity-managed buffer. Rows and columns can be
//     inserted, replaced and removed anywhere; the first row or column fixes
//     the shape and every later one must match it.
//   - Numeric, the float64 specialization used by the algebra, with a
//     NaN/Inf policy and a generic ingestion path (AddRowOf, NumericFromRows)
//     for any integer or floating-point element type.
//   - Gaussian elimination: OrderRows, RowEchelon, Determinant, InverseGaussian.
//   - Cofactor expansion: DeterminantCofactor, Cofactor, Adjugate,
//     InverseAdjugate. Both families are kept so each can check the other.
//   - Whole-matrix arithmetic (Add, Sub, Mul, Scale, Transpose) and vector
//     operations (AddVectors, DotProduct, CrossProduct, PerpendicularVector...).
//
// Results of arithmetic pass through Snap: a value within SnapTolerance of an
// integer becomes that integer, so integer inputs stay integral through
// elimination wherever the exact result is integral.
//
// Errors are package sentinels (ErrOutOfRange, ErrIncompatibleSize,
// ErrNonSquare, ErrNonInvertible...) wrapped with the failing operation;
// match them with errors.Is.
//
// Nothing here is safe for concurrent mutation; share a matrix across
// goroutines only for reading.
package matrix
