// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return sentinel errors wrapped with the validator name so call sites
//     can add one operation tag on top.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilArgument if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Numeric) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArgument)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and Rows == Cols.
//
// Errors: ErrNilArgument if nil, ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m *Numeric) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if !m.IsSquare() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
//
// Errors: ErrNilArgument, ErrIncompatibleSize.
// Complexity: O(1).
func ValidateSameShape(a, b *Numeric) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrIncompatibleSize))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() and neither is empty.
//
// Errors: ErrNilArgument, ErrIncompatibleSize.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Numeric) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.IsEmpty() || b.IsEmpty() || a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrIncompatibleSize))
	}

	return nil
}
