// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation; no logic is duplicated.
//
// AI-Hints:
//   - Use Identity/Zeros to build matrices with explicit shape and neutral elements.
//   - Use DeterminantOf / InverseOf when the method should be picked by name
//     (the CLI does this with its --method flag).

package matrix

import "fmt"

// ---------- Constructors ----------

// Zeros returns an r×c zero matrix.
//
// Errors: ErrInvalidArgument when r or c is not positive.
func Zeros(r, c int, opts ...Option) (*Numeric, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("Zeros(%d,%d): %w", r, c, ErrInvalidArgument)
	}

	return newNumericShape(r, c, gatherOptions(opts...)), nil
}

// Identity returns I_n.
//
// Errors: ErrInvalidArgument when n is not positive.
func Identity(n int, opts ...Option) (*Numeric, error) {
	m, err := Zeros(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.rowView(i)[i] = 1
	}

	return m, nil
}

// ---------- Method selection ----------

// Method names an algorithm family for DeterminantOf and InverseOf.
type Method string

const (
	// MethodElimination selects Gaussian elimination (Determinant, InverseGaussian).
	MethodElimination Method = "elimination"

	// MethodCofactor selects cofactor expansion (DeterminantCofactor, InverseAdjugate).
	MethodCofactor Method = "cofactor"
)

// ParseMethod maps a user-supplied name to a Method.
// "gauss" and "gaussian" alias elimination; "adjugate" aliases cofactor.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", string(MethodElimination), "gauss", "gaussian":
		return MethodElimination, nil
	case string(MethodCofactor), "adjugate":
		return MethodCofactor, nil
	default:
		return "", fmt.Errorf("ParseMethod(%q): %w", s, ErrInvalidArgument)
	}
}

// DeterminantOf dispatches to Determinant or DeterminantCofactor.
func DeterminantOf(m *Numeric, method Method) (float64, error) {
	if method == MethodCofactor {
		return DeterminantCofactor(m)
	}

	return Determinant(m)
}

// InverseOf dispatches to Inverse (elimination on a clone) or InverseAdjugate.
// The argument is never modified.
func InverseOf(m *Numeric, method Method) (*Numeric, error) {
	if method == MethodCofactor {
		return InverseAdjugate(m)
	}

	return Inverse(m)
}
