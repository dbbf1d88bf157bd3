// SPDX-License-Identifier: MIT

// Package matrix - whole-matrix arithmetic.
//
// Add, Sub, Mul, Scale and Transpose never mutate their inputs and always
// return a freshly allocated matrix whose entries went through Snap.
// Options of the first operand carry over to the result.

package matrix

import "math"

const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opEqualApprox = "EqualApprox"
)

// Add returns a+b.
//
// Errors: ErrNilArgument, ErrIncompatibleSize.
func Add(a, b *Numeric) (*Numeric, error) {
	out, err := addSub(a, b, 1)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return out, nil
}

// Sub returns a-b.
//
// Errors: ErrNilArgument, ErrIncompatibleSize.
func Sub(a, b *Numeric) (*Numeric, error) {
	out, err := addSub(a, b, -1)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return out, nil
}

// addSub computes a + sign*b row by row.
func addSub(a, b *Numeric, sign float64) (*Numeric, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	for i := 0; i < out.Rows(); i++ {
		axpyRow(out.rowView(i), b.rowView(i), sign)
	}

	return out, nil
}

// Mul returns the matrix product a·b.
//
// Implementation:
//   - i-k-j loop order so the inner loop walks contiguous rows of b and out.
//
// Errors: ErrNilArgument, ErrIncompatibleSize (a.Cols() != b.Rows() or empty operand).
// Complexity: O(r·k·c).
func Mul(a, b *Numeric) (*Numeric, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		r, inner, c = a.Rows(), a.Cols(), b.Cols()
		out         = newNumericShape(r, c, a.Options())
		i, k, j     int
	)
	for i = 0; i < r; i++ {
		ai, dst := a.rowView(i), out.rowView(i)
		for k = 0; k < inner; k++ {
			aik := ai[k]
			if aik == 0 {
				continue
			}
			bk := b.rowView(k)
			for j = 0; j < c; j++ {
				dst[j] += aik * bk[j]
			}
		}
		snapAll(dst)
	}

	return out, nil
}

// Scale returns alpha·m.
//
// Errors: ErrNilArgument.
func Scale(m *Numeric, alpha float64) (*Numeric, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := m.Clone()
	for i := 0; i < out.Rows(); i++ {
		scaleRow(out.rowView(i), alpha)
	}

	return out, nil
}

// Transpose returns mᵀ. Transposing twice yields a matrix Equal to m.
//
// Errors: ErrNilArgument.
func Transpose(m *Numeric) (*Numeric, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return &Numeric{reg: m.reg.Transpose()}, nil
}

// EqualApprox reports whether a and b share a shape and every pair of
// elements differs by at most tol.
//
// Errors: ErrNilArgument, ErrInvalidArgument (tol < 0 or NaN).
func EqualApprox(a, b *Numeric, tol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	if tol < 0 || math.IsNaN(tol) {
		return false, matrixErrorf(opEqualApprox, ErrInvalidArgument)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	for i := 0; i < a.Rows(); i++ {
		ra, rb := a.rowView(i), b.rowView(i)
		for j := range ra {
			if math.Abs(ra[j]-rb[j]) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}
