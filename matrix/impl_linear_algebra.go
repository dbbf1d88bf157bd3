// SPDX-License-Identifier: MIT

// Package matrix - Gaussian elimination, determinants and inverses.
//
// Purpose:
//   - Row ordering by pivot column with an exact swap count (determinant sign).
//   - In-place row-echelon reduction.
//   - Two independent determinant methods and two independent inverse methods,
//     kept separate so each can cross-check the other.
//
// Contracts:
//   - Determinant/cofactor/adjugate/inverse require a square, non-empty matrix
//     (ErrNonSquare otherwise).
//   - RowEchelon and InverseGaussian mutate their argument. Clone first to keep it.
//   - Every row combination is passed through Snap, so exact integer inputs
//     keep producing exact integer intermediates wherever the math allows.
//
// Complexity quicksheet:
//   - OrderRows: O(r*c + r²); RowEchelon / Determinant / InverseGaussian: O(n³);
//   - DeterminantCofactor / Cofactor / Adjugate / InverseAdjugate: O(n!) (small n only).

package matrix

import "fmt"

// ---------- operation tags ----------

const (
	opOrderRows           = "OrderRows"
	opRowEchelon          = "RowEchelon"
	opDeterminant         = "Determinant"
	opDeterminantCofactor = "DeterminantCofactor"
	opCofactor            = "Cofactor"
	opAdjugate            = "Adjugate"
	opInverseAdjugate     = "InverseAdjugate"
	opInverseGaussian     = "InverseGaussian"
	opInverse             = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
//
// Behavior highlights:
//   - Single wrapping layer per facade call keeps messages short:
//     "Determinant: ValidateSquare: matrix: matrix is not square".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// leadingIndex returns the first column < width holding a non-zero value
// in row, or width when the prefix is all zero.
func leadingIndex(row []float64, width int) int {
	for j := 0; j < width; j++ {
		if row[j] != 0 {
			return j
		}
	}

	return width
}

// orderRowsFrom sorts rows [from, Rows()) by ascending leading index over the
// first width columns. Selection by minimum: a swap happens only when a later
// row leads strictly earlier, so ties and already ordered rows cost nothing.
// Returns the number of swaps performed.
func orderRowsFrom(m *Numeric, from, width int) int {
	var (
		n     = m.Rows()
		swaps int
		r, k  int
	)
	for r = from; r < n-1; r++ {
		best, bestLead := r, leadingIndex(m.rowView(r), width)
		for k = r + 1; k < n; k++ {
			if lead := leadingIndex(m.rowView(k), width); lead < bestLead {
				best, bestLead = k, lead
			}
		}
		if best != r {
			m.swapRowViews(r, best)
			swaps++
		}
	}

	return swaps
}

// OrderRows reorders the rows of m by ascending pivot column (all-zero rows
// last) and returns the number of row swaps performed.
//
// Determinism:
//   - Among rows with equal pivot column the earliest keeps its position.
func OrderRows(m *Numeric) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opOrderRows, err)
	}

	return orderRowsFrom(m, 0, m.Cols()), nil
}

// RowEchelon reduces m to row-echelon form in place and returns the total
// number of row swaps performed (the parity of the permutation).
//
// Implementation:
//   - Stage 1: for each pivot row r, reorder rows r.. by pivot column.
//   - Stage 2: stop when row r is all zero (every row below is too).
//   - Stage 3: eliminate the pivot column from every row below r; the
//     pivot position of each eliminated row is set to exactly 0.
//
// Behavior highlights:
//   - Works on any rectangular matrix; an empty matrix is returned untouched.
//
// Inputs:
//   - m: matrix to reduce (mutated).
//
// Returns:
//   - swaps: count of row exchanges; det sign = (-1)^swaps for square m.
//
// Complexity:
//   - Time O(r²·c), Space O(1).
func RowEchelon(m *Numeric) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRowEchelon, err)
	}

	return rowEchelon(m, m.Cols()), nil
}

// rowEchelon runs the forward elimination over the first width columns;
// row operations still span the whole row (augmented matrices).
func rowEchelon(m *Numeric, width int) int {
	var (
		n     = m.Rows()
		swaps int
		r, i  int
	)
	for r = 0; r < n; r++ {
		swaps += orderRowsFrom(m, r, width)
		pivotRow := m.rowView(r)
		lead := leadingIndex(pivotRow, width)
		if lead == width {
			break
		}
		for i = r + 1; i < n; i++ {
			row := m.rowView(i)
			if row[lead] == 0 {
				continue
			}
			axpyRow(row, pivotRow, -row[lead]/pivotRow[lead])
			row[lead] = 0
		}
	}

	return swaps
}

// Determinant computes det(m) by Gaussian elimination on a clone of m.
//
// Implementation:
//   - Stage 1: validate square and non-empty.
//   - Stage 2: RowEchelon on a clone, keeping the swap count.
//   - Stage 3: multiply the diagonal; any zero pivot short-circuits to 0.
//   - Stage 4: apply the sign (-1)^swaps and Snap.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the clone.
func Determinant(m *Numeric) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	work := m.Clone()
	swaps := rowEchelon(work, work.Cols())
	det := 1.0
	for i := 0; i < work.Rows(); i++ {
		d := work.rowView(i)[i]
		if d == 0 {
			return 0, nil
		}
		det *= d
	}
	if swaps%2 == 1 {
		det = -det
	}

	return Snap(det), nil
}

// DeterminantCofactor computes det(m) by Laplace expansion along the first
// row, recursing through SubMatrix. Intended as a cross-check for Determinant
// on small matrices.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func DeterminantCofactor(m *Numeric) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminantCofactor, err)
	}
	det, err := laplace(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminantCofactor, err)
	}

	return det, nil
}

// laplace expands along row 0. m is square and non-empty.
func laplace(m *Numeric) (float64, error) {
	n := m.Rows()
	first := m.rowView(0)
	if n == 1 {
		return first[0], nil
	}
	var det float64
	for j := 0; j < n; j++ {
		if first[j] == 0 {
			continue
		}
		minor, err := m.SubMatrix(0, j)
		if err != nil {
			return 0, err
		}
		sub, err := laplace(minor)
		if err != nil {
			return 0, err
		}
		det += cofactorSign(0, j) * first[j] * sub
	}

	return Snap(det), nil
}

func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// Cofactor returns the cofactor matrix C with C(i,j) = (-1)^(i+j)·det(minor(i,j)).
// The cofactor matrix of a 1×1 matrix is [1] (the empty minor has determinant 1).
//
// Errors:
//   - ErrNilArgument, ErrNonSquare.
func Cofactor(m *Numeric) (*Numeric, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	out, err := cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return out, nil
}

func cofactor(m *Numeric) (*Numeric, error) {
	n := m.Rows()
	out := newNumericShape(n, n, m.Options())
	if n == 1 {
		out.rowView(0)[0] = 1

		return out, nil
	}
	var i, j int
	for i = 0; i < n; i++ {
		dst := out.rowView(i)
		for j = 0; j < n; j++ {
			minor, err := m.SubMatrix(i, j)
			if err != nil {
				return nil, err
			}
			det, err := laplace(minor)
			if err != nil {
				return nil, err
			}
			dst[j] = Snap(cofactorSign(i, j) * det)
		}
	}

	return out, nil
}

// Adjugate returns the transpose of the cofactor matrix.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare.
func Adjugate(m *Numeric) (*Numeric, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	c, err := cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return &Numeric{reg: c.reg.Transpose()}, nil
}

// InverseAdjugate computes m⁻¹ = adj(m) / det(m). m is not modified.
//
// Implementation:
//   - Stage 1: cofactor matrix C.
//   - Stage 2: det = Σ_j m(0,j)·C(0,j) (first-row expansion, reusing C).
//   - Stage 3: det == 0 → ErrNonInvertible; otherwise Cᵀ/det, snapped.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare, ErrNonInvertible.
//
// Complexity:
//   - Time O(n²·(n-1)!), intended for small matrices and cross-checks.
func InverseAdjugate(m *Numeric) (*Numeric, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverseAdjugate, err)
	}
	c, err := cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opInverseAdjugate, err)
	}
	var (
		n     = m.Rows()
		first = m.rowView(0)
		crow  = c.rowView(0)
		det   float64
		i, j  int
	)
	for j = 0; j < n; j++ {
		det += first[j] * crow[j]
	}
	det = Snap(det)
	if det == 0 {
		return nil, matrixErrorf(opInverseAdjugate, ErrNonInvertible)
	}
	out := newNumericShape(n, n, m.Options())
	for i = 0; i < n; i++ {
		dst := out.rowView(i)
		for j = 0; j < n; j++ {
			dst[j] = Snap(c.rowView(j)[i] / det)
		}
	}

	return out, nil
}

// InverseGaussian computes m⁻¹ by Gauss-Jordan elimination on [m | I].
//
// Implementation:
//   - Stage 1: append the n identity columns to m itself (m becomes n×2n).
//   - Stage 2: forward elimination with row ordering by pivot column; a row
//     whose pivot is not on the diagonal means no usable pivot exists.
//   - Stage 3: backward pass: scale each pivot row to 1 and clear its column
//     in every other row.
//   - Stage 4: move the right half into the result and drop it from m.
//
// Behavior highlights:
//   - m is reduced IN PLACE: on success it ends as the identity. On
//     ErrNonInvertible the augmented columns are removed again and m holds
//     its partially reduced rows.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare, ErrNonInvertible.
//
// Complexity:
//   - Time O(n³), Space O(n²) (the augmentation grows m's column capacity).
func InverseGaussian(m *Numeric) (*Numeric, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverseGaussian, err)
	}
	n := m.Rows()
	if err := augmentIdentity(m); err != nil {
		return nil, matrixErrorf(opInverseGaussian, err)
	}
	defer dropColumnsFrom(m, n)

	rowEchelon(m, n)
	var i, k int
	for i = 0; i < n; i++ {
		if leadingIndex(m.rowView(i), n) != i {
			return nil, matrixErrorf(opInverseGaussian, ErrNonInvertible)
		}
	}
	for i = n - 1; i >= 0; i-- {
		pivotRow := m.rowView(i)
		scaleRow(pivotRow, 1/pivotRow[i])
		pivotRow[i] = 1
		for k = 0; k < i; k++ {
			row := m.rowView(k)
			if row[i] == 0 {
				continue
			}
			axpyRow(row, pivotRow, -row[i])
			row[i] = 0
		}
	}

	out := newNumericShape(n, n, m.Options())
	for i = 0; i < n; i++ {
		copy(out.rowView(i), m.rowView(i)[n:])
	}

	return out, nil
}

// augmentIdentity appends the columns of I_n to the n×n matrix m.
func augmentIdentity(m *Numeric) error {
	n := m.Rows()
	if err := m.EnsureColumnCapacity(2 * n); err != nil {
		return err
	}
	col := make([]float64, n)
	for j := 0; j < n; j++ {
		clear(col)
		col[j] = 1
		if err := m.AddColumn(col); err != nil {
			return err
		}
	}

	return nil
}

// dropColumnsFrom removes columns [from, Cols()) from m.
func dropColumnsFrom(m *Numeric, from int) {
	for m.Cols() > from {
		_, _ = m.RemoveColumn(m.Cols() - 1)
	}
}

// Inverse returns m⁻¹ without modifying m (InverseGaussian on a clone).
//
// Errors:
//   - ErrNilArgument, ErrNonSquare, ErrNonInvertible.
func Inverse(m *Numeric) (*Numeric, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := InverseGaussian(m.Clone())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
