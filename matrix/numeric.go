// SPDX-License-Identifier: MIT

// Package matrix - Numeric: the float64 matrix consumed by the algebra layer.
//
// Purpose:
//   - Wrap a Regular[float64] and add the numeric policy: when
//     validateNaNInf is on, NaN and ±Inf are rejected at ingestion and Set.
//   - Everything structural (shape, capacity, snapshots, errors) is delegated
//     unchanged to Regular.
//
// AI-Hints:
//   - Use the generic helpers in ingest.go (AddRowOf, NumericFromRows...) to
//     feed int/float32/... data; values are converted to float64 exactly once.
//   - Row-mutating algorithms (RowEchelon, InverseGaussian) work on the live
//     storage through unexported accessors; callers Clone first to keep input.

package matrix

import (
	"fmt"
	"math"
)

// Numeric is a rectangular float64 matrix with a finite-value policy.
type Numeric struct {
	reg *Regular[float64]
}

var _ fmt.Stringer = (*Numeric)(nil)

// NewNumeric creates an empty numeric matrix with the given capacities.
// Errors: ErrInvalidArgument on negative capacity.
func NewNumeric(rowCap, colCap int, opts ...Option) (*Numeric, error) {
	reg, err := NewRegular[float64](rowCap, colCap, opts...)
	if err != nil {
		return nil, err
	}

	return &Numeric{reg: reg}, nil
}

// NewDefaultNumeric creates an empty numeric matrix with the default 3×3 capacity.
func NewDefaultNumeric(opts ...Option) *Numeric {
	return &Numeric{reg: NewDefaultRegular[float64](opts...)}
}

// numericErrorf mirrors regularErrorf for checks made at the Numeric layer.
func numericErrorf(method string, err error, idx ...int) error {
	return methodErrorf("Numeric", method, err, idx...)
}

// checkFinite enforces the NaN/Inf policy over vals.
func (m *Numeric) checkFinite(vals []float64) error {
	if !m.reg.opts.validateNaNInf {
		return nil
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// Regular exposes the underlying generic matrix (shared, not copied).
func (m *Numeric) Regular() *Regular[float64] { return m.reg }

// Rows returns the logical row count.
func (m *Numeric) Rows() int { return m.reg.Rows() }

// Cols returns the logical column count.
func (m *Numeric) Cols() int { return m.reg.Cols() }

// Size returns Rows()*Cols().
func (m *Numeric) Size() int { return m.reg.Size() }

// IsEmpty reports whether the matrix holds no element.
func (m *Numeric) IsEmpty() bool { return m.reg.IsEmpty() }

// IsSquare reports whether the matrix is non-empty with Rows() == Cols().
func (m *Numeric) IsSquare() bool { return m.reg.IsSquare() }

// RowCapacity returns the number of rows storable without growing.
func (m *Numeric) RowCapacity() int { return m.reg.RowCapacity() }

// ColumnCapacity returns the number of columns storable without growing.
func (m *Numeric) ColumnCapacity() int { return m.reg.ColumnCapacity() }

// Options returns the resolved construction options.
func (m *Numeric) Options() Options { return m.reg.Options() }

// Clear removes every element and keeps the capacity.
func (m *Numeric) Clear() { m.reg.Clear() }

// TrimToSize shrinks capacities to the logical size.
func (m *Numeric) TrimToSize() { m.reg.TrimToSize() }

// Contains reports whether v occurs anywhere in the matrix.
func (m *Numeric) Contains(v float64) bool { return m.reg.Contains(v) }

// EnsureRowCapacity grows the row capacity to at least n.
func (m *Numeric) EnsureRowCapacity(n int) error { return m.reg.EnsureRowCapacity(n) }

// EnsureColumnCapacity grows the column capacity to at least n.
func (m *Numeric) EnsureColumnCapacity(n int) error { return m.reg.EnsureColumnCapacity(n) }

// AddRow appends row. Argument checks run before the numeric policy.
func (m *Numeric) AddRow(row []float64) error { return m.InsertRow(m.reg.Rows(), row) }

// InsertRow inserts row at index i. See Regular.InsertRow.
func (m *Numeric) InsertRow(i int, row []float64) error {
	if err := m.reg.checkInsertRow(i, row); err != nil {
		return regularErrorf(ctxInsertRow, err, i)
	}
	if err := m.checkFinite(row); err != nil {
		return numericErrorf(ctxInsertRow, err, i)
	}

	return m.reg.InsertRow(i, row)
}

// AddColumn appends col at the right edge.
func (m *Numeric) AddColumn(col []float64) error { return m.InsertColumn(m.reg.Cols(), col) }

// InsertColumn inserts col at column j. See Regular.InsertColumn.
func (m *Numeric) InsertColumn(j int, col []float64) error {
	if err := m.reg.checkInsertColumn(j, col); err != nil {
		return regularErrorf(ctxInsertColumn, err, j)
	}
	if err := m.checkFinite(col); err != nil {
		return numericErrorf(ctxInsertColumn, err, j)
	}

	return m.reg.InsertColumn(j, col)
}

// SetRow replaces row i and returns the previous values.
func (m *Numeric) SetRow(i int, row []float64) ([]float64, error) {
	if err := m.reg.checkSetRow(i, row); err != nil {
		return nil, regularErrorf(ctxSetRow, err, i)
	}
	if err := m.checkFinite(row); err != nil {
		return nil, numericErrorf(ctxSetRow, err, i)
	}

	return m.reg.SetRow(i, row)
}

// SetColumn replaces column j and returns the previous values.
func (m *Numeric) SetColumn(j int, col []float64) ([]float64, error) {
	if err := m.reg.checkSetColumn(j, col); err != nil {
		return nil, regularErrorf(ctxSetColumn, err, j)
	}
	if err := m.checkFinite(col); err != nil {
		return nil, numericErrorf(ctxSetColumn, err, j)
	}

	return m.reg.SetColumn(j, col)
}

// Set stores v at (i,j) and returns the previous element.
func (m *Numeric) Set(i, j int, v float64) (float64, error) {
	if err := m.reg.checkCell(i, j); err != nil {
		return 0, regularErrorf(ctxSet, err, i, j)
	}
	if err := m.checkFinite([]float64{v}); err != nil {
		return 0, numericErrorf(ctxSet, err, i, j)
	}

	return m.reg.Set(i, j, v)
}

// At returns the element at (i,j).
func (m *Numeric) At(i, j int) (float64, error) { return m.reg.At(i, j) }

// Row returns a copy of row i.
func (m *Numeric) Row(i int) ([]float64, error) { return m.reg.Row(i) }

// Column returns a copy of column j.
func (m *Numeric) Column(j int) ([]float64, error) { return m.reg.Column(j) }

// RemoveRow deletes row i and returns its values.
func (m *Numeric) RemoveRow(i int) ([]float64, error) { return m.reg.RemoveRow(i) }

// RemoveColumn deletes column j and returns its values.
func (m *Numeric) RemoveColumn(j int) ([]float64, error) { return m.reg.RemoveColumn(j) }

// SwapRows exchanges rows i and j.
func (m *Numeric) SwapRows(i, j int) error { return m.reg.SwapRows(i, j) }

// IndexOf returns the first row-major position of v.
func (m *Numeric) IndexOf(v float64) (int, int, bool) { return m.reg.IndexOf(v) }

// LastIndexOf returns the last row-major position of v.
func (m *Numeric) LastIndexOf(v float64) (int, int, bool) { return m.reg.LastIndexOf(v) }

// Do visits every element in row-major order until fn returns false.
func (m *Numeric) Do(fn func(i, j int, v float64) bool) { m.reg.Do(fn) }

// SubMatrix returns a copy without row i and column j.
func (m *Numeric) SubMatrix(i, j int) (*Numeric, error) {
	sub, err := m.reg.SubMatrix(i, j)
	if err != nil {
		return nil, err
	}

	return &Numeric{reg: sub}, nil
}

// Clone returns a deep copy.
func (m *Numeric) Clone() *Numeric { return &Numeric{reg: m.reg.Clone()} }

// Equal reports exact element-wise equality (same shape required).
func (m *Numeric) Equal(other *Numeric) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.reg.Equal(other.reg)
}

// ---------- live-storage accessors for the algebra kernels ----------

// rowView returns the live row i (len == Cols()). Writes go straight to storage.
func (m *Numeric) rowView(i int) []float64 { return m.reg.g.row(i) }

// swapRowViews exchanges rows without bounds checks.
func (m *Numeric) swapRowViews(i, j int) { m.reg.g.swapRows(i, j) }

// newNumericShape allocates an r×c zero matrix in fixed state with options o.
func newNumericShape(r, c int, o Options) *Numeric {
	reg := &Regular[float64]{g: newGrid[float64](r, c, o.growth), opts: o}
	if r > 0 && c > 0 {
		reg.g.nRows, reg.g.nCols = r, c
		reg.state = stateFixed
	}

	return &Numeric{reg: reg}
}
