// SPDX-License-Identifier: MIT

// Package matrix - Regular: a rectangular matrix over a growable grid.
//
// Purpose:
//   - Keep the rectangular invariant: every row has Cols() elements and every
//     column has Rows() elements, at all times.
//   - Let the FIRST inserted row (or column) fix the other dimension. The
//     fill state is explicit: stateUnfixed until the first insertion,
//     stateFixed afterwards, back to stateUnfixed on Clear or when the last
//     row/column is removed.
//   - Hand out snapshots. Row, Column, RemoveRow... return copies; the caller
//     can never alias internal storage.
//
// Errors:
//   - ErrNilArgument (nil slice), ErrOutOfRange (index), ErrIncompatibleSize
//     (length vs fixed dimension), ErrInvalidArgument (empty slice into an
//     unfixed matrix, negative capacity).
//   - Every check runs before any mutation.
//
// Complexity quicksheet:
//   - At/Set/SwapRows: O(1); Row: O(c); Column: O(r); InsertRow/RemoveRow: O(r+c);
//     InsertColumn/RemoveColumn: O(r*c); SubMatrix/Clone/Transpose/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxInsertRow    = "InsertRow"
	ctxInsertColumn = "InsertColumn"
	ctxSetRow       = "SetRow"
	ctxSetColumn    = "SetColumn"
	ctxRow          = "Row"
	ctxColumn       = "Column"
	ctxAt           = "At"
	ctxSet          = "Set"
	ctxRemoveRow    = "RemoveRow"
	ctxRemoveColumn = "RemoveColumn"
	ctxSwapRows     = "SwapRows"
	ctxSubMatrix    = "SubMatrix"
	ctxNewRegular   = "NewRegular"
	ctxEnsureCap    = "EnsureCapacity"
)

// regularErrorf wraps err with the Regular method and its index arguments,
// e.g. "Regular.InsertRow(7): matrix: index out of range".
func regularErrorf(method string, err error, idx ...int) error {
	return methodErrorf("Regular", method, err, idx...)
}

// methodErrorf formats "<recv>.<method>(idx...): %w".
func methodErrorf(recv, method string, err error, idx ...int) error {
	var sb strings.Builder
	sb.WriteString(recv)
	sb.WriteByte('.')
	sb.WriteString(method)
	sb.WriteByte('(')
	for k, v := range idx {
		if k > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte(')')

	return fmt.Errorf("%s: %w", sb.String(), err)
}

// fillState tracks whether the matrix dimension has been fixed.
type fillState uint8

const (
	// stateUnfixed: no row or column yet; the next insertion defines the shape.
	stateUnfixed fillState = iota
	// stateFixed: rows and columns have fixed, matching lengths.
	stateFixed
)

// Regular is a rectangular matrix of comparable elements backed by a
// capacity-managed grid.
// The zero value is not usable; construct with NewRegular or NewDefaultRegular.
type Regular[E comparable] struct {
	g     *grid[E]
	state fillState
	opts  Options
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Regular[int])(nil)

// NewRegular creates an empty matrix with the given initial capacities.
//
// Behavior highlights:
//   - rowCap == 0 or colCap == 0 produces a zero-size buffer; the first
//     insertion then allocates max(Default*Capacity, needed).
//
// Errors:
//   - ErrInvalidArgument if either capacity is negative.
func NewRegular[E comparable](rowCap, colCap int, opts ...Option) (*Regular[E], error) {
	if rowCap < 0 || colCap < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewRegular, rowCap, colCap, ErrInvalidArgument)
	}
	o := gatherOptions(opts...)

	return &Regular[E]{g: newGrid[E](rowCap, colCap, o.growth), opts: o}, nil
}

// NewDefaultRegular creates an empty matrix with DefaultRowCapacity×DefaultColCapacity.
func NewDefaultRegular[E comparable](opts ...Option) *Regular[E] {
	o := gatherOptions(opts...)

	return &Regular[E]{g: newGrid[E](DefaultRowCapacity, DefaultColCapacity, o.growth), opts: o}
}

// Rows returns the logical row count.
func (m *Regular[E]) Rows() int { return m.g.nRows }

// Cols returns the logical column count.
func (m *Regular[E]) Cols() int { return m.g.nCols }

// Size returns Rows()*Cols().
func (m *Regular[E]) Size() int { return m.g.nRows * m.g.nCols }

// IsEmpty reports whether the matrix holds no element.
func (m *Regular[E]) IsEmpty() bool { return m.state == stateUnfixed }

// IsSquare reports whether the matrix is non-empty with Rows() == Cols().
func (m *Regular[E]) IsSquare() bool { return !m.IsEmpty() && m.g.nRows == m.g.nCols }

// RowCapacity returns the number of rows storable without growing.
func (m *Regular[E]) RowCapacity() int { return m.g.rowCap() }

// ColumnCapacity returns the number of columns storable without growing.
func (m *Regular[E]) ColumnCapacity() int { return m.g.colCap }

// Options returns the resolved construction options.
func (m *Regular[E]) Options() Options { return m.opts }

// ---------- bounds & compatibility ----------

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// checkVector validates a row or column of length want (fixed state) before
// insertion or replacement.
func (m *Regular[E]) checkVector(v []E, want int) error {
	if v == nil {
		return ErrNilArgument
	}
	if m.state == stateUnfixed {
		if len(v) == 0 {
			return ErrInvalidArgument
		}

		return nil
	}
	if len(v) != want {
		return ErrIncompatibleSize
	}

	return nil
}

// Argument checks shared with Numeric, which runs them ahead of its numeric
// policy. Order: nil argument, index range, size compatibility.

func (m *Regular[E]) checkInsertRow(i int, row []E) error {
	if row == nil {
		return ErrNilArgument
	}
	if err := checkIndex(i, m.g.nRows+1); err != nil {
		return err
	}

	return m.checkVector(row, m.g.nCols)
}

func (m *Regular[E]) checkInsertColumn(j int, col []E) error {
	if col == nil {
		return ErrNilArgument
	}
	if err := checkIndex(j, m.g.nCols+1); err != nil {
		return err
	}

	return m.checkVector(col, m.g.nRows)
}

func (m *Regular[E]) checkSetRow(i int, row []E) error {
	if row == nil {
		return ErrNilArgument
	}
	if err := checkIndex(i, m.g.nRows); err != nil {
		return err
	}
	if len(row) != m.g.nCols {
		return ErrIncompatibleSize
	}

	return nil
}

func (m *Regular[E]) checkSetColumn(j int, col []E) error {
	if col == nil {
		return ErrNilArgument
	}
	if err := checkIndex(j, m.g.nCols); err != nil {
		return err
	}
	if len(col) != m.g.nRows {
		return ErrIncompatibleSize
	}

	return nil
}

// ---------- insertion ----------

// AddRow appends row at the bottom. See InsertRow.
func (m *Regular[E]) AddRow(row []E) error { return m.InsertRow(m.g.nRows, row) }

// InsertRow inserts a copy of row at index i, shifting rows i.. down.
//
// Behavior highlights:
//   - On an empty matrix the row fixes Cols() = len(row) and the column
//     capacity becomes max(len(row), ColumnCapacity()).
//   - The row slice is copied; later edits to it do not reach the matrix.
//
// Errors:
//   - ErrNilArgument (row == nil), ErrOutOfRange (i ∉ [0,Rows()]),
//     ErrInvalidArgument (empty row on an empty matrix),
//     ErrIncompatibleSize (len(row) != Cols()).
func (m *Regular[E]) InsertRow(i int, row []E) error {
	if err := m.checkInsertRow(i, row); err != nil {
		return regularErrorf(ctxInsertRow, err, i)
	}
	if m.state == stateUnfixed {
		m.g.ensureColCapacity(len(row))
		m.g.nCols = len(row)
		m.state = stateFixed
	}
	m.g.insertRow(i, row)

	return nil
}

// AddColumn appends col at the right edge. See InsertColumn.
func (m *Regular[E]) AddColumn(col []E) error { return m.InsertColumn(m.g.nCols, col) }

// InsertColumn inserts a copy of col at column index j, shifting columns j.. right.
// On an empty matrix the column fixes Rows() = len(col).
// Errors mirror InsertRow.
func (m *Regular[E]) InsertColumn(j int, col []E) error {
	if err := m.checkInsertColumn(j, col); err != nil {
		return regularErrorf(ctxInsertColumn, err, j)
	}
	if m.state == stateUnfixed {
		m.g.ensureRowCapacity(len(col))
		m.g.nRows = len(col)
		m.state = stateFixed
	}
	m.g.insertCol(j, col)

	return nil
}

// ---------- replacement ----------

// SetRow replaces row i with a copy of row and returns the previous row.
//
// Errors:
//   - ErrNilArgument, ErrOutOfRange (i ∉ [0,Rows())), ErrIncompatibleSize.
func (m *Regular[E]) SetRow(i int, row []E) ([]E, error) {
	if err := m.checkSetRow(i, row); err != nil {
		return nil, regularErrorf(ctxSetRow, err, i)
	}
	prev := m.g.rowCopy(i)
	copy(m.g.row(i), row)

	return prev, nil
}

// SetColumn replaces column j with a copy of col and returns the previous column.
// Errors mirror SetRow.
func (m *Regular[E]) SetColumn(j int, col []E) ([]E, error) {
	if err := m.checkSetColumn(j, col); err != nil {
		return nil, regularErrorf(ctxSetColumn, err, j)
	}
	prev := m.g.colCopy(j)
	for i, v := range col {
		m.g.set(i, j, v)
	}

	return prev, nil
}

// Set stores v at (i,j) and returns the previous element.
func (m *Regular[E]) Set(i, j int, v E) (E, error) {
	var zero E
	if err := m.checkCell(i, j); err != nil {
		return zero, regularErrorf(ctxSet, err, i, j)
	}
	prev := m.g.at(i, j)
	m.g.set(i, j, v)

	return prev, nil
}

// ---------- access ----------

func (m *Regular[E]) checkCell(i, j int) error {
	if err := checkIndex(i, m.g.nRows); err != nil {
		return err
	}

	return checkIndex(j, m.g.nCols)
}

// At returns the element at (i,j).
func (m *Regular[E]) At(i, j int) (E, error) {
	var zero E
	if err := m.checkCell(i, j); err != nil {
		return zero, regularErrorf(ctxAt, err, i, j)
	}

	return m.g.at(i, j), nil
}

// Row returns a copy of row i.
func (m *Regular[E]) Row(i int) ([]E, error) {
	if err := checkIndex(i, m.g.nRows); err != nil {
		return nil, regularErrorf(ctxRow, err, i)
	}

	return m.g.rowCopy(i), nil
}

// Column returns a copy of column j.
func (m *Regular[E]) Column(j int) ([]E, error) {
	if err := checkIndex(j, m.g.nCols); err != nil {
		return nil, regularErrorf(ctxColumn, err, j)
	}

	return m.g.colCopy(j), nil
}

// ---------- removal ----------

// RemoveRow deletes row i and returns its values.
// Removing the last remaining row clears the matrix (fill state resets).
func (m *Regular[E]) RemoveRow(i int) ([]E, error) {
	if err := checkIndex(i, m.g.nRows); err != nil {
		return nil, regularErrorf(ctxRemoveRow, err, i)
	}
	if m.g.nRows == 1 {
		out := m.g.rowCopy(0)
		m.Clear()

		return out, nil
	}

	return m.g.removeRow(i), nil
}

// RemoveColumn deletes column j and returns its values.
// Removing the last remaining column clears the matrix (fill state resets).
func (m *Regular[E]) RemoveColumn(j int) ([]E, error) {
	if err := checkIndex(j, m.g.nCols); err != nil {
		return nil, regularErrorf(ctxRemoveColumn, err, j)
	}
	if m.g.nCols == 1 {
		out := m.g.colCopy(0)
		m.Clear()

		return out, nil
	}

	return m.g.removeCol(j), nil
}

// SwapRows exchanges rows i and j in O(1) (row headers only).
func (m *Regular[E]) SwapRows(i, j int) error {
	if err := checkIndex(i, m.g.nRows); err != nil {
		return regularErrorf(ctxSwapRows, err, i, j)
	}
	if err := checkIndex(j, m.g.nRows); err != nil {
		return regularErrorf(ctxSwapRows, err, i, j)
	}
	m.g.swapRows(i, j)

	return nil
}

// ---------- capacity ----------

// Clear removes every element; capacity is kept and the fill state resets.
func (m *Regular[E]) Clear() {
	m.g.reset()
	m.state = stateUnfixed
}

// TrimToSize shrinks capacities to the logical size. An empty matrix drops
// its buffer entirely.
func (m *Regular[E]) TrimToSize() { m.g.trimToSize() }

// EnsureRowCapacity grows the row capacity to at least n. Smaller n is a no-op.
func (m *Regular[E]) EnsureRowCapacity(n int) error {
	if n < 0 {
		return regularErrorf(ctxEnsureCap, ErrInvalidArgument, n)
	}
	if n > 0 {
		m.g.ensureRowCapacity(n)
	}

	return nil
}

// EnsureColumnCapacity grows the column capacity to at least n. Smaller n is a no-op.
func (m *Regular[E]) EnsureColumnCapacity(n int) error {
	if n < 0 {
		return regularErrorf(ctxEnsureCap, ErrInvalidArgument, n)
	}
	if n > 0 {
		m.g.ensureColCapacity(n)
	}

	return nil
}

// ---------- derived matrices ----------

// SubMatrix returns a new matrix without row i and column j, remaining
// elements in their original relative order. A 1×n or n×1 input yields an
// empty matrix.
func (m *Regular[E]) SubMatrix(i, j int) (*Regular[E], error) {
	if err := m.checkCell(i, j); err != nil {
		return nil, regularErrorf(ctxSubMatrix, err, i, j)
	}
	out := &Regular[E]{
		g:    newGrid[E](m.g.nRows-1, m.g.nCols-1, m.opts.growth),
		opts: m.opts,
	}
	if m.g.nRows == 1 || m.g.nCols == 1 {
		return out, nil
	}
	var r, k int
	for r = 0; r < m.g.nRows; r++ {
		if r == i {
			continue
		}
		src, dst := m.g.row(r), out.g.rows[k]
		copy(dst, src[:j])
		copy(dst[j:], src[j+1:])
		k++
	}
	out.g.nRows, out.g.nCols = k, m.g.nCols-1
	out.state = stateFixed

	return out, nil
}

// Transpose returns a new Cols()×Rows() matrix with element (i,j) = m(j,i).
func (m *Regular[E]) Transpose() *Regular[E] {
	out := &Regular[E]{g: newGrid[E](m.g.nCols, m.g.nRows, m.opts.growth), opts: m.opts}
	if m.IsEmpty() {
		return out
	}
	var i, j int
	for j = 0; j < m.g.nCols; j++ {
		for i = 0; i < m.g.nRows; i++ {
			out.g.rows[j][i] = m.g.at(i, j)
		}
	}
	out.g.nRows, out.g.nCols = m.g.nCols, m.g.nRows
	out.state = stateFixed

	return out
}

// Clone returns a deep copy with the same capacities and options.
func (m *Regular[E]) Clone() *Regular[E] {
	return &Regular[E]{g: m.g.clone(), state: m.state, opts: m.opts}
}

// Equal reports whether other has the same shape and pairwise-equal elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func (m *Regular[E]) Equal(other *Regular[E]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.g.nRows != other.g.nRows || m.g.nCols != other.g.nCols {
		return false
	}
	for i := 0; i < m.g.nRows; i++ {
		a, b := m.g.row(i), other.g.row(i)
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}

	return true
}

// ---------- search ----------

// IndexOf returns the first (row-major) position of v.
func (m *Regular[E]) IndexOf(v E) (row, col int, ok bool) {
	for i := 0; i < m.g.nRows; i++ {
		for j, x := range m.g.row(i) {
			if x == v {
				return i, j, true
			}
		}
	}

	return -1, -1, false
}

// LastIndexOf returns the last (row-major) position of v.
func (m *Regular[E]) LastIndexOf(v E) (row, col int, ok bool) {
	for i := m.g.nRows - 1; i >= 0; i-- {
		r := m.g.row(i)
		for j := len(r) - 1; j >= 0; j-- {
			if r[j] == v {
				return i, j, true
			}
		}
	}

	return -1, -1, false
}

// Contains reports whether v occurs anywhere in the matrix.
func (m *Regular[E]) Contains(v E) bool {
	_, _, ok := m.IndexOf(v)

	return ok
}

// Do calls fn for every element in row-major order until fn returns false.
func (m *Regular[E]) Do(fn func(i, j int, v E) bool) {
	for i := 0; i < m.g.nRows; i++ {
		for j, v := range m.g.row(i) {
			if !fn(i, j, v) {
				return
			}
		}
	}
}

// ---------- formatting ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// String renders one bracketed row per line, "[]" when empty.
func (m *Regular[E]) String() string {
	if m.IsEmpty() {
		return "[]"
	}
	var sb strings.Builder
	for i := 0; i < m.g.nRows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j, v := range m.g.row(i) {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
