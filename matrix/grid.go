// SPDX-License-Identifier: MIT

// Package matrix - capacity-managed grid storage.
//
// Purpose:
//   - Hold a rows×cols block of elements inside ONE contiguous backing buffer.
//   - Every row slot is a window of length colCap into that buffer; only the
//     first nCols cells of a window are meaningful.
//   - Keep rows as slice headers so swapping or shifting rows moves headers,
//     never elements.
//
// Layout:
//
//	buf:   [ slot0 ........ | slot1 ........ | slot2 ........ ]   len = rowCap*colCap
//	rows:  [ &slot2, &slot0, &slot1 ]                             logical order
//
// Growth reallocates buf and copies rows back in logical order, so after any
// growth or trim rows[i] is again the i-th window of buf.
//
// Complexity quicksheet:
//   - at/set/swapRows: O(1); insertRow/removeRow: O(rows) header moves +
//     O(cols) element copy; insertCol/removeCol: O(rows*cols); growth: O(rowCap*colCap).
//
// The grid does no argument validation; Regular checks indices and lengths
// before calling in.

package matrix

import "slices"

// grid is the storage layer behind Regular.
type grid[E any] struct {
	buf    []E   // contiguous storage, len == len(rows)*colCap
	rows   [][]E // row windows in logical order; len(rows) is the row capacity
	colCap int   // column capacity (window length)
	nRows  int   // logical row count
	nCols  int   // logical column count
	growth GrowthPolicy
}

// newGrid allocates a grid with the given capacities. A zero capacity in
// either dimension yields the zero-size sentinel (no buffer at all).
func newGrid[E any](rowCap, colCap int, growth GrowthPolicy) *grid[E] {
	g := &grid[E]{growth: growth}
	if rowCap > 0 && colCap > 0 {
		g.relayout(rowCap, colCap)
	}

	return g
}

func (g *grid[E]) rowCap() int { return len(g.rows) }

// isSentinel reports whether the grid holds no buffer at all.
func (g *grid[E]) isSentinel() bool { return g.buf == nil }

// relayout moves the logical contents into a fresh buffer of the given
// capacities. Callers guarantee rowCap >= nRows and colCap >= nCols.
func (g *grid[E]) relayout(rowCap, colCap int) {
	var (
		buf  = make([]E, rowCap*colCap)
		rows = make([][]E, rowCap)
		i    int
	)
	for i = 0; i < rowCap; i++ {
		rows[i] = buf[i*colCap : (i+1)*colCap : (i+1)*colCap]
	}
	for i = 0; i < g.nRows; i++ {
		copy(rows[i][:g.nCols], g.rows[i][:g.nCols])
	}
	g.buf, g.rows, g.colCap = buf, rows, colCap
}

// ensureRowCapacity grows the row capacity to at least n.
// From the sentinel the new capacity is max(DefaultRowCapacity, n).
func (g *grid[E]) ensureRowCapacity(n int) {
	if n <= g.rowCap() && !g.isSentinel() {
		return
	}
	if g.isSentinel() {
		g.relayout(max(DefaultRowCapacity, n), max(DefaultColCapacity, g.colCap))

		return
	}
	g.relayout(n, g.colCap)
}

// ensureColCapacity grows the column capacity to at least n.
// From the sentinel the new capacity is max(DefaultColCapacity, n).
func (g *grid[E]) ensureColCapacity(n int) {
	if n <= g.colCap && !g.isSentinel() {
		return
	}
	if g.isSentinel() {
		g.relayout(max(DefaultRowCapacity, g.rowCap()), max(DefaultColCapacity, n))

		return
	}
	g.relayout(g.rowCap(), n)
}

// checkRowCapacity makes room for one more row using the growth policy.
func (g *grid[E]) checkRowCapacity() {
	if g.nRows == g.rowCap() || g.isSentinel() {
		g.ensureRowCapacity(g.growth.next(g.rowCap()))
	}
}

// checkColCapacity makes room for one more column using the growth policy.
func (g *grid[E]) checkColCapacity() {
	if g.nCols == g.colCap || g.isSentinel() {
		g.ensureColCapacity(g.growth.next(g.colCap))
	}
}

func (g *grid[E]) at(i, j int) E     { return g.rows[i][j] }
func (g *grid[E]) set(i, j int, v E) { g.rows[i][j] = v }

// row returns the live window of row i limited to nCols. Internal use only;
// public accessors hand out copies.
func (g *grid[E]) row(i int) []E { return g.rows[i][:g.nCols] }

// rowCopy returns a snapshot of row i.
func (g *grid[E]) rowCopy(i int) []E { return slices.Clone(g.rows[i][:g.nCols]) }

// colCopy returns a snapshot of column j.
func (g *grid[E]) colCopy(j int) []E {
	out := make([]E, g.nRows)
	for i := 0; i < g.nRows; i++ {
		out[i] = g.rows[i][j]
	}

	return out
}

// insertRow places vals (len == nCols) at logical index idx.
// The spare window past the last row is rotated into position.
func (g *grid[E]) insertRow(idx int, vals []E) {
	g.checkRowCapacity()
	spare := g.rows[g.nRows]
	copy(g.rows[idx+1:g.nRows+1], g.rows[idx:g.nRows])
	g.rows[idx] = spare
	copy(spare, vals)
	clear(spare[len(vals):])
	g.nRows++
}

// removeRow drops row idx and returns its values.
func (g *grid[E]) removeRow(idx int) []E {
	freed := g.rows[idx]
	out := slices.Clone(freed[:g.nCols])
	copy(g.rows[idx:g.nRows-1], g.rows[idx+1:g.nRows])
	g.rows[g.nRows-1] = freed
	clear(freed)
	g.nRows--

	return out
}

// insertCol places vals (len == nRows) at logical column idx.
func (g *grid[E]) insertCol(idx int, vals []E) {
	g.checkColCapacity()
	for i := 0; i < g.nRows; i++ {
		r := g.rows[i]
		copy(r[idx+1:g.nCols+1], r[idx:g.nCols])
		r[idx] = vals[i]
	}
	g.nCols++
}

// removeCol drops column idx and returns its values.
func (g *grid[E]) removeCol(idx int) []E {
	var zero E
	out := make([]E, g.nRows)
	for i := 0; i < g.nRows; i++ {
		r := g.rows[i]
		out[i] = r[idx]
		copy(r[idx:g.nCols-1], r[idx+1:g.nCols])
		r[g.nCols-1] = zero
	}
	g.nCols--

	return out
}

// swapRows exchanges two row headers.
func (g *grid[E]) swapRows(i, j int) {
	g.rows[i], g.rows[j] = g.rows[j], g.rows[i]
}

// trimToSize shrinks capacities to the logical size; an empty grid becomes
// the zero-size sentinel.
func (g *grid[E]) trimToSize() {
	if g.nRows == 0 || g.nCols == 0 {
		g.buf, g.rows, g.colCap = nil, nil, 0
		g.nRows, g.nCols = 0, 0

		return
	}
	if g.nRows == g.rowCap() && g.nCols == g.colCap {
		return
	}
	g.relayout(g.nRows, g.nCols)
}

// reset zeroes the used cells and resets logical counts; capacity is kept.
func (g *grid[E]) reset() {
	for i := 0; i < g.nRows; i++ {
		clear(g.rows[i])
	}
	g.nRows, g.nCols = 0, 0
}

// clone returns a deep copy that keeps the source capacities.
func (g *grid[E]) clone() *grid[E] {
	c := &grid[E]{growth: g.growth, nRows: g.nRows, nCols: g.nCols}
	if g.isSentinel() {
		return c
	}
	c.relayoutFrom(g)

	return c
}

// relayoutFrom copies src into a fresh buffer with src's capacities.
func (g *grid[E]) relayoutFrom(src *grid[E]) {
	g.nRows, g.nCols = 0, 0
	g.relayout(src.rowCap(), src.colCap)
	for i := 0; i < src.nRows; i++ {
		copy(g.rows[i], src.rows[i][:src.nCols])
	}
	g.nRows, g.nCols = src.nRows, src.nCols
}
