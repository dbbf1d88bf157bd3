// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for grid internals.
//
// Purpose:
//   - Expose the storage layout of Regular to matrix_test ONLY, so tests can
//     assert that rows are windows of one buffer and that SwapRows moves
//     headers instead of elements.
//
// Build Policy:
//   - _test.go file in package matrix: compiled only by `go test`.

// GridLayout_TestOnly is a read-only snapshot of grid bookkeeping.
type GridLayout_TestOnly struct {
	BufLen  int
	RowCap  int
	ColCap  int
	Rows    int
	Cols    int
	Fixed   bool
	Windows []*float64 // address of the first cell of each logical row
}

// LayoutOf_TestOnly captures the layout of m.
func LayoutOf_TestOnly(m *Regular[float64]) GridLayout_TestOnly {
	l := GridLayout_TestOnly{
		BufLen: len(m.g.buf),
		RowCap: m.g.rowCap(),
		ColCap: m.g.colCap,
		Rows:   m.g.nRows,
		Cols:   m.g.nCols,
		Fixed:  m.state == stateFixed,
	}
	for i := 0; i < m.g.nRows; i++ {
		l.Windows = append(l.Windows, &m.g.rows[i][0])
	}

	return l
}

// InBuffer_TestOnly reports whether p points into m's backing buffer.
func InBuffer_TestOnly(m *Regular[float64], p *float64) bool {
	for k := range m.g.buf {
		if &m.g.buf[k] == p {
			return true
		}
	}

	return false
}

// Exported panic message to avoid magic strings in tests.
const PanicGrowthInvalid_TestOnly = panicGrowthInvalid
