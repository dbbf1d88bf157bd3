// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// formatDecimals is the number of decimals kept when rendering a cell.
const formatDecimals = 4

// Bracket glyphs for multi-row output.
const (
	_boxTopOpen     = '┌'
	_boxTopClose    = '┐'
	_boxBottomOpen  = '└'
	_boxBottomClose = '┘'
	_boxSide        = '│'
)

// formatCell renders v with up to formatDecimals decimals, trailing zeros
// and a dangling decimal point removed.
func formatCell(v float64) string {
	s := strconv.FormatFloat(v, 'f', formatDecimals, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}

	return s
}

// center pads s to width w, biased left when the padding is odd.
func center(s string, w int) string {
	pad := w - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// String renders the matrix with aligned, centered cells:
//
//	┌  1  2.5 ┐
//	│  3   4  │
//	└ -1   0  ┘
//
// A single row uses plain brackets and an empty matrix renders as "[]".
func (m *Numeric) String() string {
	if m.IsEmpty() {
		return "[]"
	}
	var (
		rows  = m.Rows()
		cells = make([][]string, rows)
		width int
		i     int
	)
	for i = 0; i < rows; i++ {
		src := m.rowView(i)
		cells[i] = make([]string, len(src))
		for j, v := range src {
			cells[i][j] = formatCell(v)
			width = max(width, len(cells[i][j]))
		}
	}

	var sb strings.Builder
	for i = 0; i < rows; i++ {
		open, closing := rune(_boxSide), rune(_boxSide)
		switch {
		case rows == 1:
			open, closing = '[', ']'
		case i == 0:
			open, closing = _boxTopOpen, _boxTopClose
		case i == rows-1:
			open, closing = _boxBottomOpen, _boxBottomClose
		}
		sb.WriteRune(open)
		sb.WriteByte(' ')
		for _, c := range cells[i] {
			sb.WriteString(center(c, width))
			sb.WriteByte(' ')
		}
		sb.WriteRune(closing)
		if i < rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
