// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// rowSeparators split inline text into rows.
const rowSeparators = ";\n"

// ParseVector parses "1 2.5 -3" (spaces and/or commas) into a vector.
//
// Errors: ErrSyntax on an empty input or a non-numeric token.
func ParseVector(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '[' || r == ']'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseVector(%q): empty: %w", s, ErrSyntax)
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseVector(%q): token %q: %w", s, f, ErrSyntax)
		}
		out[i] = v
	}

	return out, nil
}

// ParseRows parses "1 2; 3 4" into a matrix. Blank rows are skipped.
// Ragged rows fail with matrix.ErrIncompatibleSize.
func ParseRows(s string, opts ...matrix.Option) (*matrix.Numeric, error) {
	var rows [][]float64
	for _, line := range strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(rowSeparators, r)
	}) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := ParseVector(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ParseRows(%q): no rows: %w", s, ErrSyntax)
	}

	return matrix.NumericFromRows(rows, opts...)
}

// FormatVector renders v the way ParseVector reads it back.
func FormatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}
