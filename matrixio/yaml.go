// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Document is the YAML layout:
//
//	matrix: [[1, 2], [3, 4]]
//	vector: [1, 0, 0]
//
// Block-style lists are accepted on input as well.
type Document struct {
	Matrix [][]float64 `yaml:"matrix,omitempty,flow"`
	Vector []float64   `yaml:"vector,omitempty,flow"`
}

// DocumentOf captures m (and optionally v) into a Document.
func DocumentOf(m matrix.Matrix, v []float64) (Document, error) {
	doc := Document{Vector: v}
	if m == nil {
		return doc, nil
	}
	doc.Matrix = make([][]float64, m.Rows())
	for i := range doc.Matrix {
		r, err := m.Row(i)
		if err != nil {
			return Document{}, err
		}
		doc.Matrix[i] = r
	}

	return doc, nil
}

// EncodeYAML writes m as a YAML document.
func EncodeYAML(w io.Writer, m matrix.Matrix) error {
	doc, err := DocumentOf(m, nil)
	if err != nil {
		return fmt.Errorf("EncodeYAML: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("EncodeYAML: %w", err)
	}

	return enc.Close()
}

// DecodeDocument reads one YAML document.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("DecodeDocument: %w: %w", ErrSyntax, err)
	}

	return doc, nil
}

// DecodeYAML reads the "matrix" key of a YAML document.
// A document without one yields matrix.ErrNilArgument.
func DecodeYAML(r io.Reader, opts ...matrix.Option) (*matrix.Numeric, error) {
	doc, err := DecodeDocument(r)
	if err != nil {
		return nil, err
	}
	if doc.Matrix == nil {
		return nil, fmt.Errorf("DecodeYAML: no matrix key: %w", matrix.ErrNilArgument)
	}

	return matrix.NumericFromRows(doc.Matrix, opts...)
}
