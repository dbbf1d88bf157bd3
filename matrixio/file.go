// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Format identifies a file encoding.
type Format int

const (
	// FormatYAML is a YAML document with a "matrix" key (.yaml, .yml).
	FormatYAML Format = iota
	// FormatBinary is an LVMX snapshot (.lvmx, .bin).
	FormatBinary
)

// FormatOf picks the encoding from the file extension:
// .yaml/.yml → YAML, .lvmx/.bin → binary.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".lvmx", ".bin":
		return FormatBinary, nil
	default:
		return 0, fmt.Errorf("FormatOf(%q): %w", path, ErrUnknownFormat)
	}
}

// LoadFile reads a matrix from path.
func LoadFile(path string, opts ...matrix.Option) (*matrix.Numeric, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == FormatBinary {
		return ReadBinary(f, opts...)
	}

	return DecodeYAML(f, opts...)
}

// SaveFile writes m to path. c applies to binary files only.
func SaveFile(path string, m matrix.Matrix, c Compression) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if format == FormatBinary {
		err = WriteBinary(f, m, c)
	} else {
		err = EncodeYAML(f, m)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}
