// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/matrixio"
)

var errMissingOperand = errors.New("missing operand")

// operandFlags holds the --a/--b operands, inline or from files.
type operandFlags struct {
	a, b         string
	aFile, bFile string
	scalar       float64
	out          string
	compression  string
}

func (f *operandFlags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&f.a, "a", "", `first operand, inline ("1 2 3" or "1 2; 3 4")`)
	fs.StringVar(&f.b, "b", "", "second operand, inline")
	fs.StringVar(&f.aFile, "a-file", "", "first operand from a .yaml/.yml/.lvmx/.bin file")
	fs.StringVar(&f.bFile, "b-file", "", "second operand from a file")
	fs.Float64Var(&f.scalar, "scalar", 1, "scalar factor for scale")
	cmd.MarkFlagsMutuallyExclusive("a", "a-file")
	cmd.MarkFlagsMutuallyExclusive("b", "b-file")
}

// registerOutput adds --out/--compression for commands producing a matrix.
func (f *operandFlags) registerOutput(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&f.out, "out", "", "also save a matrix result to this file")
	fs.StringVar(&f.compression, "compression", "none", "binary output compression: none, lz4, zstd")
}

func pick(name, inline, file string) (string, bool, error) {
	switch {
	case file != "":
		return file, true, nil
	case inline != "":
		return inline, false, nil
	default:
		return "", false, fmt.Errorf("--%s or --%s-file: %w", name, name, errMissingOperand)
	}
}

func loadMatrix(cmd *cobra.Command, log *Logger, name, inline, file string) (*matrix.Numeric, error) {
	src, fromFile, err := pick(name, inline, file)
	if err != nil {
		return nil, err
	}
	var m *matrix.Numeric
	if fromFile {
		m, err = matrixio.LoadFile(src)
	} else {
		m, err = matrixio.ParseRows(src)
	}
	if err != nil {
		return nil, fmt.Errorf("operand %s: %w", name, err)
	}
	log.LogOperand(cmd.Context(), name, src, m.Rows(), m.Cols())

	return m, nil
}

// loadVector reads a vector inline, from a YAML "vector" key, or from the
// single row of a stored matrix.
func loadVector(cmd *cobra.Command, log *Logger, name, inline, file string) ([]float64, error) {
	src, fromFile, err := pick(name, inline, file)
	if err != nil {
		return nil, err
	}
	var v []float64
	if fromFile {
		v, err = loadVectorFile(src)
	} else {
		v, err = matrixio.ParseVector(src)
	}
	if err != nil {
		return nil, fmt.Errorf("operand %s: %w", name, err)
	}
	log.LogOperand(cmd.Context(), name, src, 1, len(v))

	return v, nil
}

func loadVectorFile(path string) ([]float64, error) {
	format, err := matrixio.FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == matrixio.FormatYAML {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		doc, err := matrixio.DecodeDocument(f)
		if err != nil {
			return nil, err
		}
		if doc.Vector != nil {
			return doc.Vector, nil
		}
		if len(doc.Matrix) == 1 {
			return doc.Matrix[0], nil
		}

		return nil, fmt.Errorf("%s: no vector key and not a single-row matrix: %w", path, matrix.ErrIncompatibleSize)
	}

	m, err := matrixio.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if m.Rows() != 1 {
		return nil, fmt.Errorf("%s: %d rows, want 1: %w", path, m.Rows(), matrix.ErrIncompatibleSize)
	}

	return m.Row(0)
}

func requireSameLen(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("vectors of length %d and %d: %w", len(a), len(b), matrix.ErrIncompatibleSize)
	}

	return nil
}

func printScalar(cmd *cobra.Command, v float64) {
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
}

func printVector(cmd *cobra.Command, v []float64) {
	fmt.Fprintln(cmd.OutOrStdout(), matrixio.FormatVector(v))
}

// emitMatrix prints m and, with --out, saves it.
func emitMatrix(cmd *cobra.Command, log *Logger, f *operandFlags, m *matrix.Numeric) error {
	fmt.Fprintln(cmd.OutOrStdout(), m.String())
	if f.out == "" {
		return nil
	}
	c, err := matrixio.ParseCompression(f.compression)
	if err != nil {
		return err
	}
	if err = matrixio.SaveFile(f.out, m, c); err != nil {
		return err
	}
	log.InfoContext(cmd.Context(), "result saved", "file", f.out, "compression", c.String())

	return nil
}
