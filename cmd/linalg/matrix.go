// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/matrix"
)

type matrixFlags struct {
	operandFlags
	method string
}

func newMatrixCommand(root *rootOptions) *cobra.Command {
	f := &matrixFlags{}
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Matrix operations on --a and --b",
	}
	f.register(cmd)
	f.registerOutput(cmd)
	cmd.PersistentFlags().StringVar(&f.method, "method", "elimination", "det/inverse algorithm: elimination or cofactor")

	// validate checks operand shapes before run.
	binary := func(use, short string, validate func(a, b *matrix.Numeric) error,
		run func(a, b *matrix.Numeric) (*matrix.Numeric, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := loadMatrix(cmd, root.log, "a", f.a, f.aFile)
				if err != nil {
					return err
				}
				b, err := loadMatrix(cmd, root.log, "b", f.b, f.bFile)
				if err != nil {
					return err
				}
				if err = validate(a, b); err != nil {
					return err
				}
				out, err := run(a, b)
				root.log.LogResult(cmd.Context(), err)
				if err != nil {
					return err
				}

				return emitMatrix(cmd, root.log, &f.operandFlags, out)
			},
		}
	}
	unary := func(use, short string, square bool, run func(cmd *cobra.Command, m *matrix.Numeric) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := loadMatrix(cmd, root.log, "a", f.a, f.aFile)
				if err != nil {
					return err
				}
				if square {
					if err = matrix.ValidateSquare(m); err != nil {
						return err
					}
				}
				err = run(cmd, m)
				root.log.LogResult(cmd.Context(), err)

				return err
			},
		}
	}
	// result adapts a matrix-valued operation to unary.
	result := func(op func(m *matrix.Numeric) (*matrix.Numeric, error)) func(*cobra.Command, *matrix.Numeric) error {
		return func(cmd *cobra.Command, m *matrix.Numeric) error {
			out, err := op(m)
			if err != nil {
				return err
			}

			return emitMatrix(cmd, root.log, &f.operandFlags, out)
		}
	}

	cmd.AddCommand(
		binary("add", "Print A+B", matrix.ValidateSameShape, matrix.Add),
		binary("sub", "Print A-B", matrix.ValidateSameShape, matrix.Sub),
		binary("mul", "Print the product AB", matrix.ValidateMulCompatible, matrix.Mul),
		unary("scale", "Print scalar*A", false, result(func(m *matrix.Numeric) (*matrix.Numeric, error) {
			return matrix.Scale(m, f.scalar)
		})),
		unary("transpose", "Print Aᵀ", false, result(matrix.Transpose)),
		unary("det", "Print det(A)", true, func(cmd *cobra.Command, m *matrix.Numeric) error {
			method, err := matrix.ParseMethod(f.method)
			if err != nil {
				return err
			}
			det, err := matrix.DeterminantOf(m, method)
			if err == nil {
				printScalar(cmd, det)
			}

			return err
		}),
		unary("inverse", "Print A⁻¹", true, result(func(m *matrix.Numeric) (*matrix.Numeric, error) {
			method, err := matrix.ParseMethod(f.method)
			if err != nil {
				return nil, err
			}

			return matrix.InverseOf(m, method)
		})),
		unary("cofactor", "Print the cofactor matrix of A", true, result(matrix.Cofactor)),
		unary("adjugate", "Print the adjugate of A", true, result(matrix.Adjugate)),
		unary("echelon", "Print the row echelon form of A", false, result(func(m *matrix.Numeric) (*matrix.Numeric, error) {
			work := m.Clone()
			if _, err := matrix.RowEchelon(work); err != nil {
				return nil, err
			}

			return work, nil
		})),
	)

	return cmd
}
