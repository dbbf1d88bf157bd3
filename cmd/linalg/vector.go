// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func newVectorCommand(root *rootOptions) *cobra.Command {
	f := &operandFlags{}
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Vector operations on --a and --b",
	}
	f.register(cmd)

	binary := func(use, short string, run func(cmd *cobra.Command, a, b []float64) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := loadVector(cmd, root.log, "a", f.a, f.aFile)
				if err != nil {
					return err
				}
				b, err := loadVector(cmd, root.log, "b", f.b, f.bFile)
				if err != nil {
					return err
				}
				if err = requireSameLen(a, b); err != nil {
					return err
				}
				err = run(cmd, a, b)
				root.log.LogResult(cmd.Context(), err)

				return err
			},
		}
	}
	unary := func(use, short string, run func(cmd *cobra.Command, v []float64) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				v, err := loadVector(cmd, root.log, "a", f.a, f.aFile)
				if err != nil {
					return err
				}
				err = run(cmd, v)
				root.log.LogResult(cmd.Context(), err)

				return err
			},
		}
	}

	cmd.AddCommand(
		binary("add", "Print a+b", func(cmd *cobra.Command, a, b []float64) error {
			out, err := matrix.AddVectors(a, b)
			if err == nil {
				printVector(cmd, out)
			}

			return err
		}),
		binary("sub", "Print a-b", func(cmd *cobra.Command, a, b []float64) error {
			out, err := matrix.SubVectors(a, b)
			if err == nil {
				printVector(cmd, out)
			}

			return err
		}),
		binary("dot", "Print the dot product a·b", func(cmd *cobra.Command, a, b []float64) error {
			out, err := matrix.DotProduct(a, b)
			if err == nil {
				printScalar(cmd, out)
			}

			return err
		}),
		binary("cross", "Print the cross product a×b of two 3-vectors", func(cmd *cobra.Command, a, b []float64) error {
			if len(a) != 3 {
				return fmt.Errorf("cross product needs 3-vectors, got length %d: %w", len(a), matrix.ErrIncompatibleSize)
			}
			out, err := matrix.CrossProduct(a, b)
			if err == nil {
				printVector(cmd, out)
			}

			return err
		}),
		unary("scale", "Print scalar*a", func(cmd *cobra.Command, v []float64) error {
			out, err := matrix.ScaleVector(v, f.scalar)
			if err == nil {
				printVector(cmd, out)
			}

			return err
		}),
		unary("perp", "Print a vector perpendicular to a", func(cmd *cobra.Command, v []float64) error {
			out, err := matrix.PerpendicularVector(v)
			if err == nil {
				printVector(cmd, out)
			}

			return err
		}),
		unary("length", "Print the Euclidean length of a", func(cmd *cobra.Command, v []float64) error {
			out, err := matrix.VectorLength(v)
			if err == nil {
				printScalar(cmd, out)
			}

			return err
		}),
	)

	return cmd
}
