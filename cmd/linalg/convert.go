// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/matrixio"
)

func newConvertCommand(root *rootOptions) *cobra.Command {
	var in, out, compression string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a matrix file between YAML and LVMX binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := matrixio.ParseCompression(compression)
			if err != nil {
				return err
			}
			m, err := matrixio.LoadFile(in)
			if err != nil {
				return err
			}
			root.log.LogOperand(cmd.Context(), "in", in, m.Rows(), m.Cols())
			err = matrixio.SaveFile(out, m, c)
			root.log.LogResult(cmd.Context(), err)
			if err != nil {
				return err
			}
			root.log.InfoContext(cmd.Context(), "converted", "in", in, "out", out, "compression", c.String())

			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "source file (.yaml/.yml/.lvmx/.bin)")
	cmd.Flags().StringVar(&out, "out", "", "destination file (.yaml/.yml/.lvmx/.bin)")
	cmd.Flags().StringVar(&compression, "compression", "none", "binary compression: none, lz4, zstd")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
