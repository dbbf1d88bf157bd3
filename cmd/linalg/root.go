// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	logFormat string

	log *Logger
}

// newRootCommand assembles the command tree. Logging goes to the command's
// error stream; results go to its output stream.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{log: NewLogger(nil)}

	cmd := &cobra.Command{
		Use:          "linalg",
		Short:        "Vector and matrix arithmetic",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLoggerFor(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.log = log.WithOp(cmd.CommandPath())

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(
		newVectorCommand(opts),
		newMatrixCommand(opts),
		newConvertCommand(opts),
	)

	return cmd
}
