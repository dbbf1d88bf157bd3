// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger wraps slog.Logger with linalg-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger over handler; nil discards everything.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(io.Discard, nil)
	}

	return &Logger{Logger: slog.New(handler)}
}

// newLoggerFor builds the handler selected by --log-format at --log-level.
func newLoggerFor(w io.Writer, level, format string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", s, err)
	}

	return lvl, nil
}

// WithOp tags records with the running command.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{Logger: l.Logger.With("op", op)}
}

// LogOperand records where an operand came from and its shape.
func (l *Logger) LogOperand(ctx context.Context, name, source string, rows, cols int) {
	l.DebugContext(ctx, "operand loaded",
		"operand", name,
		"source", source,
		"rows", rows,
		"cols", cols,
	)
}

// LogResult records the outcome of an operation.
func (l *Logger) LogResult(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "operation failed", "error", err)
	} else {
		l.DebugContext(ctx, "operation completed")
	}
}
