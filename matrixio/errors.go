// SPDX-License-Identifier: MIT

package matrixio

import "errors"

// Sentinel errors; match with errors.Is.
var (
	// ErrBadMagic indicates the input is not an LVMX snapshot.
	ErrBadMagic = errors.New("matrixio: bad magic")

	// ErrUnsupportedVersion indicates a snapshot written by a newer format version.
	ErrUnsupportedVersion = errors.New("matrixio: unsupported format version")

	// ErrUnknownCompression indicates an unknown compression id or name.
	ErrUnknownCompression = errors.New("matrixio: unknown compression")

	// ErrCorrupt indicates truncated or inconsistent snapshot data.
	ErrCorrupt = errors.New("matrixio: corrupt data")

	// ErrSyntax indicates unparsable inline text.
	ErrSyntax = errors.New("matrixio: syntax error")

	// ErrUnknownFormat indicates a file extension with no registered encoding.
	ErrUnknownFormat = errors.New("matrixio: unknown file format")
)
