// SPDX-License-Identifier: MIT

// Package matrixio reads and writes numeric matrices and vectors.
//
// Three encodings are supported:
//
//   - Inline text, as typed on a command line: rows separated by ';' or
//     newlines, values by spaces or commas ("1 2; 3 4"). See ParseRows and
//     ParseVector.
//   - YAML documents with a "matrix" key (list of rows) and/or a "vector"
//     key. See EncodeYAML and DecodeYAML.
//   - A compact binary snapshot ("LVMX") holding the shape and the float64
//     payload, optionally compressed with LZ4 or Zstandard. See
//     MarshalBinary and UnmarshalBinary.
//
// LoadFile and SaveFile pick YAML or binary by file extension.
package matrixio
