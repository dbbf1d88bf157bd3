// Package lvmatrix is a small linear-algebra toolkit built around a growable,
// capacity-managed dense matrix, from storage primitives to determinants,
// inverses and a command-line front end.
//
// 🚀 What is lvmatrix?
//
//	A pure Go library that brings together:
//		• Storage: a contiguous grid with independent row and column capacity
//		• Regular matrices: row/column insert, replace and remove under a fixed shape
//		• Numeric matrices: float64 specialization with a NaN/Inf policy
//		• Elimination: row ordering, row echelon form, determinant, Gauss-Jordan inverse
//		• Cofactor expansion: Laplace determinant, cofactor, adjugate, adjugate inverse
//		• Vectors: add, sub, dot, scale, cross, perpendicular, length
//		• Serialization: inline text, YAML documents, compressed binary snapshots
//
// Under the hood, everything is organized under three packages:
//
//	matrix/     — Regular[E], Numeric, elimination, cofactor expansion and vector ops
//	matrixio/   — text parsing, YAML (gopkg.in/yaml.v3), LVMX binary with LZ4/Zstandard
//	cmd/linalg/ — cobra CLI over both
//
// Quick example:
//
//	┌ 1 2 ┐
//	└ 3 4 ┘   det = -2,  inverse = ┌ -2    1  ┐
//	                               └ 1.5 -0.5 ┘
//
//	go install github.com/katalvlaran/lvmatrix/cmd/linalg@latest
//	linalg matrix inverse --a "1 2; 3 4"
package lvmatrix
