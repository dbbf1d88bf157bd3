// SPDX-License-Identifier: MIT

package matrix

import "math"

// SnapTolerance is the distance from an integer under which a result is
// replaced by that integer.
const SnapTolerance = 1e-8

// Snap returns the nearest integer when x lies within SnapTolerance of it,
// otherwise x unchanged. NaN and ±Inf pass through; -0 becomes +0.
//
// Every arithmetic combinator in this package (vector add/sub/scale/dot,
// row combination during elimination, determinant and inverse entries,
// matrix add/sub/mul/scale) runs its results through Snap.
func Snap(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Round(x)
	if math.Abs(x-r) <= SnapTolerance {
		if r == 0 {
			return 0
		}

		return r
	}

	return x
}

// snapAll applies Snap in place.
func snapAll(xs []float64) {
	for i, x := range xs {
		xs[i] = Snap(x)
	}
}

// axpyRow performs dst[k] = Snap(dst[k] + alpha*src[k]) over len(dst).
func axpyRow(dst, src []float64, alpha float64) {
	for k := range dst {
		dst[k] = Snap(dst[k] + alpha*src[k])
	}
}

// scaleRow performs dst[k] = Snap(alpha*dst[k]).
func scaleRow(dst []float64, alpha float64) {
	for k := range dst {
		dst[k] = Snap(alpha * dst[k])
	}
}
