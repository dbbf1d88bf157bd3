// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the storage layer and the
// elimination kernels, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Numeric
	sinkF float64
)

func BenchmarkAddRow(b *testing.B) {
	for _, growth := range []matrix.GrowthPolicy{matrix.GrowLinear, matrix.GrowDoubling} {
		b.Run(growth.String(), func(b *testing.B) {
			row := make([]float64, 32)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m := matrix.NewDefaultNumeric(matrix.WithGrowth(growth))
				for k := 0; k < 256; k++ {
					if err := m.AddRow(row); err != nil {
						b.Fatal(err)
					}
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := RandInvertible(b, n, 1337)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				det, err := matrix.Determinant(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = det
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := RandInvertible(b, n, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := matrix.Inverse(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandSquare(b, n, 7)
			y := RandSquare(b, n, 8)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = p
			}
		})
	}
}
