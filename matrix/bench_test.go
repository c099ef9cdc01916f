// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/epimob/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkF float64
)

func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// fillDenseRand fills m with non-negative values from a fixed seed.
func fillDenseRand(b *testing.B, m *matrix.Dense, seed uint64) {
	b.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkNormalizeRowsL1(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			X := mustDense(b, n, n)
			fillDenseRand(b, X, 909)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Y, norms, err := matrix.NormalizeRowsL1(X)
				if err != nil {
					b.Fatal(err)
				}
				sinkM, sinkV = Y, norms
			}
		})
	}
}

func BenchmarkSpectralAbscissa(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			X := mustDense(b, n, n)
			fillDenseRand(b, X, 777)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.SpectralAbscissa(X)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}
