// Package mat_test provides benchmarks for the element-wise kernels and
// the fill path, using deterministic random values.
package mat_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mat"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *mat.Dense[float64]
	sinkB bool
)

// benchDense builds an n×n matrix seeded with deterministic random values.
func benchDense(b *testing.B, n int, seed int64) *mat.Dense[float64] {
	b.Helper()
	m, err := mat.New[float64](n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, rng.Float64()); err != nil {
				b.Fatal(err)
			}
		}
	}
	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 1337)
			B := benchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := mat.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAddInPlace(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 1337)
			B := benchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := mat.AddInPlace(A, B); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFill(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				A.Fill(float64(i))
			}
		})
	}
}

func BenchmarkPrintableCheck(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkB = mat.Printable[float64]()
	}
}
