// SPDX-License-Identifier: MIT

package spectral_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/roughsurf/matrix"
	"github.com/katalvlaran/roughsurf/spectral"
)

func benchComplex(b *testing.B, n int) *matrix.ComplexDense {
	b.Helper()
	rng := rand.New(rand.NewSource(int64(n)))
	x, err := matrix.NewComplexDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = x.Set(i, j, matrix.NewComplex(rng.NormFloat64(), 0))
		}
	}

	return x
}

func benchmarkForward(b *testing.B, name string, n int) {
	t, err := spectral.ByName(name)
	if err != nil {
		b.Fatal(err)
	}
	x := benchComplex(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = t.Forward(x); err != nil {
			b.Fatalf("%s forward: %v", name, err)
		}
	}
}

func BenchmarkForward_Direct64(b *testing.B)  { benchmarkForward(b, spectral.NameDirect, 64) }
func BenchmarkForward_Radix2_64(b *testing.B) { benchmarkForward(b, spectral.NameRadix2, 64) }
func BenchmarkForward_Gonum64(b *testing.B)   { benchmarkForward(b, spectral.NameGonum, 64) }
func BenchmarkForward_DSP64(b *testing.B)     { benchmarkForward(b, spectral.NameDSP, 64) }

func BenchmarkForward_Radix2_256(b *testing.B) { benchmarkForward(b, spectral.NameRadix2, 256) }
func BenchmarkForward_Gonum256(b *testing.B)   { benchmarkForward(b, spectral.NameGonum, 256) }
func BenchmarkForward_Gonum200(b *testing.B)   { benchmarkForward(b, spectral.NameGonum, 200) }
