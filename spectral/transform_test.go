// SPDX-License-Identifier: MIT

package spectral_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roughsurf/matrix"
	"github.com/katalvlaran/roughsurf/spectral"
)

const tol = 1e-9

// backends lists every Transform under test.
func backends() []spectral.Transform {
	return []spectral.Transform{spectral.Direct{}, spectral.Radix2{}, spectral.Gonum{}, spectral.DSP{}}
}

// randomComplex fills an r×c matrix with reproducible values in [-1, 1).
func randomComplex(t *testing.T, r, c int, seed int64) *matrix.ComplexDense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewComplexDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, matrix.NewComplex(2*rng.Float64()-1, 2*rng.Float64()-1)))
		}
	}

	return m
}

func TestRoundTrip(t *testing.T) {
	shapes := [][2]int{{2, 2}, {3, 3}, {4, 4}, {5, 5}, {8, 8}, {16, 16}, {4, 6}, {7, 2}}
	for _, tr := range backends() {
		for _, sh := range shapes {
			tr, sh := tr, sh
			t.Run(fmt.Sprintf("%s/%dx%d", tr.Name(), sh[0], sh[1]), func(t *testing.T) {
				x := randomComplex(t, sh[0], sh[1], int64(sh[0]*100+sh[1]))
				fx, err := tr.Forward(x)
				require.NoError(t, err)
				back, err := tr.Inverse(fx)
				require.NoError(t, err)

				ok, err := matrix.ComplexAllClose(x, back, tol)
				require.NoError(t, err)
				assert.True(t, ok, "inverse(forward(x)) != x")
			})
		}
	}
}

// A unit impulse at the origin has a flat unit spectrum.
func TestForwardDeltaN2(t *testing.T) {
	for _, tr := range backends() {
		x, _ := matrix.ComplexFromBuiltin([][]complex128{{1, 0}, {0, 0}})
		fx, err := tr.Forward(x)
		require.NoError(t, err, tr.Name())

		want, _ := matrix.ComplexFromBuiltin([][]complex128{{1, 1}, {1, 1}})
		ok, _ := matrix.ComplexAllClose(want, fx, tol)
		assert.True(t, ok, "%s: got %v", tr.Name(), fx.ToBuiltin())
	}
}

// A constant field concentrates all energy in the DC bin (unnormalized).
func TestForwardConstant(t *testing.T) {
	for _, tr := range backends() {
		x, _ := matrix.ComplexFromBuiltin([][]complex128{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
		fx, err := tr.Forward(x)
		require.NoError(t, err)

		want, _ := matrix.NewComplexDense(3, 3)
		_ = want.Set(0, 0, matrix.NewComplex(9, 0))
		ok, _ := matrix.ComplexAllClose(want, fx, tol)
		assert.True(t, ok, "%s: got %v", tr.Name(), fx.ToBuiltin())
	}
}

// Sign convention: x = [0, 1] along a row gives X = [1, -1]; x = [0,1,0,0]
// gives X[k] = exp(-2πik/4) = [1, -i, -1, i].
func TestForwardSignConvention(t *testing.T) {
	for _, tr := range backends() {
		x, _ := matrix.ComplexFromBuiltin([][]complex128{{0, 1, 0, 0}})
		fx, err := tr.Forward(x)
		require.NoError(t, err)

		want, _ := matrix.ComplexFromBuiltin([][]complex128{{1, -1i, -1, 1i}})
		ok, _ := matrix.ComplexAllClose(want, fx, tol)
		assert.True(t, ok, "%s: got %v", tr.Name(), fx.ToBuiltin())
	}
}

func TestBackendsAgree(t *testing.T) {
	for _, n := range []int{6, 8, 9, 16} {
		x := randomComplex(t, n, n, int64(n))
		ref, err := spectral.Direct{}.Forward(x)
		require.NoError(t, err)
		for _, tr := range backends()[1:] {
			got, err := tr.Forward(x)
			require.NoError(t, err)
			ok, _ := matrix.ComplexAllClose(ref, got, 1e-8)
			assert.True(t, ok, "%s disagrees with direct at n=%d", tr.Name(), n)
		}
	}
}

func TestForwardDoesNotMutateInput(t *testing.T) {
	for _, tr := range backends() {
		x := randomComplex(t, 4, 4, 7)
		before := x.Clone()
		_, err := tr.Forward(x)
		require.NoError(t, err)
		ok, _ := matrix.ComplexAllClose(before, x, 0)
		assert.True(t, ok, tr.Name())
	}
}

func TestInvalidInput(t *testing.T) {
	for _, tr := range backends() {
		_, err := tr.Forward(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, tr.Name())
		_, err = tr.Inverse(&matrix.ComplexDense{})
		require.ErrorIs(t, err, matrix.ErrBadShape, tr.Name())
	}
}

func TestByName(t *testing.T) {
	for _, name := range spectral.Names() {
		tr, err := spectral.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, tr.Name())
	}

	tr, err := spectral.ByName("  GONUM ")
	require.NoError(t, err)
	assert.Equal(t, spectral.NameGonum, tr.Name())

	_, err = spectral.ByName("fftw")
	require.ErrorIs(t, err, spectral.ErrUnknownTransform)

	assert.Equal(t, spectral.NameGonum, spectral.Default().Name())
}
