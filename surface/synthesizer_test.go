// SPDX-License-Identifier: MIT

package surface_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roughsurf/matrix"
	"github.com/katalvlaran/roughsurf/spectral"
	"github.com/katalvlaran/roughsurf/surface"
)

// brokenTransform leaks an imaginary residual on every inverse cell.
type brokenTransform struct{ spectral.Transform }

func (b brokenTransform) Inverse(x *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	out, err := b.Transform.Inverse(x)
	if err != nil {
		return nil, err
	}
	r, c := out.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			z, _ := out.At(i, j)
			_ = out.Set(i, j, matrix.NewComplex(z.Re, z.Im+1e-3))
		}
	}

	return out, nil
}

func TestGenerateShape(t *testing.T) {
	for _, p := range []surface.Parameters{
		surface.Isotropic(2, 1, 1, 1),
		surface.Isotropic(7, 10, 0.5, 2),
		surface.Anisotropic(16, 10, 1, 2, 3),
	} {
		f, err := surface.Generate(p, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, p.N, f.N())
		assert.Len(t, f.Rows(), p.N)
		assert.Equal(t, p, f.Params)
		for _, row := range f.Rows() {
			assert.Len(t, row, p.N)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := surface.Anisotropic(16, 8, 1, 2, 1)
	s := surface.NewSynthesizer()

	a, err := s.Generate(p, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := s.Generate(p, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.Data.Values(), b.Data.Values())

	c, err := s.Generate(p, rand.New(rand.NewSource(43)))
	require.NoError(t, err)
	assert.NotEqual(t, a.Data.Values(), c.Data.Values())

	// WithSeed supplies the source when the call passes nil.
	d, err := surface.NewSynthesizer(surface.WithSeed(42)).Generate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Data.Values(), d.Data.Values())
}

func TestGenerateBackendsAgree(t *testing.T) {
	p := surface.Isotropic(12, 12, 1, 3)
	ref, err := surface.NewSynthesizer(surface.WithTransform(spectral.Direct{})).Generate(p, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	for _, tr := range []spectral.Transform{spectral.Radix2{}, spectral.Gonum{}, spectral.DSP{}} {
		s := surface.NewSynthesizer(surface.WithTransform(tr))
		assert.Equal(t, tr.Name(), s.Transform().Name())
		got, err := s.Generate(p, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		ok, err := matrix.AllClose(ref.Data, got.Data, 0, 1e-9)
		require.NoError(t, err)
		assert.True(t, ok, tr.Name())
	}
}

// TestGenerateGolden checks N=4, rL=4, H=1, clx=1 against a direct circular
// convolution computed from hand-derived grid coordinates.
func TestGenerateGolden(t *testing.T) {
	const n = 4
	p := surface.Isotropic(n, 4, 1, 1)

	got, err := surface.Generate(p, rand.New(rand.NewSource(2024)))
	require.NoError(t, err)

	// Span(-2, 2) over 4 points: -2, -2/3, 2/3, 2.
	L := []float64{2, 2.0 / 3, 2.0 / 3, 2}
	var K, W [n][n]float64
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			K[i][j] = math.Exp(-(L[j] + L[i]) / 0.5)
			W[i][j] = rng.NormFloat64()
		}
	}
	factor := 2.0 * 4 / n / 1
	for m := 0; m < n; m++ {
		for c := 0; c < n; c++ {
			var s float64
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					s += K[a][b] * W[(m-a+n)%n][(c-b+n)%n]
				}
			}
			v, _ := got.Data.At(m, c)
			assert.InDelta(t, factor*s, v, 1e-9, "cell (%d,%d)", m, c)
		}
	}
}

// TestGenerateRMSConvergence checks RMS ≈ H·(N-1)/N when dx ≪ cl ≪ rL.
func TestGenerateRMSConvergence(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	const (
		n      = 64
		rL     = 64.0
		h      = 1.5
		trials = 50
	)
	want := h * float64(n-1) / float64(n)

	for _, p := range []surface.Parameters{
		surface.Isotropic(n, rL, h, 16),
		surface.Anisotropic(n, rL, h, 16, 8),
	} {
		s := surface.NewSynthesizer(surface.WithSeed(7))
		var sum float64
		for k := 0; k < trials; k++ {
			f, err := s.Generate(p, nil)
			require.NoError(t, err)
			sum += f.Stats().RMS
		}
		mean := sum / trials
		assert.InEpsilon(t, want, mean, 0.10, "%s: mean RMS %.4f, want ≈ %.4f", p, mean, want)
	}
}

func TestGenerateInvalid(t *testing.T) {
	_, err := surface.Generate(surface.Isotropic(1, 1, 1, 1), nil)
	require.ErrorIs(t, err, surface.ErrInvalidParameter)

	_, err = surface.Generate(surface.Anisotropic(4, 1, 1, 1, 0), nil)
	require.ErrorIs(t, err, surface.ErrInvalidParameter)
}

func TestGenerateNumericalInstability(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := surface.NewSynthesizer(
		surface.WithTransform(brokenTransform{spectral.Direct{}}),
		surface.WithLogger(logger),
	)
	_, err := s.Generate(surface.Isotropic(4, 4, 1, 1), rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, surface.ErrNumericalInstability)
	require.ErrorIs(t, err, spectral.ErrNumericalInstability)
	assert.Contains(t, buf.String(), "convolution rejected")

	// Raising the tolerance accepts the leak.
	s = surface.NewSynthesizer(
		surface.WithTransform(brokenTransform{spectral.Direct{}}),
		surface.WithTolerance(1e-2),
		surface.WithLogger(logger),
	)
	assert.Equal(t, 1e-2, s.Tolerance())
	_, err = s.Generate(surface.Isotropic(4, 4, 1, 1), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "surface ready")
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { surface.WithTransform(nil) })
	assert.Panics(t, func() { surface.WithTolerance(0) })
	assert.Panics(t, func() { surface.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { surface.WithLogger(nil) })
	assert.Panics(t, func() { surface.WithRand(nil) })
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	surface.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer surface.SetLogger(nil)

	_, err := surface.NewSynthesizer().Generate(surface.Isotropic(4, 4, 1, 1), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "transform=gonum")

	surface.SetLogger(nil)
	assert.False(t, surface.Logger().Enabled(context.Background(), slog.LevelError))
}

func TestPackageGenerateFollowsSetLogger(t *testing.T) {
	// The default synthesizer exists before any SetLogger call.
	_, err := surface.Generate(surface.Isotropic(4, 4, 1, 1), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	var buf bytes.Buffer
	surface.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer surface.SetLogger(nil)

	_, err = surface.Generate(surface.Isotropic(4, 4, 1, 1), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "surface ready")
}

func TestWithLoggerOverridesPackageLogger(t *testing.T) {
	var pkg, own bytes.Buffer
	surface.SetLogger(slog.New(slog.NewTextHandler(&pkg, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer surface.SetLogger(nil)

	s := surface.NewSynthesizer(surface.WithLogger(slog.New(slog.NewTextHandler(&own, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	_, err := s.Generate(surface.Isotropic(4, 4, 1, 1), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Contains(t, own.String(), "surface ready")
	assert.Empty(t, pkg.String())
}

func TestHeightFieldStats(t *testing.T) {
	data, _ := matrix.NewDenseFrom([][]float64{{1, -1}, {3, -3}})
	f, err := surface.NewHeightField(surface.Isotropic(2, 1, 1, 1), data)
	require.NoError(t, err)

	st := f.Stats()
	assert.InDelta(t, 0, st.Mean, 1e-15)
	assert.InDelta(t, math.Sqrt(5), st.RMS, 1e-15)
	assert.InDelta(t, math.Sqrt(5), st.StdDev, 1e-15)
	assert.Equal(t, -3.0, st.Min)
	assert.Equal(t, 3.0, st.Max)

	row, err := f.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -3}, row)

	_, err = surface.NewHeightField(surface.Isotropic(3, 1, 1, 1), data)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	assert.Equal(t, surface.Stats{}, surface.Summarize(nil))
}
