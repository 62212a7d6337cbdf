// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roughsurf/matrix"
	"github.com/katalvlaran/roughsurf/render"
	"github.com/katalvlaran/roughsurf/surface"
)

func sample(t *testing.T, n int) *surface.HeightField {
	t.Helper()
	f, err := surface.Generate(surface.Isotropic(n, 8, 1, 2), rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	return f
}

func TestBuildMesh(t *testing.T) {
	data, err := matrix.NewDenseFrom([][]float64{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})
	require.NoError(t, err)
	f, err := surface.NewHeightField(surface.Isotropic(3, 2, 1, 1), data)
	require.NoError(t, err)

	m, err := render.BuildMesh(f)
	require.NoError(t, err)
	assert.Equal(t, 3, m.N)
	require.Len(t, m.Quads, 4)
	assert.Equal(t, 0.0, m.MinZ)
	assert.Equal(t, 8.0, m.MaxZ)

	q := m.Quads[0]
	assert.Equal(t, render.Vertex{X: -1, Y: -1, Z: 0}, q.Corners[0])
	assert.Equal(t, render.Vertex{X: 0, Y: -1, Z: 1}, q.Corners[1])
	assert.Equal(t, render.Vertex{X: 0, Y: 0, Z: 4}, q.Corners[2])
	assert.Equal(t, render.Vertex{X: -1, Y: 0, Z: 3}, q.Corners[3])
	assert.Equal(t, 2.0, q.MeanZ())

	last := m.Quads[3]
	assert.Equal(t, 1, last.I)
	assert.Equal(t, 1, last.J)
	assert.Equal(t, 6.0, last.MeanZ())
}

func TestBuildMeshEmpty(t *testing.T) {
	_, err := render.BuildMesh(nil)
	assert.ErrorIs(t, err, render.ErrEmptySurface)
}

func TestRainbow(t *testing.T) {
	lo := render.Rainbow(0)
	hi := render.Rainbow(1)
	assert.Greater(t, lo.B, lo.R, "low end is blue")
	assert.Greater(t, hi.R, hi.B, "high end is red")
	assert.Equal(t, render.Rainbow(-3), lo)
	assert.Equal(t, render.Rainbow(7), hi)
}

func TestHeatmapSize(t *testing.T) {
	f := sample(t, 16)

	var buf bytes.Buffer
	require.NoError(t, render.Heatmap(&buf, f, render.WithCellSize(3), render.WithLabel(false)))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestHeatmapWithLabel(t *testing.T) {
	f := sample(t, 8)

	var buf bytes.Buffer
	require.NoError(t, render.Heatmap(&buf, f, render.WithCellSize(10)))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 80+24, img.Bounds().Dy())
}

func TestIsometricSize(t *testing.T) {
	f := sample(t, 12)

	var buf bytes.Buffer
	require.NoError(t, render.Isometric(&buf, f, render.WithSize(320, 200)))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestIsometricFlatSurface(t *testing.T) {
	data, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	f, err := surface.NewHeightField(surface.Isotropic(4, 3, 1, 1), data)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Isometric(&buf, f, render.WithLabel(false)))
	assert.NotZero(t, buf.Len())
}

func TestRenderErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.Heatmap(&buf, nil), render.ErrEmptySurface)
	assert.ErrorIs(t, render.Isometric(&buf, &surface.HeightField{}), render.ErrEmptySurface)
	assert.Panics(t, func() { render.WithCellSize(0) })
	assert.Panics(t, func() { render.WithSize(8, 400) })
}
