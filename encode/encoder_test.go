// SPDX-License-Identifier: MIT

package encode_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roughsurf/encode"
	"github.com/katalvlaran/roughsurf/matrix"
	"github.com/katalvlaran/roughsurf/surface"
)

func field(t *testing.T, rows [][]float64) *surface.HeightField {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	f, err := surface.NewHeightField(surface.Isotropic(len(rows), 1, 1, 1), d)
	require.NoError(t, err)

	return f
}

func TestNewEncoderValidation(t *testing.T) {
	_, err := encode.NewEncoder(0, 0, encode.Simple)
	require.ErrorIs(t, err, encode.ErrBadSpaces)
	_, err = encode.NewEncoder(53, 0, encode.Simple)
	require.ErrorIs(t, err, encode.ErrBadSpaces)
	_, err = encode.NewEncoder(4, 0, encode.Method(9))
	require.ErrorIs(t, err, encode.ErrUnknownMethod)

	e, err := encode.NewEncoder(52, 0, encode.MinMax)
	require.NoError(t, err)
	assert.Equal(t, 52, e.Spaces())
}

func TestBucketEdges(t *testing.T) {
	e, err := encode.NewEncoder(4, 0, encode.Simple)
	require.NoError(t, err)

	assert.Equal(t, 0, e.Bucket(-100, -100, 100))
	assert.Equal(t, 0, e.Bucket(-50.0001, -100, 100))
	assert.Equal(t, 1, e.Bucket(-50, -100, 100))
	assert.Equal(t, 2, e.Bucket(0, -100, 100))
	assert.Equal(t, 3, e.Bucket(100, -100, 100), "upper bound clamps into last bucket")
	assert.Equal(t, 3, e.Bucket(1e6, -100, 100))
	assert.Equal(t, 0, e.Bucket(-1e6, -100, 100))
	assert.Equal(t, 0, e.Bucket(5, 5, 5), "degenerate range")
}

func TestEncodeSimpleWithScale(t *testing.T) {
	f := field(t, [][]float64{{-9, -1}, {1, 9.9}})

	e, _ := encode.NewEncoder(4, 1, encode.Simple) // ×10 → -90, -10, 10, 99
	rows, err := e.Encode(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", "CD"}, rows)

	// Encoding does not modify the field.
	v, _ := f.Data.At(0, 0)
	assert.Equal(t, -9.0, v)
}

func TestEncodeMinMax(t *testing.T) {
	f := field(t, [][]float64{{0, 1}, {2, 3}})
	e, _ := encode.NewEncoder(2, 0, encode.MinMax)
	rows, err := e.Encode(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "BB"}, rows)

	flat := field(t, [][]float64{{7, 7}, {7, 7}})
	rows, err = e.Encode(flat)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "AA"}, rows)
}

func TestEncodeMinMaxRMS(t *testing.T) {
	// RMS = √5; |z| - √5 = {1-√5, 1-√5, 3-√5, 3-√5}.
	f := field(t, [][]float64{{1, -1}, {3, -3}})
	e, _ := encode.NewEncoder(2, 0, encode.MinMaxRMS)
	rows, err := e.Encode(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "BB"}, rows)
}

func TestEncodeAllAndWrite(t *testing.T) {
	e, _ := encode.NewEncoder(52, 0, encode.Simple)
	a := field(t, [][]float64{{-100, 99.99}, {0, 0}})

	all, err := e.EncodeAll([]*surface.HeightField{a, a})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []string{"Az", "aa"}, all[0])

	_, err = e.EncodeAll([]*surface.HeightField{a, nil})
	require.ErrorIs(t, err, encode.ErrEmptySurface)

	var buf bytes.Buffer
	require.NoError(t, encode.Write(&buf, all...))
	assert.Equal(t, "Az\naa\n\nAz\naa\n\n", buf.String())
}

func TestParseMethodAndSymbols(t *testing.T) {
	for in, want := range map[string]encode.Method{
		"simple": encode.Simple, "1": encode.Simple,
		"MinMax": encode.MinMax, "4": encode.MinMax,
		"minmaxrms": encode.MinMaxRMS, "6": encode.MinMaxRMS,
	} {
		got, err := encode.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := encode.ParseMethod("7")
	require.ErrorIs(t, err, encode.ErrUnknownMethod)

	for i, r := range encode.Alphabet {
		k, ok := encode.SymbolIndex(r)
		require.True(t, ok)
		assert.Equal(t, i, k)
	}
	_, ok := encode.SymbolIndex('#')
	assert.False(t, ok)
}
