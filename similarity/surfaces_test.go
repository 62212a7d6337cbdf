// SPDX-License-Identifier: MIT

package similarity_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roughsurf/matrix"
	"github.com/katalvlaran/roughsurf/similarity"
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

func TestSurfaces(t *testing.T) {
	a := field(t, [][]float64{{0, 1}, {2, 3}})
	b := field(t, [][]float64{{0, 1}, {2, 5}})

	d, err := similarity.Surfaces(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	// Row 0 matches; row 1 = DTW([2,3],[2,5]) = 2. Mean = 1.
	d, err = similarity.Surfaces(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	c := field(t, [][]float64{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}})
	_, err = similarity.Surfaces(a, c, nil)
	require.ErrorIs(t, err, similarity.ErrSizeMismatch)
	_, err = similarity.Surfaces(a, nil, nil)
	require.ErrorIs(t, err, similarity.ErrEmptySequence)
}

func TestStrings(t *testing.T) {
	d, err := similarity.Strings("ABC", "ABBC", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	d, err = similarity.Strings("A", "z", nil)
	require.NoError(t, err)
	assert.Equal(t, 51.0, d)

	_, err = similarity.Strings("A#", "A", nil)
	require.ErrorIs(t, err, similarity.ErrBadInput)
	_, err = similarity.Strings("", "A", nil)
	require.ErrorIs(t, err, similarity.ErrEmptySequence)

	d, err = similarity.EncodedSurfaces([]string{"AB", "CD"}, []string{"AB", "CE"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, d)

	_, err = similarity.EncodedSurfaces([]string{"AB"}, []string{"AB", "CD"}, nil)
	require.ErrorIs(t, err, similarity.ErrSizeMismatch)
}

func TestPairwise(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var fields []*surface.HeightField
	for k := 0; k < 3; k++ {
		f, err := surface.Generate(surface.Isotropic(8, 4, 1, 1), rng)
		require.NoError(t, err)
		fields = append(fields, f)
	}

	m, err := similarity.Pairwise(fields, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v, _ := m.At(i, i)
		assert.Equal(t, 0.0, v)
		for j := 0; j < 3; j++ {
			a, _ := m.At(i, j)
			b, _ := m.At(j, i)
			assert.Equal(t, a, b)
			if i != j {
				assert.Greater(t, a, 0.0)
			}
		}
	}

	_, err = similarity.Pairwise(nil, nil)
	require.ErrorIs(t, err, similarity.ErrEmptySequence)
}
