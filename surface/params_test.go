// SPDX-License-Identifier: MIT

package surface_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roughsurf/surface"
)

func TestParametersValidate(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name string
		p    surface.Parameters
		ok   bool
	}{
		{"iso ok", surface.Isotropic(4, 4, 1, 1), true},
		{"aniso ok", surface.Anisotropic(4, 4, 1, 1, 2), true},
		{"clx == cly accepted", surface.Anisotropic(8, 4, 1, 1, 1), true},
		{"negative h accepted", surface.Isotropic(4, 4, -1, 1), true},
		{"zero h accepted", surface.Isotropic(4, 4, 0, 1), true},
		{"N=2 boundary", surface.Isotropic(2, 1, 1, 1), true},
		{"N=1", surface.Isotropic(1, 4, 1, 1), false},
		{"N=0", surface.Isotropic(0, 4, 1, 1), false},
		{"rL=0", surface.Isotropic(4, 0, 1, 1), false},
		{"rL<0", surface.Isotropic(4, -1, 1, 1), false},
		{"rL=Inf", surface.Isotropic(4, inf, 1, 1), false},
		{"h=NaN", surface.Isotropic(4, 4, nan, 1), false},
		{"clx=0", surface.Isotropic(4, 4, 1, 0), false},
		{"clx=NaN", surface.Isotropic(4, 4, 1, nan), false},
		{"cly=0 aniso", surface.Anisotropic(4, 4, 1, 1, 0), false},
		{"cly<0 aniso", surface.Anisotropic(4, 4, 1, 1, -2), false},
		{"cly ignored iso", surface.Parameters{N: 4, RL: 4, H: 1, CLX: 1, CLY: -5}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, surface.ErrInvalidParameter)
		})
	}
}

func TestParametersHelpers(t *testing.T) {
	p := surface.Anisotropic(5, 4, 1, 1, 2)
	assert.Equal(t, 1.0, p.Step())
	assert.Equal(t, "N=5 rL=4 h=1 clx=1 cly=2", p.String())
	assert.Equal(t, "N=5 rL=4 h=1 clx=1", surface.Isotropic(5, 4, 1, 1).String())
}

func TestNormalizationFactor(t *testing.T) {
	assert.InDelta(t, 2.0, surface.NormalizationFactor(surface.Isotropic(4, 4, 1, 1)), 1e-15)
	// 2·8/4/√(2·8) = 4/4 = 1
	assert.InDelta(t, 1.0, surface.NormalizationFactor(surface.Anisotropic(4, 8, 1, 2, 8)), 1e-15)
	// clx == cly reduces to the isotropic factor
	assert.InDelta(t,
		surface.NormalizationFactor(surface.Isotropic(16, 10, 1, 3)),
		surface.NormalizationFactor(surface.Anisotropic(16, 10, 1, 3, 3)), 1e-15)
}
