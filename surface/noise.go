// SPDX-License-Identifier: MIT

package surface

import (
	"math/rand"

	"github.com/katalvlaran/roughsurf/matrix"
)

// NoiseField draws an n×n field of h·z, z ~ N(0,1), in row-major order.
//
// Errors: ErrNeedRandSource for a nil rng; ErrInvalidParameter for n < 2.
func NoiseField(n int, h float64, rng *rand.Rand) (*matrix.Dense, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	if n < MinN {
		return nil, invalidf("NoiseField: n=%d must be >= %d", n, MinN)
	}
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if err = w.Apply(func(_, _ int, _ float64) float64 { return h * rng.NormFloat64() }); err != nil {
		return nil, err
	}

	return w, nil
}
