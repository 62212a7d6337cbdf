// SPDX-License-Identifier: MIT

package surface

import (
	"errors"

	"github.com/katalvlaran/roughsurf/spectral"
)

// ErrInvalidParameter indicates a parameter outside its domain
// (N < 2, rL ≤ 0, clx ≤ 0, cly ≤ 0 for anisotropic, non-finite values).
var ErrInvalidParameter = errors.New("surface: invalid parameter")

// ErrNeedRandSource indicates that a random source is required but nil.
var ErrNeedRandSource = errors.New("surface: rng is required")

// ErrNumericalInstability is spectral.ErrNumericalInstability, re-exported so
// callers of this package can match it without importing spectral.
var ErrNumericalInstability = spectral.ErrNumericalInstability
