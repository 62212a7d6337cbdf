// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"github.com/katalvlaran/roughsurf/matrix"
)

// NormalizationFactor returns 2·rL/N/clx, or 2·rL/N/√(clx·cly) when
// p.Anisotropic.
func NormalizationFactor(p Parameters) float64 {
	base := 2 * p.RL / float64(p.N)
	if p.Anisotropic {
		return base / math.Sqrt(p.CLX*p.CLY)
	}

	return base / p.CLX
}

// Normalize returns a new matrix R·NormalizationFactor(p).
// Errors: ErrInvalidParameter for invalid p; matrix errors for a nil R.
func Normalize(R *matrix.Dense, p Parameters) (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return matrix.Scale(R, NormalizationFactor(p))
}
