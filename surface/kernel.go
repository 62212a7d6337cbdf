// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"github.com/katalvlaran/roughsurf/matrix"
)

// CorrelationKernel evaluates the exponential filter on the coordinate grid:
//
//	isotropic:   F = exp(-(X+Y)/(clx/2))
//	anisotropic: F = exp(-(X/(clx/2) + Y/(cly/2)))
//
// Every entry lies in (0, 1] for the nonnegative grids MeshGrid returns.
//
// Errors: ErrInvalidParameter for clx ≤ 0 (or cly ≤ 0 when anisotropic);
// matrix errors for nil or mismatched X, Y.
func CorrelationKernel(X, Y *matrix.Dense, clx, cly float64, anisotropic bool) (*matrix.Dense, error) {
	if !(clx > 0) || math.IsInf(clx, 0) {
		return nil, invalidf("CorrelationKernel: clx=%v must be finite and > 0", clx)
	}
	if anisotropic && (!(cly > 0) || math.IsInf(cly, 0)) {
		return nil, invalidf("CorrelationKernel: cly=%v must be finite and > 0", cly)
	}
	if err := matrix.ValidateBinarySameShape(X, Y); err != nil {
		return nil, err
	}

	hx := clx / 2
	hy := hx
	if anisotropic {
		hy = cly / 2
	}

	F := X.Clone().(*matrix.Dense)
	err := F.Apply(func(i, j int, x float64) float64 {
		y, _ := Y.At(i, j) // same shape as F
		if anisotropic {
			return math.Exp(-(x/hx + y/hy))
		}
		return math.Exp(-(x + y) / hx)
	})
	if err != nil {
		return nil, err
	}

	return F, nil
}
