// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/roughsurf/matrix"
)

// MeshGrid returns the absolute-distance coordinate matrices of an n×n grid
// spanning [-rL/2, rL/2] on both axes: X[i][j] = |L[j]|, Y[i][j] = |L[i]|.
//
// Errors: ErrInvalidParameter when n < 2 or rL is not finite and positive.
// Complexity: Time O(n²), Space O(n²).
func MeshGrid(n int, rL float64) (X, Y *matrix.Dense, err error) {
	if n < MinN {
		return nil, nil, invalidf("MeshGrid: n=%d must be >= %d", n, MinN)
	}
	if !(rL > 0) || math.IsInf(rL, 0) {
		return nil, nil, invalidf("MeshGrid: rL=%v must be finite and > 0", rL)
	}

	L := floats.Span(make([]float64, n), -rL/2, rL/2)
	for k := range L {
		L[k] = math.Abs(L[k])
	}

	if X, err = matrix.NewDense(n, n); err != nil {
		return nil, nil, err
	}
	if Y, err = matrix.NewDense(n, n); err != nil {
		return nil, nil, err
	}
	col := make([]float64, n)
	for i := 0; i < n; i++ {
		if err = X.FillRow(i, L); err != nil {
			return nil, nil, err
		}
		for j := range col {
			col[j] = L[i]
		}
		if err = Y.FillRow(i, col); err != nil {
			return nil, nil, err
		}
	}

	return X, Y, nil
}
