// SPDX-License-Identifier: MIT
// Package matrix provides element-wise operations on any Matrix implementation:
// scalar scaling and tolerance comparison. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - *Dense inputs take a flat-slice fast path; other Matrix values go through At/Set.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opScale    = "Scale"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale returns alpha*m as a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: flat loop for *Dense; At/Set fallback otherwise.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//   - ErrNaNInf when alpha*m[i,j] overflows and the result policy is on.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}
		if res.validateNaNInf {
			for idx, v := range res.data {
				if isNonFinite(v) {
					return nil, matrixErrorf(opScale, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf))
				}
			}
		}
		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}
