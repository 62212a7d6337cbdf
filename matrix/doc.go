// SPDX-License-Identifier: MIT

// Package matrix holds the dense containers used by the surface pipeline.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy. Coordinate grids, noise fields,
//     correlation kernels and height fields are all Dense.
//   - Complex: a small complex value type (Add, Sub, Mul, Conj, Scale, Abs).
//   - ComplexDense: a row-major matrix of Complex, the representation handed
//     to and from the spectral transforms.
//   - Element-wise kernels (Scale, AllClose) and centralized
//     validators returning package sentinels.
//
// Every constructor validates its shape up front; no public method panics on
// user input. Loops run in fixed row-major order so results are reproducible
// bit for bit across runs.
package matrix
