// SPDX-License-Identifier: MIT

// Package surface synthesizes square random rough surfaces with a Gaussian
// height distribution and an exponential autocovariance function.
//
// Pipeline (one Generate call):
//
//	Parameters ─► MeshGrid ─► CorrelationKernel ─┐
//	            └► NoiseField ───────────────────┴► spectral.Convolver ─► Normalize ─► HeightField
//
// Stages:
//   - MeshGrid: N points spaced evenly over [-rL/2, rL/2]; X holds |L[j]| in
//     every row, Y holds |L[i]| in every column.
//   - NoiseField: H·z with z ~ N(0,1), drawn in row-major order from the
//     caller's *rand.Rand.
//   - CorrelationKernel: exp(-(X+Y)/(clx/2)) (isotropic) or
//     exp(-(X/(clx/2) + Y/(cly/2))) (anisotropic).
//   - Convolution by the convolution theorem; any residual |Im| ≥ tolerance
//     fails the call with ErrNumericalInstability.
//   - Normalize: multiply by 2·rL/N/clx (isotropic) or 2·rL/N/√(clx·cly).
//
// For dx = rL/(N-1) ≪ clx ≪ rL the RMS of the result approaches H·(N-1)/N.
//
// Determinism: two Generate calls with equal Parameters and equally seeded
// sources return bit-identical fields when run with the same Transform.
//
// Concurrency: a Synthesizer is immutable and may be shared, but a
// *rand.Rand must not be used by two Generate calls at once.
package surface
