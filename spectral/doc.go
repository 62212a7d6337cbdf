// SPDX-License-Identifier: MIT

// Package spectral implements the 2D discrete Fourier transform and the
// frequency-domain convolution used to filter white noise into a correlated
// height field.
//
// Transform convention (every backend):
//
//	forward  X[k,l] = Σ_m Σ_n x[m,n] · exp(-2πi(km/N + ln/M))      (unnormalized)
//	inverse  x[m,n] = 1/(N·M) · Σ_k Σ_l X[k,l] · exp(+2πi(km/N + ln/M))
//
// so that Inverse(Forward(x)) == x within floating-point tolerance.
//
// Backends:
//   - Direct: row-column summation with a precomputed twiddle table, O(N·M·(N+M)).
//   - Radix2: iterative Cooley–Tukey per axis for power-of-two lengths; other
//     lengths fall back to the direct kernel for that axis.
//   - Gonum: gonum.org/v1/gonum/dsp/fourier.CmplxFFT per row and column.
//   - DSP:   github.com/mjibson/go-dsp/fft.FFT2 / IFFT2.
//
// Convolver multiplies the forward transforms of a kernel and a noise field,
// inverts the product and rejects results whose imaginary residual is not
// negligible (ErrNumericalInstability).
//
// All transforms are stateless values and safe for concurrent use.
package spectral
