// SPDX-License-Identifier: MIT

// Package roughsurf synthesizes random rough surfaces with a Gaussian
// height distribution and Gaussian autocorrelation.
//
// A surface is an N×N grid of heights over a square of side rL. Gaussian
// white noise of standard deviation h is convolved with a Gaussian
// correlation kernel (isotropic clx, or anisotropic clx/cly) through the
// convolution theorem, then rescaled so the surface RMS tracks h.
//
// Packages:
//
//	matrix/     — Dense and ComplexDense containers, validators, element-wise kernels
//	spectral/   — 2D DFT backends (direct, radix-2, gonum, go-dsp) and the residual-checked convolver
//	surface/    — parameters, mesh, noise, kernel, normalization and the Synthesizer
//	batch/      — CSV parameter ingestion and a seeded worker pool
//	codec/      — token and human-readable surface serialization
//	encode/     — bucket quantization of heights into an A–Za–z alphabet
//	similarity/ — dynamic time warping over surfaces and encoded rows
//	render/     — PNG heat maps and isometric meshes (gogpu/gg)
//	stream/     — WebSocket synthesis service (gorilla/websocket)
//	config/     — JSON settings
//	cmd/roughsurf — command-line front end
//
// Quick start:
//
//	p := surface.Isotropic(128, 10, 1, 2)
//	f, err := surface.Generate(p, rand.New(rand.NewSource(1)))
//	if err != nil {
//		// surface.ErrInvalidParameter or surface.ErrNumericalInstability
//	}
//	_ = codec.WriteToken(os.Stdout, f)
package roughsurf
