// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roughsurf/matrix"
)

// DefaultTolerance is the absolute bound on |Im| accepted after the inverse
// transform of a product of two real-input spectra.
const DefaultTolerance = 1e-9

// Convolver performs circular 2D convolution through the convolution theorem:
// R = Re(Inverse(Forward(kernel) ⊙ Forward(noise))).
// A Convolver is immutable after construction and safe for concurrent use
// when its Transform is.
type Convolver struct {
	t   Transform
	tol float64
}

// ConvolverOption configures a Convolver.
type ConvolverOption func(*Convolver)

// WithTolerance sets the residual bound (must be finite and > 0).
// Panics on invalid input.
func WithTolerance(tol float64) ConvolverOption {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("spectral: WithTolerance(%v): tolerance must be finite and > 0", tol))
	}

	return func(c *Convolver) { c.tol = tol }
}

// NewConvolver returns a Convolver over t. A nil t selects Default().
func NewConvolver(t Transform, opts ...ConvolverOption) *Convolver {
	if t == nil {
		t = Default()
	}
	c := &Convolver{t: t, tol: DefaultTolerance}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Transform returns the backend in use.
func (c *Convolver) Transform() Transform { return c.t }

// Tolerance returns the residual bound in use.
func (c *Convolver) Tolerance() float64 { return c.tol }

// Convolve returns the real circular convolution of kernel and noise.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square or unequal shapes).
//   - ErrNumericalInstability when some |Im| ≥ Tolerance().
//   - Any error of the backend.
func (c *Convolver) Convolve(kernel, noise *matrix.Dense) (*matrix.Dense, error) {
	r, _, err := c.ConvolveWithResidual(kernel, noise)
	return r, err
}

// ConvolveWithResidual is Convolve that also reports the largest |Im|
// observed before the real part was taken. On ErrNumericalInstability the
// residual is still returned together with a nil matrix.
func (c *Convolver) ConvolveWithResidual(kernel, noise *matrix.Dense) (*matrix.Dense, float64, error) {
	if err := matrix.ValidateSquareNonNil(kernel); err != nil {
		return nil, 0, fmt.Errorf("%s: kernel: %w", opConvolve, err)
	}
	if err := matrix.ValidateBinarySameShape(kernel, noise); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opConvolve, err)
	}

	fk, err := c.spectrum(kernel)
	if err != nil {
		return nil, 0, err
	}
	fw, err := c.spectrum(noise)
	if err != nil {
		return nil, 0, err
	}
	prod, err := matrix.ComplexHadamard(fk, fw)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opConvolve, err)
	}
	back, err := c.t.Inverse(prod)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %s: %w", opConvolve, c.t.Name(), err)
	}

	residual, row, col := back.MaxAbsImag()
	if !(residual < c.tol) {
		return nil, residual, fmt.Errorf("%s: %s: cell (%d,%d) |Im|=%.3e, tolerance %.1e: %w",
			opConvolve, c.t.Name(), row, col, residual, c.tol, ErrNumericalInstability)
	}
	out, err := back.RealPart()
	if err != nil {
		return nil, residual, fmt.Errorf("%s: %w", opConvolve, err)
	}

	return out, residual, nil
}

// spectrum lifts a real matrix and runs the forward transform.
func (c *Convolver) spectrum(m *matrix.Dense) (*matrix.ComplexDense, error) {
	z, err := matrix.LiftReal(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opConvolve, err)
	}
	f, err := c.t.Forward(z)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", opConvolve, c.t.Name(), err)
	}

	return f, nil
}
