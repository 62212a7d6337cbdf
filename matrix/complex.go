// SPDX-License-Identifier: MIT

// Package matrix - Complex value type.
//
// Purpose:
//   - Provide the minimal complex arithmetic the spectral pipeline needs
//     (add, subtract, multiply, conjugate, scale, real/imaginary parts).
//   - Pure value semantics: methods never mutate the receiver.
//
// Notes:
//   - FromBuiltin/Builtin bridge to complex128 for library FFT backends.

package matrix

import "math"

// Complex is an immutable complex number Re + i·Im.
type Complex struct {
	Re float64 // real part
	Im float64 // imaginary part
}

// NewComplex builds re + i·im.
func NewComplex(re, im float64) Complex { return Complex{Re: re, Im: im} }

// FromBuiltin converts a complex128.
func FromBuiltin(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

// Builtin converts back to complex128.
func (c Complex) Builtin() complex128 { return complex(c.Re, c.Im) }

// Add returns c + o.
func (c Complex) Add(o Complex) Complex { return Complex{c.Re + o.Re, c.Im + o.Im} }

// Sub returns c − o.
func (c Complex) Sub(o Complex) Complex { return Complex{c.Re - o.Re, c.Im - o.Im} }

// Mul returns c · o.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Scale returns α·c for a real α.
func (c Complex) Scale(alpha float64) Complex { return Complex{c.Re * alpha, c.Im * alpha} }

// Conj returns the complex conjugate Re − i·Im.
func (c Complex) Conj() Complex { return Complex{c.Re, -c.Im} }

// Real returns the real part.
func (c Complex) Real() float64 { return c.Re }

// Imag returns the imaginary part.
func (c Complex) Imag() float64 { return c.Im }

// Abs returns the modulus |c|.
func (c Complex) Abs() float64 { return math.Hypot(c.Re, c.Im) }

// Expi returns e^{iθ} = cos θ + i·sin θ.
func Expi(theta float64) Complex {
	s, co := math.Sincos(theta)
	return Complex{Re: co, Im: s}
}
