// SPDX-License-Identifier: MIT

package spectral

import (
	"github.com/mjibson/go-dsp/fft"

	"github.com/katalvlaran/roughsurf/matrix"
)

// DSP delegates to go-dsp's FFT2/IFFT2 (mixed radix with Bluestein for
// arbitrary lengths). IFFT2 already applies 1/(rows·cols).
type DSP struct{}

// Name implements Transform.
func (DSP) Name() string { return NameDSP }

// Forward implements Transform.
func (DSP) Forward(x *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := validateInput(opForward, x); err != nil {
		return nil, err
	}

	return matrix.ComplexFromBuiltin(fft.FFT2(x.ToBuiltin()))
}

// Inverse implements Transform.
func (DSP) Inverse(x *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := validateInput(opInverse, x); err != nil {
		return nil, err
	}

	return matrix.ComplexFromBuiltin(fft.IFFT2(x.ToBuiltin()))
}
