// SPDX-License-Identifier: MIT

package spectral

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/roughsurf/matrix"
)

// Gonum runs gonum's complex FFT over every row and then every column.
// CmplxFFT.Sequence is unnormalized, so Inverse applies 1/(rows·cols) itself.
type Gonum struct{}

// Name implements Transform.
func (Gonum) Name() string { return NameGonum }

// Forward implements Transform.
func (Gonum) Forward(x *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := validateInput(opForward, x); err != nil {
		return nil, err
	}
	a := x.ToBuiltin()
	gonumFFT2(a, true)

	return matrix.ComplexFromBuiltin(a)
}

// Inverse implements Transform.
func (Gonum) Inverse(x *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := validateInput(opInverse, x); err != nil {
		return nil, err
	}
	a := x.ToBuiltin()
	gonumFFT2(a, false)
	out, err := matrix.ComplexFromBuiltin(a)
	if err != nil {
		return nil, err
	}

	return inverseScale(out)
}

// gonumFFT2 transforms a in place, rows first.
func gonumFFT2(a [][]complex128, fwd bool) {
	h, w := len(a), len(a[0])
	rowFFT := fourier.NewCmplxFFT(w)
	colFFT := fourier.NewCmplxFFT(h)

	for y := 0; y < h; y++ {
		if fwd {
			rowFFT.Coefficients(a[y], a[y])
		} else {
			rowFFT.Sequence(a[y], a[y])
		}
	}

	col := make([]complex128, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = a[y][x]
		}
		if fwd {
			colFFT.Coefficients(col, col)
		} else {
			colFFT.Sequence(col, col)
		}
		for y := 0; y < h; y++ {
			a[y][x] = col[y]
		}
	}
}
