// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/roughsurf/matrix"
)

// Backend names accepted by ByName.
const (
	NameDirect = "direct"
	NameRadix2 = "radix2"
	NameGonum  = "gonum"
	NameDSP    = "dsp"
)

// Operation tags for error wrapping.
const (
	opForward  = "Forward"
	opInverse  = "Inverse"
	opByName   = "ByName"
	opConvolve = "Convolve"
)

// Transform is a 2D discrete Fourier transform over complex matrices.
// Implementations never mutate their input and return a fresh matrix.
type Transform interface {
	// Name returns the backend identifier (see ByName).
	Name() string

	// Forward returns the unnormalized forward transform of x.
	Forward(x *matrix.ComplexDense) (*matrix.ComplexDense, error)

	// Inverse returns the inverse transform of x, scaled by 1/(rows·cols).
	Inverse(x *matrix.ComplexDense) (*matrix.ComplexDense, error)
}

// Compile-time conformance.
var (
	_ Transform = Direct{}
	_ Transform = Radix2{}
	_ Transform = Gonum{}
	_ Transform = DSP{}
)

// Default returns the backend used when none is configured (Gonum).
func Default() Transform { return Gonum{} }

// Names lists every backend name in a stable order.
func Names() []string {
	return []string{NameDirect, NameRadix2, NameGonum, NameDSP}
}

// ByName resolves a backend by its (case-insensitive) name.
// Errors: ErrUnknownTransform.
func ByName(name string) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameDirect:
		return Direct{}, nil
	case NameRadix2:
		return Radix2{}, nil
	case NameGonum:
		return Gonum{}, nil
	case NameDSP:
		return DSP{}, nil
	default:
		return nil, fmt.Errorf("%s(%q): %w", opByName, name, ErrUnknownTransform)
	}
}

// validateInput rejects nil and zero-value (empty) matrices.
func validateInput(op string, x *matrix.ComplexDense) error {
	if x == nil {
		return fmt.Errorf("%s: %w", op, matrix.ErrNilMatrix)
	}
	if x.Rows() == 0 || x.Cols() == 0 {
		return fmt.Errorf("%s: %w", op, matrix.ErrBadShape)
	}

	return nil
}

// lineFunc transforms one row or column in place.
type lineFunc func(buf []matrix.Complex)

// separable applies rowFn to every row and then colFn to every column of a
// copy of x. Row and column lengths are fixed by x's shape.
func separable(x *matrix.ComplexDense, rowFn, colFn lineFunc) *matrix.ComplexDense {
	out := x.Clone()
	r, c := out.Shape()

	buf := make([]matrix.Complex, c)
	for i := 0; i < r; i++ {
		buf, _ = out.Row(i, buf) // i in range
		rowFn(buf)
		_ = out.SetRow(i, buf)
	}

	col := make([]matrix.Complex, r)
	for j := 0; j < c; j++ {
		col, _ = out.Col(j, col) // j in range
		colFn(col)
		_ = out.SetCol(j, col)
	}

	return out
}

// inverseScale applies the 1/(rows·cols) normalization of the inverse.
func inverseScale(x *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	r, c := x.Shape()
	return x.Scale(1 / float64(r*c))
}

// direction is the sign of the exponent: -1 forward, +1 inverse.
type direction float64

const (
	forward direction = -1
	inverse direction = +1
)

// twiddles returns exp(sign·2πi·k/n) for k in [0, n).
func twiddles(n int, dir direction) []matrix.Complex {
	tw := make([]matrix.Complex, n)
	for k := 0; k < n; k++ {
		tw[k] = matrix.Expi(float64(dir) * 2 * math.Pi * float64(k) / float64(n))
	}

	return tw
}
