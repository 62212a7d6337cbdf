// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/roughsurf/matrix"
)

// HeightField is a synthesized surface: its parameters and the N×N heights.
// The caller owns the value once returned.
type HeightField struct {
	Params Parameters
	Data   *matrix.Dense
}

// NewHeightField wraps existing heights (e.g. parsed from a file).
// Errors: ErrInvalidParameter for invalid p; matrix.ErrDimensionMismatch when
// data is not p.N×p.N.
func NewHeightField(p Parameters, data *matrix.Dense) (*HeightField, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquareNonNil(data); err != nil {
		return nil, err
	}
	if data.Rows() != p.N {
		return nil, matrix.ErrDimensionMismatch
	}

	return &HeightField{Params: p, Data: data}, nil
}

// N returns the grid size.
func (f *HeightField) N() int { return f.Data.Rows() }

// Rows returns a row-major copy of the heights.
func (f *HeightField) Rows() [][]float64 { return f.Data.ToRows() }

// Row returns a copy of row i.
func (f *HeightField) Row(i int) ([]float64, error) { return f.Data.Row(i) }

// Stats summarizes a height distribution.
type Stats struct {
	Mean   float64 // arithmetic mean
	RMS    float64 // sqrt(mean(z²))
	StdDev float64 // population standard deviation
	Min    float64
	Max    float64
}

// Stats computes the summary over all N² heights.
func (f *HeightField) Stats() Stats {
	return Summarize(f.Data.Values())
}

// Summarize computes Stats over xs (zero Stats for empty input).
func Summarize(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	mean, std := stat.PopMeanStdDev(xs, nil)

	return Stats{
		Mean:   mean,
		RMS:    math.Sqrt(floats.Dot(xs, xs) / float64(len(xs))),
		StdDev: std,
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
	}
}
