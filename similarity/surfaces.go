// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"

	"github.com/katalvlaran/roughsurf/encode"
	"github.com/katalvlaran/roughsurf/matrix"
	"github.com/katalvlaran/roughsurf/surface"
)

// Surfaces returns the mean DTW distance between corresponding rows of a and b.
// Errors: ErrEmptySequence for nil fields, ErrSizeMismatch when N differs,
// and any DTW option error.
func Surfaces(a, b *surface.HeightField, opts *Options) (float64, error) {
	if a == nil || b == nil || a.Data == nil || b.Data == nil {
		return 0, ErrEmptySequence
	}
	if a.N() != b.N() {
		return 0, fmt.Errorf("N=%d vs N=%d: %w", a.N(), b.N(), ErrSizeMismatch)
	}

	return meanRows(a.Rows(), b.Rows(), opts)
}

// Strings returns the DTW distance between two encoded rows, comparing
// bucket indices (A=0 … z=51).
// Errors: ErrEmptySequence, ErrBadInput for symbols outside encode.Alphabet.
func Strings(a, b string, opts *Options) (float64, error) {
	sa, err := symbols(a)
	if err != nil {
		return 0, err
	}
	sb, err := symbols(b)
	if err != nil {
		return 0, err
	}
	d, _, err := DTW(sa, sb, opts)

	return d, err
}

// EncodedSurfaces returns the mean Strings distance over corresponding rows.
// Errors: ErrEmptySequence, ErrSizeMismatch when the row counts differ.
func EncodedSurfaces(a, b []string, opts *Options) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptySequence
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%d rows vs %d rows: %w", len(a), len(b), ErrSizeMismatch)
	}
	var sum float64
	for i := range a {
		d, err := Strings(a[i], b[i], opts)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i, err)
		}
		sum += d
	}

	return sum / float64(len(a)), nil
}

// Pairwise returns the symmetric matrix of Surfaces distances (zero diagonal).
// Errors: ErrEmptySequence for an empty set, and any Surfaces error.
func Pairwise(fields []*surface.HeightField, opts *Options) (*matrix.Dense, error) {
	k := len(fields)
	if k == 0 {
		return nil, ErrEmptySequence
	}
	out, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d, err := Surfaces(fields[i], fields[j], opts)
			if err != nil {
				return nil, fmt.Errorf("pair (%d,%d): %w", i, j, err)
			}
			if err = out.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = out.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func meanRows(ra, rb [][]float64, opts *Options) (float64, error) {
	var sum float64
	for i := range ra {
		d, _, err := DTW(ra[i], rb[i], opts)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i, err)
		}
		sum += d
	}

	return sum / float64(len(ra)), nil
}

func symbols(s string) ([]float64, error) {
	if s == "" {
		return nil, ErrEmptySequence
	}
	out := make([]float64, 0, len(s))
	for _, r := range s {
		k, ok := encode.SymbolIndex(r)
		if !ok {
			return nil, fmt.Errorf("symbol %q: %w", r, ErrBadInput)
		}
		out = append(out, float64(k))
	}

	return out, nil
}
