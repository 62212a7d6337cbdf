// SPDX-License-Identifier: MIT

package encode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/roughsurf/surface"
)

var (
	// ErrBadSpaces indicates a bucket count outside [1, MaxSpaces].
	ErrBadSpaces = errors.New("encode: bad number of spaces")

	// ErrEmptySurface indicates a nil field or a field without heights.
	ErrEmptySurface = errors.New("encode: empty surface")

	// ErrUnknownMethod indicates an unrecognized method name.
	ErrUnknownMethod = errors.New("encode: unknown method")
)

// Alphabet lists the bucket symbols in bucket order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// MaxSpaces is the largest supported bucket count.
const MaxSpaces = len(Alphabet)

// Simple range bounds (nanometres).
const (
	SimpleLow  = -100.0
	SimpleHigh = 100.0
)

// Method selects how the bucket range is chosen.
type Method int

const (
	Simple Method = iota + 1
	MinMax
	MinMaxRMS
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Simple:
		return "simple"
	case MinMax:
		return "minmax"
	case MinMaxRMS:
		return "minmaxrms"
	default:
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMethod accepts a method name or its legacy numeric code
// ("1" simple, "4" minmax, "6" minmaxrms).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "1":
		return Simple, nil
	case "minmax", "4":
		return MinMax, nil
	case "minmaxrms", "6":
		return MinMaxRMS, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// SymbolIndex returns the bucket of symbol r, or false if r is not in Alphabet.
func SymbolIndex(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 26, true
	default:
		return 0, false
	}
}

// Encoder quantizes heights into symbols. It is immutable and safe for
// concurrent use.
type Encoder struct {
	spaces int
	factor float64 // 10^scale
	method Method
}

// NewEncoder validates its arguments and returns an Encoder.
// Errors: ErrBadSpaces, ErrUnknownMethod.
func NewEncoder(spaces, scale int, method Method) (*Encoder, error) {
	if spaces < 1 || spaces > MaxSpaces {
		return nil, fmt.Errorf("spaces=%d (want 1..%d): %w", spaces, MaxSpaces, ErrBadSpaces)
	}
	switch method {
	case Simple, MinMax, MinMaxRMS:
	default:
		return nil, fmt.Errorf("%v: %w", method, ErrUnknownMethod)
	}

	return &Encoder{spaces: spaces, factor: math.Pow(10, float64(scale)), method: method}, nil
}

// Spaces returns the bucket count.
func (e *Encoder) Spaces() int { return e.spaces }

// Bucket maps v into [0, spaces-1] over [lo, hi]. A degenerate range maps
// everything to bucket 0.
func (e *Encoder) Bucket(v, lo, hi float64) int {
	if !(hi > lo) {
		return 0
	}
	b := int(math.Floor((v - lo) / (hi - lo) * float64(e.spaces)))
	if b < 0 {
		return 0
	}
	if b >= e.spaces {
		return e.spaces - 1
	}

	return b
}

// Encode returns one symbol string per row of f.
// Errors: ErrEmptySurface.
func (e *Encoder) Encode(f *surface.HeightField) ([]string, error) {
	if f == nil || f.Data == nil {
		return nil, ErrEmptySurface
	}
	rows := f.Rows()
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptySurface
	}

	flat := make([]float64, 0, n*n)
	for _, row := range rows {
		floats.Scale(e.factor, row)
		flat = append(flat, row...)
	}

	lo, hi := SimpleLow, SimpleHigh
	switch e.method {
	case MinMax:
		lo, hi = floats.Min(flat), floats.Max(flat)
	case MinMaxRMS:
		rms := surface.Summarize(flat).RMS
		for _, row := range rows {
			for j, v := range row {
				row[j] = math.Abs(v) - rms
			}
		}
		flat = flat[:0]
		for _, row := range rows {
			flat = append(flat, row...)
		}
		lo, hi = floats.Min(flat), floats.Max(flat)
	}

	out := make([]string, n)
	var sb strings.Builder
	for i, row := range rows {
		sb.Reset()
		sb.Grow(len(row))
		for _, v := range row {
			sb.WriteByte(Alphabet[e.Bucket(v, lo, hi)])
		}
		out[i] = sb.String()
	}

	return out, nil
}

// EncodeAll encodes every field, stopping at the first error.
func (e *Encoder) EncodeAll(fields []*surface.HeightField) ([][]string, error) {
	out := make([][]string, 0, len(fields))
	for k, f := range fields {
		rows, err := e.Encode(f)
		if err != nil {
			return nil, fmt.Errorf("surface %d: %w", k, err)
		}
		out = append(out, rows)
	}

	return out, nil
}

// Write prints each encoded surface as one line per row followed by a blank line.
func Write(w io.Writer, surfaces ...[]string) error {
	bw := bufio.NewWriter(w)
	for _, rows := range surfaces {
		for _, r := range rows {
			bw.WriteString(r)
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
