// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/roughsurf/matrix"
	"github.com/katalvlaran/roughsurf/surface"
)

// Header keys.
const (
	keyRMS = "rms"
	keyCLX = "clx"
	keyCLY = "cly"
	keyN   = "N"
	keyRL  = "rL"
)

// maxLine bounds a single token line (N=1024 at ~24 bytes per height).
const maxLine = 32 << 20

// ReadOption customizes ReadTokens.
type ReadOption func(*readConfig)

type readConfig struct {
	sideLength float64 // 0 → N-1
}

// WithSideLength sets rL for lines whose header has no rL pair.
// Panics unless rL is finite and > 0.
func WithSideLength(rL float64) ReadOption {
	if !(rL > 0) || math.IsInf(rL, 0) {
		panic(fmt.Sprintf("codec: WithSideLength(%v)", rL))
	}
	return func(c *readConfig) { c.sideLength = rL }
}

// ReadTokens parses every non-empty token line of r.
//
// Errors (wrapped with the 1-based line number):
//   - ErrMalformedHeader, ErrSizeMismatch, ErrBadValue.
//   - surface.ErrInvalidParameter when the header values are out of domain.
func ReadTokens(r io.Reader, opts ...ReadOption) ([]*surface.HeightField, error) {
	var cfg readConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)

	var out []*surface.HeightField
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		f, err := parseToken(text, cfg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, f)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func parseToken(text string, cfg readConfig) (*surface.HeightField, error) {
	fields := strings.Split(text, ",")
	p, err := parseHeader(fields[0], cfg)
	if err != nil {
		return nil, err
	}
	values := fields[1:]
	if len(values) != p.N*p.N {
		return nil, fmt.Errorf("N=%d, got %d heights: %w", p.N, len(values), ErrSizeMismatch)
	}

	data, err := matrix.NewDense(p.N, p.N)
	if err != nil {
		return nil, err
	}
	row := make([]float64, p.N)
	for i := 0; i < p.N; i++ {
		for j := 0; j < p.N; j++ {
			s := values[i*p.N+j]
			v, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("height %d %q: %w", i*p.N+j, s, ErrBadValue)
			}
			row[j] = v
		}
		if err = data.FillRow(i, row); err != nil {
			return nil, err
		}
	}

	return surface.NewHeightField(p, data)
}

// parseHeader reads colon-separated key:value pairs in any order.
func parseHeader(h string, cfg readConfig) (surface.Parameters, error) {
	parts := strings.Split(h, ":")
	if len(parts)%2 != 0 {
		return surface.Parameters{}, fmt.Errorf("%q: odd number of fields: %w", h, ErrMalformedHeader)
	}

	vals := make(map[string]float64, len(parts)/2)
	for k := 0; k < len(parts); k += 2 {
		key := parts[k]
		switch key {
		case keyRMS, keyCLX, keyCLY, keyN, keyRL:
		default:
			return surface.Parameters{}, fmt.Errorf("%q: unknown key %q: %w", h, key, ErrMalformedHeader)
		}
		v, err := strconv.ParseFloat(parts[k+1], 64)
		if err != nil {
			return surface.Parameters{}, fmt.Errorf("%q: %s: %w", h, key, ErrMalformedHeader)
		}
		vals[key] = v
	}
	for _, key := range []string{keyRMS, keyCLX, keyCLY, keyN} {
		if _, ok := vals[key]; !ok {
			return surface.Parameters{}, fmt.Errorf("%q: missing %s: %w", h, key, ErrMalformedHeader)
		}
	}

	nf := vals[keyN]
	if nf != math.Trunc(nf) || nf < surface.MinN || nf > math.MaxInt32 {
		return surface.Parameters{}, fmt.Errorf("%q: N=%v: %w", h, nf, ErrMalformedHeader)
	}
	n := int(nf)

	rL, ok := vals[keyRL]
	if !ok {
		rL = cfg.sideLength
		if rL == 0 {
			rL = float64(n - 1)
		}
	}

	var p surface.Parameters
	if cly := vals[keyCLY]; cly != 0 {
		p = surface.Anisotropic(n, rL, vals[keyRMS], vals[keyCLX], cly)
	} else {
		p = surface.Isotropic(n, rL, vals[keyRMS], vals[keyCLX])
	}
	if err := p.Validate(); err != nil {
		return surface.Parameters{}, err
	}

	return p, nil
}
