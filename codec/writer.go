// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/roughsurf/surface"
)

// formatFloat is the lossless shortest representation.
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// WriteOption customizes the header layout.
type WriteOption func(*writeConfig)

type writeConfig struct {
	sideLength bool
}

// WithSideLengthHeader appends the rL pair to every header so a reader
// recovers the side length without WithSideLength.
func WithSideLengthHeader() WriteOption {
	return func(c *writeConfig) { c.sideLength = true }
}

func newWriteConfig(opts []WriteOption) writeConfig {
	var cfg writeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// header returns the key/value pairs shared by both layouts.
func (c writeConfig) header(p surface.Parameters) [][2]string {
	cly := 0.0
	if p.Anisotropic {
		cly = p.CLY
	}
	kv := [][2]string{
		{keyRMS, formatFloat(p.H)},
		{keyCLX, formatFloat(p.CLX)},
		{keyCLY, formatFloat(cly)},
		{keyN, strconv.Itoa(p.N)},
	}
	if c.sideLength {
		kv = append(kv, [2]string{keyRL, formatFloat(p.RL)})
	}

	return kv
}

func (c writeConfig) tokenHeader(p surface.Parameters) string {
	var sb strings.Builder
	for k, kv := range c.header(p) {
		if k > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(kv[0])
		sb.WriteByte(':')
		sb.WriteString(kv[1])
	}

	return sb.String()
}

// TokenHeader returns the token-line header for p, e.g.
// "rms:1:clx:2:cly:0:N:64", or "rms:1:clx:2:cly:0:N:64:rL:10" with
// WithSideLengthHeader.
func TokenHeader(p surface.Parameters, opts ...WriteOption) string {
	return newWriteConfig(opts).tokenHeader(p)
}

// Writer writes height fields in either layout.
type Writer struct {
	w   io.Writer
	cfg writeConfig
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer, opts ...WriteOption) *Writer {
	return &Writer{w: w, cfg: newWriteConfig(opts)}
}

// WriteToken writes each field as one token line.
func WriteToken(w io.Writer, fields ...*surface.HeightField) error {
	return NewWriter(w).WriteToken(fields...)
}

// WriteHuman writes each field in the human layout.
func WriteHuman(w io.Writer, fields ...*surface.HeightField) error {
	return NewWriter(w).WriteHuman(fields...)
}

// WriteToken writes each field as one token line.
func (wr *Writer) WriteToken(fields ...*surface.HeightField) error {
	bw := bufio.NewWriter(wr.w)
	for _, f := range fields {
		bw.WriteString(wr.cfg.tokenHeader(f.Params))
		f.Data.Do(func(_, _ int, v float64) bool {
			bw.WriteByte(',')
			bw.WriteString(formatFloat(v))
			return true
		})
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteHuman writes each field as a header line, N comma-separated rows and
// a blank separator line.
func (wr *Writer) WriteHuman(fields ...*surface.HeightField) error {
	bw := bufio.NewWriter(wr.w)
	for _, f := range fields {
		for k, kv := range wr.cfg.header(f.Params) {
			if k > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(kv[0])
			bw.WriteByte(':')
			bw.WriteString(kv[1])
		}
		bw.WriteByte('\n')
		f.Data.Do(func(_, j int, v float64) bool {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(formatFloat(v))
			if j == f.Data.Cols()-1 {
				bw.WriteByte('\n')
			}
			return true
		})
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
