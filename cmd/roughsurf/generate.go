// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/katalvlaran/roughsurf/codec"
	"github.com/katalvlaran/roughsurf/render"
	"github.com/katalvlaran/roughsurf/surface"
)

// writeFields writes fields in the token or human layout; withRL appends
// the rL pair to each header.
func writeFields(w io.Writer, format string, withRL bool, fields ...*surface.HeightField) error {
	var opts []codec.WriteOption
	if withRL {
		opts = append(opts, codec.WithSideLengthHeader())
	}
	cw := codec.NewWriter(w, opts...)
	switch strings.ToLower(format) {
	case "token", "":
		return cw.WriteToken(fields...)
	case "human":
		return cw.WriteHuman(fields...)
	default:
		return fmt.Errorf("%w: -format %q (want token|human)", errUsage, format)
	}
}

func runGenerate(_ context.Context, a *app, args []string) error {
	fs := a.newFlagSet("generate")
	n := fs.Int("N", a.settings.DefaultN, "grid points per side")
	rL := fs.Float64("rL", 0, "side length")
	h := fs.Float64("h", 1, "target RMS height")
	clx := fs.Float64("clx", 0, "correlation length along x")
	cly := fs.Float64("cly", 0, "correlation length along y (0 = isotropic)")
	seed := fs.Int64("seed", a.settings.Seed, "random seed")
	out := fs.String("out", "-", "output file")
	format := fs.String("format", "token", "token|human")
	withRL := fs.Bool("rl-header", false, "append rL to each header")
	pngPath := fs.String("png", "", "also write a heat map PNG here")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p := surface.Isotropic(*n, *rL, *h, *clx)
	if *cly != 0 {
		p = surface.Anisotropic(*n, *rL, *h, *clx, *cly)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	synth, err := a.settings.NewSynthesizer(a.logger)
	if err != nil {
		return err
	}
	f, err := synth.Generate(p, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return err
	}
	st := f.Stats()
	a.logger.Info("generated",
		slog.String("params", p.String()),
		slog.Float64("rms", st.RMS),
		slog.Float64("min", st.Min),
		slog.Float64("max", st.Max))

	if err = a.writeTo(*out, func(w io.Writer) error { return writeFields(w, *format, *withRL, f) }); err != nil {
		return err
	}
	if *pngPath != "" {
		return a.writeTo(*pngPath, func(w io.Writer) error { return render.Heatmap(w, f) })
	}

	return nil
}
