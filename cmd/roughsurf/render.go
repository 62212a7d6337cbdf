// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/roughsurf/render"
	"github.com/katalvlaran/roughsurf/surface"
)

func runRender(_ context.Context, a *app, args []string) error {
	fs := a.newFlagSet("render")
	in := fs.String("in", "", "token file (- = stdin)")
	dir := fs.String("out", "", "output directory")
	mode := fs.String("mode", "heatmap", "heatmap|iso")
	cell := fs.Int("cell", render.DefaultCellSize, "heat map pixels per height")
	width := fs.Int("width", render.DefaultWidth, "isometric image width")
	height := fs.Int("height", render.DefaultHeight, "isometric image height")
	label := fs.Bool("label", true, "draw the parameter header")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *dir == "" {
		return fmt.Errorf("%w: render needs -in and -out", errUsage)
	}

	var draw func(io.Writer, *surface.HeightField, ...render.Option) error
	opts := []render.Option{render.WithLabel(*label)}
	switch *mode {
	case "heatmap":
		draw = render.Heatmap
		if *cell < 1 {
			return fmt.Errorf("%w: -cell %d", errUsage, *cell)
		}
		opts = append(opts, render.WithCellSize(*cell))
	case "iso", "isometric":
		draw = render.Isometric
		if *width < 16 || *height < 16 {
			return fmt.Errorf("%w: -width/-height below 16", errUsage)
		}
		opts = append(opts, render.WithSize(*width, *height))
	default:
		return fmt.Errorf("%w: -mode %q (want heatmap|iso)", errUsage, *mode)
	}

	fields, err := readFields(*in)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}
	for k, f := range fields {
		path := filepath.Join(*dir, fmt.Sprintf("surface_%03d.png", k))
		if err = a.writeTo(path, func(w io.Writer) error { return draw(w, f, opts...) }); err != nil {
			return fmt.Errorf("surface %d: %w", k, err)
		}
		a.logger.Debug("rendered", slog.String("file", path), slog.String("params", f.Params.String()))
	}
	a.logger.Info("render done", slog.Int("images", len(fields)), slog.String("dir", *dir))

	return nil
}
