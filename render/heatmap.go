// SPDX-License-Identifier: MIT

package render

import (
	"io"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/roughsurf/surface"
)

// Heatmap writes a PNG with one cell per height. The image is N·cell wide
// and N·cell tall, plus the label strip when enabled.
// Errors: ErrEmptySurface, drawing and encoding errors.
func Heatmap(w io.Writer, f *surface.HeightField, opts ...Option) error {
	if f == nil || f.Data == nil {
		return ErrEmptySurface
	}
	cfg := newConfig(opts...)
	n := f.N()
	top := 0
	if cfg.label {
		top = labelHeight
	}

	dc := gg.NewContext(n*cfg.cell, n*cfg.cell+top)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	st := f.Stats()
	cs := float64(cfg.cell)
	var err error
	f.Data.Do(func(i, j int, v float64) bool {
		dc.SetColor(Rainbow(scaleZ(v, st.Min, st.Max)).Color())
		dc.DrawRectangle(float64(j)*cs, float64(top)+float64(i)*cs, cs, cs)
		err = dc.Fill()
		return err == nil
	})
	if err != nil {
		return err
	}
	if cfg.label {
		if err = drawLabel(dc, f); err != nil {
			return err
		}
	}

	return dc.EncodePNG(w)
}
