// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"math"
	"sort"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/roughsurf/surface"
)

// cos30 and sin30 of the isometric axes.
var (
	cos30 = math.Cos(math.Pi / 6)
	sin30 = 0.5
)

// Isometric writes a PNG of the quad mesh projected at 30°, painted back to
// front and coloured by mean quad height.
// Errors: ErrEmptySurface, drawing and encoding errors.
func Isometric(w io.Writer, f *surface.HeightField, opts ...Option) error {
	mesh, err := BuildMesh(f)
	if err != nil {
		return err
	}
	cfg := newConfig(opts...)
	top := 0
	if cfg.label {
		top = labelHeight
	}

	half := f.Params.RL / 2
	relief := zExaggeration * f.Params.RL * math.Sqrt2
	project := func(v Vertex) (float64, float64) {
		u, s := v.X+half, v.Y+half // [0, rL]
		h := scaleZ(v.Z, mesh.MinZ, mesh.MaxZ) * relief
		return (u - s) * cos30, (u+s)*sin30 - h
	}

	// Fit projected bounds into the canvas below the label.
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, q := range mesh.Quads {
		for _, c := range q.Corners {
			x, y := project(c)
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	const margin = 8.0
	availW := float64(cfg.width) - 2*margin
	availH := float64(cfg.height-top) - 2*margin
	scale := math.Min(availW/math.Max(maxX-minX, 1e-12), availH/math.Max(maxY-minY, 1e-12))
	offX := margin + (availW-(maxX-minX)*scale)/2 - minX*scale
	offY := float64(top) + margin + (availH-(maxY-minY)*scale)/2 - minY*scale

	// Painter's order: far (small i+j) first.
	order := make([]int, len(mesh.Quads))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		qa, qb := mesh.Quads[order[a]], mesh.Quads[order[b]]
		return qa.I+qa.J < qb.I+qb.J
	})

	dc := gg.NewContext(cfg.width, cfg.height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	dc.SetLineWidth(0.5)

	for _, k := range order {
		q := mesh.Quads[k]
		for c, v := range q.Corners {
			x, y := project(v)
			if c == 0 {
				dc.MoveTo(offX+x*scale, offY+y*scale)
				continue
			}
			dc.LineTo(offX+x*scale, offY+y*scale)
		}
		dc.ClosePath()
		dc.SetColor(Rainbow(scaleZ(q.MeanZ(), mesh.MinZ, mesh.MaxZ)).Color())
		if err = dc.FillPreserve(); err != nil {
			return err
		}
		dc.SetRGBA(0, 0, 0, 0.35)
		if err = dc.Stroke(); err != nil {
			return err
		}
	}
	if cfg.label {
		if err = drawLabel(dc, f); err != nil {
			return err
		}
	}

	return dc.EncodePNG(w)
}
