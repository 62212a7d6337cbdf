// SPDX-License-Identifier: MIT

package render

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/katalvlaran/roughsurf/surface"
)

// fontSource is parsed once and shared; FontSource is safe for concurrent use.
var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// drawLabel paints the parameter header into the top labelHeight pixels.
func drawLabel(dc *gg.Context, f *surface.HeightField) error {
	src, err := fontSource()
	if err != nil {
		return err
	}
	dc.SetFont(src.Face(labelFontSize))
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawString(f.Params.String(), 6, labelHeight-7)

	return nil
}
