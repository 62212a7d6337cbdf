// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/gg"

// Rainbow maps t in [0,1] from blue (0) through green to red (1).
// t outside the range is clamped.
func Rainbow(t float64) gg.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	return gg.HSL(240*(1-t), 1, 0.5)
}

// scaleZ maps z into [0,1] over [lo, hi]; a flat range maps to 0.5.
func scaleZ(z, lo, hi float64) float64 {
	if !(hi > lo) {
		return 0.5
	}

	return (z - lo) / (hi - lo)
}
