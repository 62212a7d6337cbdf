// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"
)

// MinN is the smallest accepted grid size.
const MinN = 2

// Parameters describes one surface to synthesize.
// CLY is read only when Anisotropic is true.
type Parameters struct {
	N           int     // grid points per side (≥ 2)
	RL          float64 // side length (> 0)
	H           float64 // RMS height (finite)
	CLX         float64 // correlation length along x (> 0)
	CLY         float64 // correlation length along y (> 0 when Anisotropic)
	Anisotropic bool    // selects the two-length kernel and normalization
}

// Isotropic returns parameters for a single correlation length.
func Isotropic(n int, rL, h, clx float64) Parameters {
	return Parameters{N: n, RL: rL, H: h, CLX: clx}
}

// Anisotropic returns parameters for distinct x/y correlation lengths.
// clx == cly is accepted and still takes the anisotropic branch.
func Anisotropic(n int, rL, h, clx, cly float64) Parameters {
	return Parameters{N: n, RL: rL, H: h, CLX: clx, CLY: cly, Anisotropic: true}
}

// Validate checks every field against its domain.
// Errors: ErrInvalidParameter wrapped with the offending field.
func (p Parameters) Validate() error {
	switch {
	case p.N < MinN:
		return invalidf("N=%d must be >= %d", p.N, MinN)
	case !(p.RL > 0) || math.IsInf(p.RL, 0):
		return invalidf("rL=%v must be finite and > 0", p.RL)
	case math.IsNaN(p.H) || math.IsInf(p.H, 0):
		return invalidf("h=%v must be finite", p.H)
	case !(p.CLX > 0) || math.IsInf(p.CLX, 0):
		return invalidf("clx=%v must be finite and > 0", p.CLX)
	case p.Anisotropic && (!(p.CLY > 0) || math.IsInf(p.CLY, 0)):
		return invalidf("cly=%v must be finite and > 0", p.CLY)
	}

	return nil
}

// Step returns the grid spacing rL/(N-1).
func (p Parameters) Step() float64 { return p.RL / float64(p.N-1) }

// String renders the parameters in the token header layout order.
func (p Parameters) String() string {
	if p.Anisotropic {
		return fmt.Sprintf("N=%d rL=%g h=%g clx=%g cly=%g", p.N, p.RL, p.H, p.CLX, p.CLY)
	}

	return fmt.Sprintf("N=%d rL=%g h=%g clx=%g", p.N, p.RL, p.H, p.CLX)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidParameter)
}
