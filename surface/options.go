// SPDX-License-Identifier: MIT
// Package: roughsurf/surface
//
// options.go — functional options for Synthesizer.
//
// Contract:
//   - Options are functional (type Option func(*synthConfig)).
//   - Option constructors validate and panic on meaningless inputs;
//     Generate itself never panics.
//   - Randomness is explicit: WithSeed or WithRand, or the rng argument of
//     Generate, which always wins.

package surface

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/roughsurf/spectral"
)

// Option customizes a Synthesizer.
type Option func(*synthConfig)

// WithTransform selects the spectral backend. Panics on nil.
func WithTransform(t spectral.Transform) Option {
	if t == nil {
		panic("surface: WithTransform(nil)")
	}
	return func(c *synthConfig) {
		c.transform = t
	}
}

// WithTolerance sets the bound on the residual imaginary part (finite, > 0).
// Panics otherwise.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("surface: WithTolerance(%v)", tol))
	}
	return func(c *synthConfig) {
		c.tolerance = tol
	}
}

// WithLogger routes stage diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("surface: WithLogger(nil)")
	}
	return func(c *synthConfig) {
		c.logger = l
	}
}

// WithRand provides the default random source used when Generate receives a
// nil rng. The source is not goroutine-safe: do not share the Synthesizer
// across concurrent Generate calls that rely on it. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("surface: WithRand(nil)")
	}
	return func(c *synthConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(c *synthConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
