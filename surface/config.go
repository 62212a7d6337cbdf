// SPDX-License-Identifier: MIT
// Package: roughsurf/surface
//
// config.go — resolved Synthesizer configuration and its defaults.
//
// Defaults:
//   - transform = spectral.Default() (gonum)
//   - tolerance = spectral.DefaultTolerance (1e-9)
//   - logger    = nil (package Logger() is read on every Generate call)
//   - rng       = nil (a time-seeded source is created per Generate call)

package surface

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/roughsurf/spectral"
)

type synthConfig struct {
	transform spectral.Transform
	tolerance float64
	logger    *slog.Logger
	rng       *rand.Rand
}

// newSynthConfig applies opts over the defaults; later options win.
func newSynthConfig(opts ...Option) synthConfig {
	cfg := synthConfig{
		transform: spectral.Default(),
		tolerance: spectral.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
