// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/roughsurf/spectral"
)

// Synthesizer turns Parameters into a HeightField. The zero value is not
// usable; build one with NewSynthesizer.
type Synthesizer struct {
	cfg  synthConfig
	conv *spectral.Convolver
}

// NewSynthesizer returns a Synthesizer configured by opts.
func NewSynthesizer(opts ...Option) *Synthesizer {
	cfg := newSynthConfig(opts...)

	return &Synthesizer{
		cfg:  cfg,
		conv: spectral.NewConvolver(cfg.transform, spectral.WithTolerance(cfg.tolerance)),
	}
}

// Transform returns the spectral backend in use.
func (s *Synthesizer) Transform() spectral.Transform { return s.cfg.transform }

// Tolerance returns the residual bound in use.
func (s *Synthesizer) Tolerance() float64 { return s.cfg.tolerance }

// logger returns the WithLogger logger, or the current package logger.
func (s *Synthesizer) logger() *slog.Logger {
	if s.cfg.logger != nil {
		return s.cfg.logger
	}

	return Logger()
}

// Generate synthesizes one surface.
//
// Implementation:
//   - Stage 1: p.Validate().
//   - Stage 2: MeshGrid, NoiseField (from rng), CorrelationKernel.
//   - Stage 3: circular convolution with residual check.
//   - Stage 4: Normalize.
//
// rng selects the random source; when nil the WithRand/WithSeed source is
// used, or else a fresh time-seeded one.
//
// Errors:
//   - ErrInvalidParameter for invalid p.
//   - ErrNumericalInstability when the residual check fails.
//
// Complexity: dominated by the transform; O(N² log N) for the FFT backends.
func (s *Synthesizer) Generate(p Parameters, rng *rand.Rand) (*HeightField, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	if rng == nil {
		rng = s.cfg.rng
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	log := s.logger().With(slog.String("params", p.String()), slog.String("transform", s.cfg.transform.Name()))

	start := time.Now()
	X, Y, err := MeshGrid(p.N, p.RL)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	W, err := NoiseField(p.N, p.H, rng)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	F, err := CorrelationKernel(X, Y, p.CLX, p.CLY, p.Anisotropic)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	log.Debug("inputs ready", slog.Duration("elapsed", time.Since(start)))

	convStart := time.Now()
	R, residual, err := s.conv.ConvolveWithResidual(F, W)
	if err != nil {
		log.Warn("convolution rejected", slog.Float64("residual", residual), slog.Any("err", err))
		return nil, fmt.Errorf("Generate: %w", err)
	}
	log.Debug("convolved",
		slog.Duration("elapsed", time.Since(convStart)),
		slog.Float64("residual", residual))

	Z, err := Normalize(R, p)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	log.Debug("surface ready", slog.Duration("total", time.Since(start)))

	return &HeightField{Params: p, Data: Z}, nil
}

var defaultSynthesizer = NewSynthesizer()

// Generate runs a default Synthesizer (gonum backend, 1e-9 tolerance).
func Generate(p Parameters, rng *rand.Rand) (*HeightField, error) {
	return defaultSynthesizer.Generate(p, rng)
}
