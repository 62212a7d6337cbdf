// SPDX-License-Identifier: MIT

package render

import "fmt"

// Defaults.
const (
	DefaultCellSize = 4
	DefaultWidth    = 640
	DefaultHeight   = 480
	labelHeight     = 24
	labelFontSize   = 14
	zExaggeration   = 0.35 // projected relief as a fraction of the mesh diagonal
)

// Option customizes a renderer.
type Option func(*config)

type config struct {
	cell          int
	width, height int
	label         bool
}

func newConfig(opts ...Option) config {
	cfg := config{cell: DefaultCellSize, width: DefaultWidth, height: DefaultHeight, label: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCellSize sets the heat map pixels per height (≥ 1). Panics otherwise.
func WithCellSize(px int) Option {
	if px < 1 {
		panic(fmt.Sprintf("render: WithCellSize(%d)", px))
	}
	return func(c *config) { c.cell = px }
}

// WithSize sets the isometric canvas size (both ≥ 16). Panics otherwise.
func WithSize(width, height int) Option {
	if width < 16 || height < 16 {
		panic(fmt.Sprintf("render: WithSize(%d, %d)", width, height))
	}
	return func(c *config) { c.width, c.height = width, height }
}

// WithLabel toggles the parameter header (on by default).
func WithLabel(on bool) Option {
	return func(c *config) { c.label = on }
}
