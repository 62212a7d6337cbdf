// SPDX-License-Identifier: MIT

// Package batch reads surface parameter sets from CSV and synthesizes them
// in parallel.
//
// CSV layout: a header row naming the columns, then one parameter set per
// row. Column names are matched case-insensitively:
//
//	N          grid size (optional, default DefaultN)
//	rL | area  side length, or surface area with rL = √area
//	h | rms    RMS height
//	clx        correlation length along x
//	cly        correlation length along y (optional; its presence makes every row anisotropic)
//
// RowPolicy decides whether only the first data row (FirstRowOnly) or every
// row (AllRows, the default) is returned.
//
// Runner executes one job per parameter set on a worker pool. Each job draws
// from its own source seeded with DeriveSeed(seed, index), so results do not
// depend on the number of workers or on scheduling. A failing job is reported
// in its Result and logged; the batch continues.
package batch
