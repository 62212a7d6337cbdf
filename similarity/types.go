// SPDX-License-Identifier: MIT

package similarity

import "errors"

var (
	// ErrEmptySequence indicates an empty input sequence or surface.
	ErrEmptySequence = errors.New("similarity: input sequences must be non-empty")

	// ErrSizeMismatch indicates surfaces (or encoded blocks) of different N.
	ErrSizeMismatch = errors.New("similarity: surfaces differ in size")

	// ErrBadInput indicates invalid options or symbols.
	ErrBadInput = errors.New("similarity: bad input")

	// ErrPathNeedsMatrix indicates ReturnPath without MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("similarity: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its DP table.
//
//   - FullMatrix — keep the whole (n+1)×(m+1) table; allows path recovery. O(n·m).
//   - TwoRows    — keep the previous and current rows. O(m).
//   - NoMemory   — keep a single row plus one carried diagonal value. O(m).
type MemoryMode int

const (
	FullMatrix MemoryMode = iota
	TwoRows
	NoMemory
)

// Coord is one aligned pair (a index I, b index J) of a warping path.
type Coord struct {
	I, J int
}

// Options configures DTW.
//
//   - Window       — Sakoe–Chiba half-width; -1 disables the constraint,
//     0 allows only the diagonal. Values below -1 are rejected.
//   - SlopePenalty — cost added to every non-diagonal step.
//   - ReturnPath   — recover the optimal path (FullMatrix only).
//   - MemoryMode   — DP storage strategy.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns unconstrained, unpenalized, distance-only options
// using TwoRows storage.
func DefaultOptions() Options {
	return Options{Window: -1, MemoryMode: TwoRows}
}
