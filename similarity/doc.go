// SPDX-License-Identifier: MIT

// Package similarity compares surfaces by Dynamic Time Warping (DTW) of
// their row profiles.
//
// DTW finds the monotone alignment of two sequences that minimizes the sum
// of |a[i]-b[j]| over aligned pairs. Rows of rough surfaces drift and
// stretch relative to each other, so DTW ranks two surfaces with the same
// statistics as close even when their features are shifted.
//
// Features:
//   - Sakoe–Chiba window (|i−j| ≤ Window) to bound the search band.
//   - Slope penalty added to every insertion or deletion step.
//   - Memory modes: FullMatrix (path recovery), TwoRows, NoMemory (one row).
//   - Surfaces: mean DTW distance over corresponding rows.
//   - Strings: DTW over encoded rows (see package encode) using symbol indices.
//   - Pairwise: symmetric distance matrix for a set of surfaces.
//
// Complexity: O(N·M) time per pair of sequences; memory per MemoryMode.
package similarity
