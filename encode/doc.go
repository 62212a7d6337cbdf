// SPDX-License-Identifier: MIT

// Package encode turns height fields into text: every height is assigned to
// one of `spaces` equal-width buckets and each bucket to a letter of the
// alphabet A–Z followed by a–z, so at most 52 buckets are available.
//
// Heights are first multiplied by 10^scale (for inputs not measured in
// nanometres). The bucket range depends on the Method:
//
//	Simple     fixed [-100, 100], the typical height span of nanostructured surfaces
//	MinMax     [min, max] of the surface being encoded
//	MinMaxRMS  heights replaced by |z| - RMS, then [min, max] of those deviations
//
// Out-of-range heights are clamped to the first or last bucket.
package encode
