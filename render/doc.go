// SPDX-License-Identifier: MIT

// Package render draws height fields as PNG images with github.com/gogpu/gg.
//
//   - BuildMesh turns an N×N field into (N-1)² quads with physical x/y
//     coordinates and the surface heights, plus the height range.
//   - Heatmap paints one cell per height with a rainbow colour map
//     (blue = lowest, red = highest).
//   - Isometric projects the quad mesh at 30° and paints it back to front.
//
// Both renderers optionally draw a header label with the surface parameters
// using the Go Regular font.
package render
