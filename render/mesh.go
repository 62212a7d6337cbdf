// SPDX-License-Identifier: MIT

package render

import (
	"errors"

	"github.com/katalvlaran/roughsurf/surface"
)

// ErrEmptySurface indicates a nil field or one without heights.
var ErrEmptySurface = errors.New("render: empty surface")

// Vertex is a mesh point in physical units.
type Vertex struct {
	X, Y, Z float64
}

// Quad is one grid cell, corners (i,j), (i,j+1), (i+1,j+1), (i+1,j).
type Quad struct {
	I, J    int
	Corners [4]Vertex
}

// MeanZ returns the average corner height.
func (q Quad) MeanZ() float64 {
	return (q.Corners[0].Z + q.Corners[1].Z + q.Corners[2].Z + q.Corners[3].Z) / 4
}

// Mesh is the quad decomposition of a height field.
type Mesh struct {
	N          int
	Quads      []Quad // row-major over (i, j)
	MinZ, MaxZ float64
}

// BuildMesh decomposes f into (N-1)² quads. Grid coordinates span
// [-rL/2, rL/2] like the synthesis mesh.
// Errors: ErrEmptySurface.
func BuildMesh(f *surface.HeightField) (Mesh, error) {
	if f == nil || f.Data == nil {
		return Mesh{}, ErrEmptySurface
	}
	n := f.N()
	z := f.Rows()
	st := surface.Summarize(f.Data.Values())

	step := f.Params.Step()
	half := f.Params.RL / 2
	at := func(i, j int) Vertex {
		return Vertex{X: float64(j)*step - half, Y: float64(i)*step - half, Z: z[i][j]}
	}

	m := Mesh{N: n, MinZ: st.Min, MaxZ: st.Max, Quads: make([]Quad, 0, (n-1)*(n-1))}
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			m.Quads = append(m.Quads, Quad{
				I: i, J: j,
				Corners: [4]Vertex{at(i, j), at(i, j+1), at(i+1, j+1), at(i+1, j)},
			})
		}
	}

	return m, nil
}
