// SPDX-License-Identifier: MIT

package stream

import "github.com/katalvlaran/roughsurf/surface"

// Response types.
const (
	TypeSurface = "surface"
	TypeError   = "error"
)

// Request asks for one surface. Any non-zero CLY selects the anisotropic
// kernel, which Validate then requires to be positive.
// A nil Seed draws a time-seeded source.
type Request struct {
	N    int     `json:"N"`
	RL   float64 `json:"rL"`
	H    float64 `json:"h"`
	CLX  float64 `json:"clx"`
	CLY  float64 `json:"cly,omitempty"`
	Seed *int64  `json:"seed,omitempty"`
}

// Parameters converts r into synthesis parameters.
func (r Request) Parameters() surface.Parameters {
	if r.CLY != 0 {
		return surface.Anisotropic(r.N, r.RL, r.H, r.CLX, r.CLY)
	}

	return surface.Isotropic(r.N, r.RL, r.H, r.CLX)
}

// Stats mirrors surface.Stats on the wire.
type Stats struct {
	Mean   float64 `json:"mean"`
	RMS    float64 `json:"rms"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Response is one server message.
type Response struct {
	Type    string      `json:"type"`
	Header  string      `json:"header,omitempty"`
	N       int         `json:"N,omitempty"`
	Heights [][]float64 `json:"heights,omitempty"`
	Stats   *Stats      `json:"stats,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func errorResponse(err error) Response {
	return Response{Type: TypeError, Error: err.Error()}
}
