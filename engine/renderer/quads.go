package renderer

import (
	"github.com/Carmen-Shannon/crystal-space/engine/view"
	"github.com/go-gl/mathgl/mgl32"
)

// corners lists the two counter-clockwise triangles of a quad.
var corners = [6]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}

// Vertices expands quads into triangle-list vertices.
//
// Parameters:
//   - quads: the quads in draw order
//
// Returns:
//   - []GPUVertex: six vertices per quad
func Vertices(quads []view.Quad) []GPUVertex {
	out := make([]GPUVertex, 0, len(quads)*len(corners))
	for _, q := range quads {
		rgba := [4]float32{q.Color.R, q.Color.G, q.Color.B, q.Color.A}
		for _, c := range corners {
			out = append(out, GPUVertex{
				Position: [2]float32{q.Center[0] + c[0]*q.HalfSize[0], q.Center[1] + c[1]*q.HalfSize[1]},
				Local:    [2]float32{c[0], c[1]},
				Color:    rgba,
			})
		}
	}
	return out
}
