// Package view projects a scene through a camera into screen-space discs shared by every front-end.
package view

import (
	"sort"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/camera"
	"github.com/Carmen-Shannon/crystal-space/engine/scene"
	"github.com/Carmen-Shannon/crystal-space/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// Quad is a screen-aligned disc in normalized device coordinates.
type Quad struct {
	Center   mgl32.Vec2
	HalfSize mgl32.Vec2
	Color    common.Color
	// Depth is the distance along the camera's view direction.
	Depth float32
}

// Build projects every body and every lit light of s through cam.
// Quads entirely outside the view are dropped; the rest are sorted far to near.
//
// Parameters:
//   - s: the scene
//   - cam: the camera
//   - width, height: window size in pixels
//
// Returns:
//   - []Quad: the quads to draw, back to front
func Build(s scene.Scene, cam camera.Camera, width, height float32) []Quad {
	if width <= 0 || height <= 0 {
		return nil
	}
	vp := cam.ViewProjectionMatrix(width / height)
	area := cam.Projection().Area(width / height)
	eye, forward := cam.Position(), cam.Forward()

	quads := make([]Quad, 0, len(s.Bodies())+len(s.Lights()))
	add := func(p mgl32.Vec3, radius float32, c common.Color) {
		clip := vp.Mul4x1(p.Vec4(1))
		q := Quad{
			Center:   mgl32.Vec2{clip[0] / clip[3], clip[1] / clip[3]},
			HalfSize: mgl32.Vec2{radius / (area[0] / 2), radius / (area[1] / 2)},
			Color:    c,
			Depth:    p.Sub(eye).Dot(forward),
		}
		if q.visible() {
			quads = append(quads, q)
		}
	}

	bodyNodes := make(map[transform.NodeID]struct{})
	for _, b := range s.Bodies() {
		bodyNodes[b.Node] = struct{}{}
		c := b.Color
		if b.Kind == scene.BodyStar {
			c = c.Scale(s.StarIntensity(1) / 10).Clamped()
		}
		add(s.WorldPosition(b), b.Radius, c)
	}

	elapsed := s.Animator().Elapsed()
	for _, l := range s.Lights() {
		if _, ok := bodyNodes[l.Node()]; ok {
			continue
		}
		intensity := l.IntensityAt(elapsed)
		if intensity <= 0 {
			continue
		}
		p, ok := l.WorldPosition(s.Hierarchy())
		if !ok {
			continue
		}
		add(p, lightRadius(intensity), l.Color())
	}

	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].Depth > quads[j].Depth
	})
	return quads
}

// lightRadius sizes a light marker by its current intensity.
func lightRadius(intensity float32) float32 {
	return 0.08 + 0.04*common.Clamp(intensity, 0, 4)
}

func (q Quad) visible() bool {
	return q.Center[0]+q.HalfSize[0] >= -1 && q.Center[0]-q.HalfSize[0] <= 1 &&
		q.Center[1]+q.HalfSize[1] >= -1 && q.Center[1]-q.HalfSize[1] <= 1
}

// Pixels converts the quad into a pixel-space circle for a width x height target
// whose origin is the top-left corner.
//
// Parameters:
//   - width, height: target size in pixels
//
// Returns:
//   - x, y: circle centre in pixels
//   - r: circle radius in pixels
func (q Quad) Pixels(width, height float32) (x, y, r float32) {
	x = (q.Center[0] + 1) / 2 * width
	y = (1 - q.Center[1]) / 2 * height
	r = q.HalfSize[1] * height / 2
	return x, y, r
}
