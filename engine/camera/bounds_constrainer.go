package camera

import (
	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultBoundsFloor  float32 = 20
	DefaultBoundsMargin float32 = 5
	DefaultMinHeight    float32 = 5

	// parallelEpsilon is the smallest |forward.y| for which the view ray meets the ground.
	parallelEpsilon float32 = 0.001
)

// PlanetIndex exposes the planet positions the camera bounds are derived from.
type PlanetIndex interface {
	// PlanetPositions returns the world position of every planet.
	PlanetPositions() []mgl32.Vec3
}

// Positions is a PlanetIndex over a fixed list of positions.
type Positions []mgl32.Vec3

// PlanetPositions returns p.
func (p Positions) PlanetPositions() []mgl32.Vec3 {
	return p
}

// BoundsConstrainer keeps the camera above the ground and its view centre within a disc
// around the origin sized to the scene.
type BoundsConstrainer struct {
	// Floor is the smallest scene radius used, even for empty or compact scenes.
	Floor float32
	// Margin is added to the scene radius to get the ground limit.
	Margin float32
	// MinHeight is the lowest camera Y allowed.
	MinHeight float32
}

// DefaultBoundsConstrainer returns a constrainer with floor 20, margin 5 and min height 5.
func DefaultBoundsConstrainer() BoundsConstrainer {
	return BoundsConstrainer{Floor: DefaultBoundsFloor, Margin: DefaultBoundsMargin, MinHeight: DefaultMinHeight}
}

// SceneRadius returns max(Floor, |p|) over every planet of index.
//
// Parameters:
//   - index: the scene's planets, may be nil
//
// Returns:
//   - float32: the scene radius
func (b BoundsConstrainer) SceneRadius(index PlanetIndex) float32 {
	if index == nil {
		return b.Floor
	}
	positions := index.PlanetPositions()
	lengths := make([]float32, len(positions))
	for i, p := range positions {
		lengths[i] = p.Len()
	}
	return common.FoldMax(b.Floor, lengths...)
}

// Limit returns the largest ground distance from the origin the view centre may reach.
func (b BoundsConstrainer) Limit(index PlanetIndex) float32 {
	return b.SceneRadius(index) + b.Margin
}

// GroundPoint intersects the camera's view ray with the Y = 0 plane.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - mgl32.Vec3: the intersection point
//   - bool: false if the view direction is parallel to the ground
func (b BoundsConstrainer) GroundPoint(cam Camera) (mgl32.Vec3, bool) {
	p, f := cam.Position(), cam.Forward()
	if mgl32.Abs(f[1]) <= parallelEpsilon {
		return mgl32.Vec3{}, false
	}
	t := -p[1] / f[1]
	return p.Add(f.Mul(t)), true
}

// Apply lifts the camera to MinHeight and pulls its ground point back inside Limit.
// The correction is a pure translation on X and Z; orientation is never changed.
//
// Parameters:
//   - cam: the camera to constrain
//   - index: the scene's planets
//
// Returns:
//   - bool: true if the camera was moved
func (b BoundsConstrainer) Apply(cam Camera, index PlanetIndex) bool {
	limit := b.Limit(index)
	moved := false

	if p := cam.Position(); p[1] < b.MinHeight {
		p[1] = b.MinHeight
		cam.SetPosition(p)
		moved = true
	}

	ground, ok := b.GroundPoint(cam)
	if !ok {
		return moved
	}
	xz := common.GroundXZ(ground)
	if xz.Dot(xz) <= limit*limit {
		return moved
	}
	clamped := common.NormalizeOrZero2(xz).Mul(limit)
	cam.Translate(mgl32.Vec3{clamped[0] - xz[0], 0, clamped[1] - xz[1]})
	return true
}
