package scene

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/animator"
	"github.com/Carmen-Shannon/crystal-space/engine/light"
	"github.com/Carmen-Shannon/crystal-space/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidHost is returned when the station is asked to orbit a planet that does not exist.
var ErrInvalidHost = errors.New("scene: invalid station host")

// BodyKind tags what a body is. The set is closed.
type BodyKind int

const (
	BodyStar BodyKind = iota
	BodyPlanet
	BodyStation
)

func (k BodyKind) String() string {
	switch k {
	case BodyStar:
		return "star"
	case BodyPlanet:
		return "planet"
	case BodyStation:
		return "station"
	default:
		return "unknown"
	}
}

// Body is a tagged, renderable node of the scene hierarchy.
type Body struct {
	Kind   BodyKind
	Name   string
	Node   transform.NodeID
	Radius float32
	Color  common.Color
}

// Index is the read-only view of the scene the camera bounds are derived from.
type Index struct {
	// Planets holds the world position of every planet body for the current tick.
	Planets []mgl32.Vec3
}

// PlanetPositions returns the world position of every planet.
func (i Index) PlanetPositions() []mgl32.Vec3 {
	return i.Planets
}

// sceneImpl is the implementation of the Scene interface.
type sceneImpl struct {
	name         string
	seed         uint64
	planetCount  int
	station      bool
	stationHost  int
	ambient      common.Color
	ambientLevel float32

	hierarchy *transform.Hierarchy
	anim      animator.Animator
	bodies    []Body
	lights    []light.Light
}

// Scene owns the procedural celestial hierarchy: one star, its planets and an optional
// station, the orbits driving them and the lights attached to them.
// Not safe for concurrent use.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Seed returns the seed the scene layout was generated from.
	Seed() uint64

	// Hierarchy returns the transform tree of the scene.
	//
	// Returns:
	//   - *transform.Hierarchy: the hierarchy, owned by the scene
	Hierarchy() *transform.Hierarchy

	// Animator returns the orbit animator driving the scene.
	Animator() animator.Animator

	// Bodies returns every tagged body in creation order. The star is always first.
	//
	// Returns:
	//   - []Body: a copy of the body list
	Bodies() []Body

	// Planets returns the planet bodies in orbit order, innermost first.
	//
	// Returns:
	//   - []Body: the planet bodies
	Planets() []Body

	// Star returns the star body.
	Star() Body

	// Station returns the station body.
	//
	// Returns:
	//   - Body: the station
	//   - bool: false if the scene was built without a station
	Station() (Body, bool)

	// Lights returns the lights attached to scene nodes.
	Lights() []light.Light

	// Ambient returns the ambient light colour and brightness.
	//
	// Returns:
	//   - common.Color: ambient colour
	//   - float32: ambient brightness
	Ambient() (common.Color, float32)

	// Update advances every orbit by dt seconds.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// WorldPosition resolves the world position of a body.
	//
	// Parameters:
	//   - b: the body
	//
	// Returns:
	//   - mgl32.Vec3: world-space position, or the origin if the node is unknown
	WorldPosition(b Body) mgl32.Vec3

	// Index returns the planet world positions for the current state of the hierarchy.
	//
	// Returns:
	//   - Index: freshly computed scene index
	Index() Index

	// StarIntensity returns the pulsing emissive intensity of the star.
	//
	// Parameters:
	//   - base: the unpulsed intensity
	//
	// Returns:
	//   - float32: base * 10 * pulse
	StarIntensity(base float32) float32
}

var _ Scene = &sceneImpl{}

// NewScene builds a procedural scene.
// Defaults: seed 1, five planets, a station orbiting the second planet.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the built scene
//   - error: ErrInvalidHost if the station host is out of range
func NewScene(options ...SceneBuilderOption) (Scene, error) {
	s := &sceneImpl{
		name:         "crystal-space",
		seed:         1,
		planetCount:  5,
		station:      true,
		stationHost:  1,
		ambient:      common.RGB(1, 1, 1),
		ambientLevel: 20,
		anim:         animator.NewAnimator(),
	}
	for _, option := range options {
		option(s)
	}
	if s.planetCount < 0 {
		s.planetCount = 0
	}
	if s.station && (s.stationHost < 0 || s.stationHost >= s.planetCount) {
		return nil, fmt.Errorf("host planet %d of %d: %w", s.stationHost, s.planetCount, ErrInvalidHost)
	}
	if err := s.build(); err != nil {
		return nil, fmt.Errorf("build scene %q: %w", s.name, err)
	}
	return s, nil
}

func (s *sceneImpl) Name() string {
	return s.name
}

func (s *sceneImpl) Seed() uint64 {
	return s.seed
}

func (s *sceneImpl) Hierarchy() *transform.Hierarchy {
	return s.hierarchy
}

func (s *sceneImpl) Animator() animator.Animator {
	return s.anim
}

func (s *sceneImpl) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

func (s *sceneImpl) Planets() []Body {
	planets := make([]Body, 0, s.planetCount)
	for _, b := range s.bodies {
		if b.Kind == BodyPlanet {
			planets = append(planets, b)
		}
	}
	return planets
}

func (s *sceneImpl) Star() Body {
	return s.bodies[0]
}

func (s *sceneImpl) Station() (Body, bool) {
	for _, b := range s.bodies {
		if b.Kind == BodyStation {
			return b, true
		}
	}
	return Body{}, false
}

func (s *sceneImpl) Lights() []light.Light {
	return s.lights
}

func (s *sceneImpl) Ambient() (common.Color, float32) {
	return s.ambient, s.ambientLevel
}

func (s *sceneImpl) Update(dt float32) {
	s.anim.Update(s.hierarchy, dt)
}

func (s *sceneImpl) WorldPosition(b Body) mgl32.Vec3 {
	world, ok := s.hierarchy.World(b.Node)
	if !ok {
		return mgl32.Vec3{}
	}
	return world.Position
}

func (s *sceneImpl) Index() Index {
	idx := Index{Planets: make([]mgl32.Vec3, 0, s.planetCount)}
	for _, b := range s.bodies {
		if b.Kind != BodyPlanet {
			continue
		}
		idx.Planets = append(idx.Planets, s.WorldPosition(b))
	}
	return idx
}

func (s *sceneImpl) StarIntensity(base float32) float32 {
	return base * 10 * s.anim.Pulse()
}
