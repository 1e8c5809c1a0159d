package scene

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/light"
	"github.com/Carmen-Shannon/crystal-space/engine/transform"
)

// SceneBuilderOption is a function that configures a Scene during construction.
type SceneBuilderOption func(*sceneImpl)

// WithName is an option builder that sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: a function that applies the name option to a sceneImpl
func WithName(name string) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.name = name
	}
}

// WithSeed is an option builder that sets the seed of the procedural layout.
// Two scenes built with the same options and seed are identical.
//
// Parameters:
//   - seed: the layout seed
//
// Returns:
//   - SceneBuilderOption: a function that applies the seed option to a sceneImpl
func WithSeed(seed uint64) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.seed = seed
	}
}

// WithPlanetCount is an option builder that sets how many planets orbit the star.
// Negative counts are treated as zero.
//
// Parameters:
//   - n: planet count
//
// Returns:
//   - SceneBuilderOption: a function that applies the planet count option to a sceneImpl
func WithPlanetCount(n int) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.planetCount = n
	}
}

// WithStation is an option builder that enables or disables the orbital station.
//
// Parameters:
//   - enabled: true to build the station
//
// Returns:
//   - SceneBuilderOption: a function that applies the station option to a sceneImpl
func WithStation(enabled bool) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.station = enabled
	}
}

// WithStationHost is an option builder that picks the planet the station orbits.
//
// Parameters:
//   - planet: zero-based planet index, innermost first
//
// Returns:
//   - SceneBuilderOption: a function that applies the host option to a sceneImpl
func WithStationHost(planet int) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.stationHost = planet
	}
}

// WithAmbient is an option builder that sets the ambient light.
//
// Parameters:
//   - c: ambient colour
//   - brightness: ambient brightness
//
// Returns:
//   - SceneBuilderOption: a function that applies the ambient option to a sceneImpl
func WithAmbient(c common.Color, brightness float32) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.ambient = c
		s.ambientLevel = brightness
	}
}

const (
	firstOrbit     = 8
	minOrbitStep   = 5
	orbitStepRange = 4
	orbitSpeedK    = 6
	stationOrbit   = 2.5
	stationSpeed   = 1.5
)

var planetPalette = []common.Color{
	common.RGB(0.80, 0.45, 0.30),
	common.RGB(0.30, 0.55, 0.90),
	common.RGB(0.45, 0.80, 0.45),
	common.RGB(0.85, 0.75, 0.45),
	common.RGB(0.65, 0.40, 0.85),
	common.RGB(0.40, 0.80, 0.80),
}

// build lays out the hierarchy:
//
//	star
//	planet pivot (orbit) -> anchor (+X distance) -> planet leaf (spin)
//	                           \-> station pivot (orbit) -> station leaf -> beacons
func (s *sceneImpl) build() error {
	rng := rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
	nodes := 1 + s.planetCount*3
	if s.station {
		nodes += 5
	}
	s.hierarchy = transform.NewHierarchy(nodes)
	s.bodies = make([]Body, 0, 2+s.planetCount)

	star, err := s.hierarchy.Add(transform.NoParent, transform.Identity())
	if err != nil {
		return err
	}
	s.bodies = append(s.bodies, Body{Kind: BodyStar, Name: "star", Node: star, Radius: 3, Color: common.RGB(1, 0.85, 0.4)})
	s.lights = append(s.lights, light.NewLight(star,
		light.WithColor(common.RGB(1, 0.9, 0.6)),
		light.WithIntensity(10),
		light.WithRange(200),
	))

	anchors := make([]transform.NodeID, 0, s.planetCount)
	distance := float32(firstOrbit)
	for i := 0; i < s.planetCount; i++ {
		if i > 0 {
			distance += minOrbitStep + rng.Float32()*orbitStepRange
		}
		phase := rng.Float32() * 2 * math.Pi
		speed := orbitSpeedK / (distance * float32(math.Sqrt(float64(distance))))

		pivot, err := s.hierarchy.Add(transform.NoParent, transform.Identity().RotateY(phase))
		if err != nil {
			return err
		}
		anchor, err := s.hierarchy.Add(pivot, transform.FromPosition(distance, 0, 0))
		if err != nil {
			return err
		}
		leaf, err := s.hierarchy.Add(anchor, transform.Identity())
		if err != nil {
			return err
		}
		s.anim.AddOrbit(pivot, speed)
		s.anim.AddOrbit(leaf, 0.5+rng.Float32())
		anchors = append(anchors, anchor)

		s.bodies = append(s.bodies, Body{
			Kind:   BodyPlanet,
			Name:   fmt.Sprintf("planet-%d", i+1),
			Node:   leaf,
			Radius: 0.6 + rng.Float32()*0.8,
			Color:  planetPalette[i%len(planetPalette)],
		})
	}

	if !s.station {
		return nil
	}
	return s.buildStation(anchors[s.stationHost])
}

func (s *sceneImpl) buildStation(host transform.NodeID) error {
	pivot, err := s.hierarchy.Add(host, transform.Identity())
	if err != nil {
		return err
	}
	leaf, err := s.hierarchy.Add(pivot, transform.FromPosition(stationOrbit, 0.5, 0))
	if err != nil {
		return err
	}
	s.anim.AddOrbit(pivot, stationSpeed)
	s.bodies = append(s.bodies, Body{Kind: BodyStation, Name: "station", Node: leaf, Radius: 0.35, Color: common.RGB(0.75, 0.78, 0.82)})

	details := []struct {
		x, y, z float32
		color   common.Color
		phase   float32
	}{
		{0.4, 0, 0, common.RGB(1, 0.1, 0.1), 0},
		{-0.4, 0, 0, common.RGB(0.1, 1, 0.2), 0.5},
		{0, 0.3, 0, common.RGB(1, 1, 1), 0.25},
	}
	for _, d := range details {
		node, err := s.hierarchy.Add(leaf, transform.FromPosition(d.x, d.y, d.z))
		if err != nil {
			return err
		}
		s.lights = append(s.lights, light.NewLight(node,
			light.WithColor(d.color),
			light.WithIntensity(2),
			light.WithRange(3),
			light.WithBlink(1, d.phase, 0.3),
		))
	}
	return nil
}
