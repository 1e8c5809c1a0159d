package scene

import (
	"errors"
	"math"
	"testing"
)

func TestNewSceneDefaults(t *testing.T) {
	s, err := NewScene()
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	if s.Star().Kind != BodyStar {
		t.Fatalf("first body is %v, want star", s.Star().Kind)
	}
	if got := len(s.Planets()); got != 5 {
		t.Errorf("planets = %d, want 5", got)
	}
	if _, ok := s.Station(); !ok {
		t.Error("default scene has no station")
	}
	if got := len(s.Lights()); got != 4 {
		t.Errorf("lights = %d, want star + 3 beacons", got)
	}
	// 1 star + 5*(pivot, anchor, leaf) + station pivot, leaf and 3 light nodes
	if got := s.Hierarchy().Len(); got != 21 {
		t.Errorf("nodes = %d, want 21", got)
	}
}

func TestPlanetDistances(t *testing.T) {
	s, err := NewScene(WithSeed(7), WithPlanetCount(4), WithStation(false))
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	idx := s.Index()
	if len(idx.PlanetPositions()) != 4 {
		t.Fatalf("index has %d planets", len(idx.Planets))
	}
	if d := idx.Planets[0].Len(); math.Abs(float64(d)-8) > 1e-4 {
		t.Errorf("innermost orbit = %v, want 8", d)
	}
	for i := 1; i < len(idx.Planets); i++ {
		prev, cur := idx.Planets[i-1].Len(), idx.Planets[i].Len()
		if cur-prev < minOrbitStep-1e-4 || cur-prev > minOrbitStep+orbitStepRange+1e-4 {
			t.Errorf("orbit step %d = %v", i, cur-prev)
		}
		if y := idx.Planets[i][1]; y != 0 {
			t.Errorf("planet %d off the ground plane: y = %v", i, y)
		}
	}

	orbits := s.Animator().Orbits()
	// pivot orbits are at even positions, spins at odd positions
	for i := 2; i < len(orbits); i += 2 {
		if orbits[i].Speed >= orbits[i-2].Speed {
			t.Errorf("orbit %d speed %v not slower than %v", i/2, orbits[i].Speed, orbits[i-2].Speed)
		}
	}
}

func TestSceneIsDeterministic(t *testing.T) {
	a, _ := NewScene(WithSeed(42))
	b, _ := NewScene(WithSeed(42))
	c, _ := NewScene(WithSeed(43))
	for i := 0; i < 30; i++ {
		a.Update(1.0 / 60)
		b.Update(1.0 / 60)
		c.Update(1.0 / 60)
	}
	pa, pb, pc := a.Index().Planets, b.Index().Planets, c.Index().Planets
	same := true
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("planet %d differs for equal seeds: %v vs %v", i, pa[i], pb[i])
		}
		if pa[i] != pc[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}

func TestStationFollowsHost(t *testing.T) {
	s, err := NewScene(WithStationHost(2))
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	host := s.Planets()[2]
	station, _ := s.Station()
	want := math.Sqrt(stationOrbit*stationOrbit + 0.5*0.5)
	for i := 0; i < 10; i++ {
		s.Update(0.3)
		d := s.WorldPosition(station).Sub(s.WorldPosition(host)).Len()
		if math.Abs(float64(d)-want) > 1e-3 {
			t.Fatalf("tick %d: station %v from host, want %v", i, d, want)
		}
	}
}

func TestInvalidStationHost(t *testing.T) {
	tests := []struct {
		name    string
		options []SceneBuilderOption
	}{
		{"negative", []SceneBuilderOption{WithStationHost(-1)}},
		{"past last planet", []SceneBuilderOption{WithStationHost(5)}},
		{"no planets", []SceneBuilderOption{WithPlanetCount(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewScene(tt.options...); !errors.Is(err, ErrInvalidHost) {
				t.Errorf("err = %v, want ErrInvalidHost", err)
			}
		})
	}
	if _, err := NewScene(WithPlanetCount(0), WithStation(false)); err != nil {
		t.Errorf("empty scene without station: %v", err)
	}
}

func TestStarIntensityPulses(t *testing.T) {
	s, _ := NewScene()
	if got := s.StarIntensity(1); got != 10 {
		t.Errorf("StarIntensity at t=0 = %v, want 10", got)
	}
	s.Update(math.Pi / 4)
	if got := s.StarIntensity(1); math.Abs(float64(got)-12) > 1e-4 {
		t.Errorf("StarIntensity at peak = %v, want 12", got)
	}
}
