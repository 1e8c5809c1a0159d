// Package config loads runtime settings from CRYSTAL_SPACE_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine"
	"github.com/Carmen-Shannon/crystal-space/engine/camera"
	"github.com/Carmen-Shannon/crystal-space/engine/scene"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name read by Load.
const EnvPrefix = "CRYSTAL_SPACE_"

// ErrInvalidClearColor is returned when CLEAR_COLOR is not 3 or 4 components in [0, 1].
var ErrInvalidClearColor = errors.New("invalid clear color")

// Config holds every environment-driven setting of the binaries.
type Config struct {
	WindowTitle  string `env:"WINDOW_TITLE" envDefault:"Crystal Space Iso"`
	WindowWidth  int    `env:"WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int    `env:"WINDOW_HEIGHT" envDefault:"720"`

	TickRate  float64 `env:"TICK_RATE" envDefault:"60"`
	Profiling bool    `env:"PROFILING" envDefault:"false"`

	Seed    uint64 `env:"SEED" envDefault:"1"`
	Planets int    `env:"PLANETS" envDefault:"5"`
	Station bool   `env:"STATION" envDefault:"true"`

	ZoomSpeed  float32 `env:"ZOOM_SPEED" envDefault:"0.5"`
	ZoomMin    float32 `env:"ZOOM_MIN" envDefault:"0.2"`
	ZoomMax    float32 `env:"ZOOM_MAX" envDefault:"5"`
	PanSpeed   float32 `env:"PAN_SPEED" envDefault:"30"`
	EdgeMargin float32 `env:"EDGE_MARGIN" envDefault:"20"`

	ClearColor []float32 `env:"CLEAR_COLOR" envDefault:"0,0,0.05" envSeparator:","`

	SoakScenes  int `env:"SOAK_SCENES" envDefault:"64"`
	SoakTicks   int `env:"SOAK_TICKS" envDefault:"600"`
	SoakWorkers int `env:"SOAK_WORKERS" envDefault:"0"`
}

// Load parses the environment into a Config and validates it.
//
// Returns:
//   - Config: the parsed configuration
//   - error: error if a variable cannot be parsed or a value is out of range
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that the parser alone cannot reject.
//
// Returns:
//   - error: the first invalid setting found, or nil
func (c Config) Validate() error {
	if _, err := c.Clear(); err != nil {
		return err
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate %v must be positive", c.TickRate)
	}
	if c.Planets < 0 {
		return fmt.Errorf("planet count %d must not be negative", c.Planets)
	}
	if c.ZoomMin <= 0 || c.ZoomMax <= 0 {
		return fmt.Errorf("zoom bounds [%v, %v] must be positive", c.ZoomMin, c.ZoomMax)
	}
	return nil
}

// Clear returns the parsed clear colour.
//
// Returns:
//   - common.Color: the clear colour, opaque unless a fourth component is given
//   - error: ErrInvalidClearColor wrapped with the offending value
func (c Config) Clear() (common.Color, error) {
	v := c.ClearColor
	if len(v) != 3 && len(v) != 4 {
		return common.Color{}, fmt.Errorf("%w: %v has %d components", ErrInvalidClearColor, v, len(v))
	}
	for _, x := range v {
		if x < 0 || x > 1 {
			return common.Color{}, fmt.Errorf("%w: component %v outside [0, 1]", ErrInvalidClearColor, x)
		}
	}
	col := common.RGB(v[0], v[1], v[2])
	if len(v) == 4 {
		col.A = v[3]
	}
	return col, nil
}

// Workers returns the soak worker count, resolving 0 to the number of CPUs.
func (c Config) Workers() int {
	if c.SoakWorkers > 0 {
		return c.SoakWorkers
	}
	return runtime.NumCPU()
}

// SceneOptions converts the scene settings into scene builder options.
func (c Config) SceneOptions() []scene.SceneBuilderOption {
	options := []scene.SceneBuilderOption{
		scene.WithSeed(c.Seed),
		scene.WithPlanetCount(c.Planets),
		scene.WithStation(c.Station && c.Planets > 0),
	}
	// the station orbits the second planet, or the only one
	if c.Planets == 1 {
		options = append(options, scene.WithStationHost(0))
	}
	return options
}

// ControllerOptions converts the camera settings into controller options.
func (c Config) ControllerOptions() []camera.CameraControllerOption {
	return []camera.CameraControllerOption{
		camera.WithZoomSpeed(c.ZoomSpeed),
		camera.WithZoomBounds(c.ZoomMin, c.ZoomMax),
		camera.WithPanSpeed(c.PanSpeed),
		camera.WithEdgeMargin(c.EdgeMargin),
	}
}

// NewEngine builds the scene and controller described by c and wraps them in an Engine.
//
// Parameters:
//   - extra: options appended after the configured ones, e.g. input source and renderer
//
// Returns:
//   - engine.Engine: the configured engine
//   - error: error if the scene cannot be built
func (c Config) NewEngine(extra ...engine.EngineBuilderOption) (engine.Engine, error) {
	s, err := scene.NewScene(c.SceneOptions()...)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	options := []engine.EngineBuilderOption{
		engine.WithScene(s),
		engine.WithController(camera.NewCameraController(c.ControllerOptions()...)),
		engine.WithTickRate(c.TickRate),
		engine.WithProfiling(c.Profiling),
	}
	return engine.NewEngine(append(options, extra...)...)
}
