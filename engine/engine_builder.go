package engine

import (
	"time"

	"github.com/Carmen-Shannon/crystal-space/engine/camera"
	"github.com/Carmen-Shannon/crystal-space/engine/profiler"
	"github.com/Carmen-Shannon/crystal-space/engine/scene"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler sets the profiler used when profiling is enabled.
//
// Parameters:
//   - p: a configured profiler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the Run loop rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate.Store(int64(float64(time.Second) / fps))
	}
}

// WithScene sets the scene the engine drives.
//
// Parameters:
//   - s: the scene
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithCamera sets the camera the engine drives.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithController sets the camera navigation pipeline.
//
// Parameters:
//   - cc: the controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(cc camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = cc
	}
}

// WithInputSource sets the source Run samples every tick.
//
// Parameters:
//   - src: the input source
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInputSource(src InputSource) EngineBuilderOption {
	return func(e *engine) {
		e.source = src
	}
}

// WithRenderer sets the renderer Run calls after every tick.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r FrameRenderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithTickCallback registers a function called at the end of every Step.
//
// Parameters:
//   - callback: receives the tick's delta time and the camera update result
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickCallback(callback func(deltaTime float32, result camera.UpdateResult)) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}
