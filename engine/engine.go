package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/crystal-space/engine/camera"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/Carmen-Shannon/crystal-space/engine/profiler"
	"github.com/Carmen-Shannon/crystal-space/engine/scene"
)

// ErrNoInputSource is returned by Run when the engine was built without an input source.
var ErrNoInputSource = errors.New("engine: no input source")

// InputSource produces one input frame per tick.
type InputSource interface {
	// Snapshot returns the input received since the previous call.
	Snapshot() input.Frame

	// Running reports whether the source is still open. Run stops once it returns false.
	Running() bool
}

// FrameRenderer draws the scene after each tick.
type FrameRenderer interface {
	// Render draws one frame.
	//
	// Parameters:
	//   - s: the scene to draw
	//   - cam: the camera to draw it through
	//   - frame: the input frame of the tick, for the window size
	//
	// Returns:
	//   - error: a failure that stops the engine
	Render(s scene.Scene, cam camera.Camera, frame input.Frame) error
}

// engine implements the Engine interface.
type engine struct {
	tickRateChannel chan time.Duration

	running atomic.Bool

	quitChannel chan struct{}
	quitOnce    sync.Once

	scene      scene.Scene
	camera     camera.Camera
	controller camera.CameraController
	source     InputSource
	renderer   FrameRenderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate atomic.Int64
	tickCallback   func(deltaTime float32, result camera.UpdateResult)
	ticks          uint64
}

// Engine drives the scene and the camera.
// Each tick advances the orbits and then runs the camera controller over the new planet
// positions. Step can be called directly by front-ends that own their loop; Run provides a
// fixed-rate loop over an InputSource.
// Not safe for concurrent use.
type Engine interface {
	// Scene returns the driven scene.
	Scene() scene.Scene

	// Camera returns the driven camera.
	Camera() camera.Camera

	// Controller returns the camera navigation pipeline.
	Controller() camera.CameraController

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the Run loop rate in ticks per second.
	// If Run is active, the change takes effect on the next tick.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// TickRate returns the interval between Run ticks.
	TickRate() time.Duration

	// SetTickCallback registers a function called at the end of every Step.
	//
	// Parameters:
	//   - callback: receives the tick's delta time and the camera update result
	SetTickCallback(callback func(deltaTime float32, result camera.UpdateResult))

	// Step runs one tick: orbit update, then zoom, pan and bounds clamp.
	//
	// Parameters:
	//   - frame: the tick's input snapshot
	//   - dt: elapsed time in seconds
	//
	// Returns:
	//   - camera.UpdateResult: which camera stages changed the camera
	Step(frame input.Frame, dt float32) camera.UpdateResult

	// Ticks returns how many times Step ran.
	Ticks() uint64

	// Run samples the input source and steps the engine at the tick rate, rendering after
	// each tick when a renderer is attached. Blocks until ctx is cancelled, Quit is called
	// or the input source stops running.
	//
	// Parameters:
	//   - ctx: cancels the loop
	//
	// Returns:
	//   - error: ErrNoInputSource, or the wrapped renderer failure
	Run(ctx context.Context) error

	// Quit stops Run. Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine with the provided options.
// Without WithScene a default procedural scene is built; without WithCamera the default
// isometric camera is used.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: error if the default scene cannot be built
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		profilingEnabled: false,
	}
	e.engineTickRate.Store(int64(time.Second / 60))

	for _, opt := range options {
		opt(e)
	}

	if e.scene == nil {
		s, err := scene.NewScene()
		if err != nil {
			return nil, fmt.Errorf("default scene: %w", err)
		}
		e.scene = s
	}
	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	if e.controller == nil {
		e.controller = camera.NewCameraController()
	}
	if e.controller.Zoom().ClampScale(e.camera) {
		log.Printf("[Engine] camera scale clamped to %.3f", e.camera.Scale())
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}
	return e, nil
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	if !e.running.Load() {
		e.engineTickRate.Store(int64(newRate))
		return
	}
	// non-blocking: replace a pending value instead of waiting for the loop
	for {
		select {
		case e.tickRateChannel <- newRate:
			return
		default:
		}
		select {
		case <-e.tickRateChannel:
		default:
		}
	}
}

func (e *engine) TickRate() time.Duration {
	return time.Duration(e.engineTickRate.Load())
}

func (e *engine) SetTickCallback(callback func(deltaTime float32, result camera.UpdateResult)) {
	e.tickCallback = callback
}

func (e *engine) Step(frame input.Frame, dt float32) camera.UpdateResult {
	e.scene.Update(dt)
	result := e.controller.Update(e.camera, frame, dt, e.scene.Index())
	e.ticks++

	if e.profilingEnabled {
		e.profiler.Tick(profiler.Sample{
			Scale:       e.camera.Scale(),
			Position:    e.camera.Position(),
			Zoomed:      result.Zoomed,
			Panned:      result.Panned,
			Constrained: result.Constrained,
		})
	}
	if e.tickCallback != nil {
		e.tickCallback(dt, result)
	}
	return result
}

func (e *engine) Ticks() uint64 {
	return e.ticks
}

func (e *engine) Run(ctx context.Context) error {
	if e.source == nil {
		return ErrNoInputSource
	}
	e.running.Store(true)
	defer e.running.Store(false)

	ticker := time.NewTicker(e.TickRate())
	defer ticker.Stop()

	lastTick := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.quitChannel:
			return nil
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate.Store(int64(newRate))
		case now := <-ticker.C:
			if e.stopped(ctx) || !e.source.Running() {
				return nil
			}
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			frame := e.source.Snapshot()
			e.Step(frame, dt)
			if err := e.render(frame); err != nil {
				return fmt.Errorf("render tick %d: %w", e.ticks, err)
			}
		}
	}
}

// stopped reports whether ctx or Quit asked the loop to end. Checked before every tick
// so a tick that is ready at the same time as a stop request is not run.
func (e *engine) stopped(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	select {
	case <-e.quitChannel:
		return true
	default:
		return false
	}
}

// render draws one frame, converting a renderer panic into an error so the caller can
// release the window.
func (e *engine) render(frame input.Frame) (err error) {
	if e.renderer == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] renderer recovered from panic: %v", r)
			err = fmt.Errorf("renderer panic: %v", r)
		}
	}()
	return e.renderer.Render(e.scene, e.camera, frame)
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}
