package soak

import "github.com/Carmen-Shannon/crystal-space/engine/camera"

// RunnerBuilderOption is a function that configures a Runner during construction.
type RunnerBuilderOption func(*Runner)

// WithScenes sets the number of scenes soaked.
//
// Parameters:
//   - n: scene count
//
// Returns:
//   - RunnerBuilderOption: a function that applies the scene count
func WithScenes(n int) RunnerBuilderOption {
	return func(r *Runner) {
		r.scenes = max(n, 0)
	}
}

// WithTicks sets the number of ticks per scene.
//
// Parameters:
//   - n: tick count
//
// Returns:
//   - RunnerBuilderOption: a function that applies the tick count
func WithTicks(n int) RunnerBuilderOption {
	return func(r *Runner) {
		r.ticks = max(n, 0)
	}
}

// WithWorkers sets the pool size. Non-positive values keep one worker per CPU.
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - RunnerBuilderOption: a function that applies the worker count
func WithWorkers(n int) RunnerBuilderOption {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithBaseSeed sets the seed of the first scene; scene i uses base+i.
//
// Parameters:
//   - seed: the first seed
//
// Returns:
//   - RunnerBuilderOption: a function that applies the seed
func WithBaseSeed(seed uint64) RunnerBuilderOption {
	return func(r *Runner) {
		r.baseSeed = seed
	}
}

// WithPlanetCount sets the planets per scene.
func WithPlanetCount(n int) RunnerBuilderOption {
	return func(r *Runner) {
		r.planets = max(n, 0)
	}
}

// WithControllerOptions sets the options of every scene's camera controller.
//
// Parameters:
//   - options: camera controller options
//
// Returns:
//   - RunnerBuilderOption: a function that applies the controller options
func WithControllerOptions(options ...camera.CameraControllerOption) RunnerBuilderOption {
	return func(r *Runner) {
		r.controllerOptions = options
	}
}

// WithLogf replaces log.Printf for the run summary.
func WithLogf(logf func(format string, args ...any)) RunnerBuilderOption {
	return func(r *Runner) {
		r.logf = logf
	}
}
