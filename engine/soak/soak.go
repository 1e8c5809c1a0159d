// Package soak drives many seeded scenes with random input in parallel and checks that the
// camera controller's guarantees hold after every tick.
package soak

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine"
	"github.com/Carmen-Shannon/crystal-space/engine/camera"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/Carmen-Shannon/crystal-space/engine/scene"
)

// tolerance absorbs float32 rounding in the invariant checks.
const tolerance = 1e-3

// Rule names the invariant a Violation broke.
type Rule string

const (
	RuleScaleBounds Rule = "scale-bounds"
	RuleMinHeight   Rule = "min-height"
	RuleGroundLimit Rule = "ground-limit"
	RuleSetup       Rule = "setup"
)

// Violation records one broken invariant.
type Violation struct {
	Seed   uint64
	Tick   int
	Rule   Rule
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("seed %d tick %d %s: %s", v.Seed, v.Tick, v.Rule, v.Detail)
}

// Report summarizes a soak run.
type Report struct {
	Scenes     int
	Ticks      int
	Elapsed    time.Duration
	Violations []Violation
}

// OK reports whether no invariant was broken.
func (r Report) OK() bool {
	return len(r.Violations) == 0
}

// Runner runs soak scenes on a worker pool.
type Runner struct {
	scenes   int
	ticks    int
	workers  int
	baseSeed uint64
	planets  int
	dt       float32
	width    float32
	height   float32

	controllerOptions []camera.CameraControllerOption
	logf              func(format string, args ...any)
}

// NewRunner creates a Runner.
// Defaults: 64 scenes of 600 ticks at 60 Hz in a 1280x720 window, seeds starting at 1,
// one worker per CPU, default controller.
//
// Parameters:
//   - options: functional options to configure the runner
//
// Returns:
//   - *Runner: the new runner
func NewRunner(options ...RunnerBuilderOption) *Runner {
	r := &Runner{
		scenes:   64,
		ticks:    600,
		workers:  runtime.NumCPU(),
		baseSeed: 1,
		planets:  5,
		dt:       1.0 / 60,
		width:    1280,
		height:   720,
		logf:     log.Printf,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Run soaks every scene and returns the combined report, violations ordered by seed and tick.
// Cancelling ctx stops every scene at its next tick; the report then covers the ticks run so far.
//
// Parameters:
//   - ctx: cancellation for the whole run
//
// Returns:
//   - Report: the combined result
func (r *Runner) Run(ctx context.Context) Report {
	start := time.Now()
	pool := worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		violations []Violation
		ticks      int
	)
	for i := 0; i < r.scenes; i++ {
		seed := r.baseSeed + uint64(i)
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				ran, found := r.soakScene(ctx, seed)

				mu.Lock()
				ticks += ran
				violations = append(violations, found...)
				mu.Unlock()
				return nil, nil
			},
		})
	}
	wg.Wait()

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].Seed != violations[j].Seed {
			return violations[i].Seed < violations[j].Seed
		}
		return violations[i].Tick < violations[j].Tick
	})
	report := Report{Scenes: r.scenes, Ticks: ticks, Elapsed: time.Since(start), Violations: violations}
	r.logf("[Soak] %d scenes, %d ticks in %v, %d violations", report.Scenes, report.Ticks, report.Elapsed.Round(time.Millisecond), len(violations))
	return report
}

// soakScene runs one seeded scene and returns the ticks run and the first violation of each rule.
func (r *Runner) soakScene(ctx context.Context, seed uint64) (int, []Violation) {
	s, err := scene.NewScene(scene.WithSeed(seed), scene.WithPlanetCount(r.planets), scene.WithStation(r.planets > 1))
	if err != nil {
		return 0, []Violation{{Seed: seed, Rule: RuleSetup, Detail: err.Error()}}
	}
	e, err := engine.NewEngine(
		engine.WithScene(s),
		engine.WithController(camera.NewCameraController(r.controllerOptions...)),
	)
	if err != nil {
		return 0, []Violation{{Seed: seed, Rule: RuleSetup, Detail: err.Error()}}
	}

	rng := newRand(seed)
	seen := make(map[Rule]bool)
	var found []Violation
	tick := 0
	for ; tick < r.ticks; tick++ {
		if ctx.Err() != nil {
			break
		}
		e.Step(r.randomFrame(rng), r.dt)
		for _, v := range check(e, seed, tick) {
			if !seen[v.Rule] {
				seen[v.Rule] = true
				found = append(found, v)
			}
		}
	}
	return tick, found
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed*0x2545f4914f6cdd1d))
}

// randomFrame produces bursts of scrolling, held keys and cursor movement, including
// cursor positions in the edge margins and outside the window.
func (r *Runner) randomFrame(rng *rand.Rand) input.Frame {
	f := input.Frame{Width: r.width, Height: r.height}

	for k := input.KeyArrowUp; k <= input.KeyL; k++ {
		if rng.IntN(4) == 0 {
			f.Keys = f.Keys.With(k)
		}
	}
	for n := rng.IntN(3); n > 0; n-- {
		f.Scroll = append(f.Scroll, float32(rng.IntN(11)-5)*(0.5+rng.Float32()))
	}
	if rng.IntN(10) > 0 {
		f.HasCursor = true
		f.Cursor[0] = rng.Float32()*(r.width+40) - 20
		f.Cursor[1] = rng.Float32()*(r.height+40) - 20
	}
	return f
}

// check tests the controller guarantees against the engine's camera.
func check(e engine.Engine, seed uint64, tick int) []Violation {
	cam := e.Camera()
	zoom, bounds := e.Controller().Zoom(), e.Controller().Bounds()
	var out []Violation

	if sc := cam.Scale(); sc < zoom.Min-tolerance || sc > zoom.Max+tolerance {
		out = append(out, Violation{Seed: seed, Tick: tick, Rule: RuleScaleBounds,
			Detail: fmt.Sprintf("scale %v outside [%v, %v]", sc, zoom.Min, zoom.Max)})
	}
	if y := cam.Position()[1]; y < bounds.MinHeight-tolerance {
		out = append(out, Violation{Seed: seed, Tick: tick, Rule: RuleMinHeight,
			Detail: fmt.Sprintf("height %v below %v", y, bounds.MinHeight)})
	}
	if ground, ok := bounds.GroundPoint(cam); ok {
		limit := bounds.Limit(e.Scene().Index())
		if d := common.GroundXZ(ground).Len(); d > limit*(1+tolerance) {
			out = append(out, Violation{Seed: seed, Tick: tick, Rule: RuleGroundLimit,
				Detail: fmt.Sprintf("ground distance %v beyond limit %v", d, limit)})
		}
	}
	return out
}
