package soak

import (
	"context"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/crystal-space/engine"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func quiet(string, ...any) {}

func TestRunHoldsInvariants(t *testing.T) {
	r := NewRunner(WithScenes(8), WithTicks(240), WithWorkers(4), WithLogf(quiet))
	report := r.Run(context.Background())

	if report.Scenes != 8 || report.Ticks != 8*240 {
		t.Errorf("report covers %d scenes, %d ticks, want 8 and 1920", report.Scenes, report.Ticks)
	}
	if !report.OK() {
		for _, v := range report.Violations {
			t.Error(v)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report := NewRunner(WithScenes(3), WithTicks(100), WithLogf(quiet)).Run(ctx)
	if report.Ticks != 0 {
		t.Errorf("Ticks = %d after cancel, want 0", report.Ticks)
	}
}

func TestRunLogsSummary(t *testing.T) {
	var line string
	NewRunner(WithScenes(1), WithTicks(1), WithLogf(func(format string, args ...any) {
		line = format
	})).Run(context.Background())
	if !strings.HasPrefix(line, "[Soak]") {
		t.Errorf("summary = %q, want [Soak] prefix", line)
	}
}

func TestCheckReportsBrokenCamera(t *testing.T) {
	e, err := engine.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	cam := e.Camera()
	cam.SetScale(9)
	cam.SetPosition(cam.Position().Add(mgl32.Vec3{500, -40, 0}))

	rules := make(map[Rule]bool)
	for _, v := range check(e, 1, 0) {
		rules[v.Rule] = true
	}
	for _, want := range []Rule{RuleScaleBounds, RuleMinHeight, RuleGroundLimit} {
		if !rules[want] {
			t.Errorf("missing %s violation", want)
		}
	}

	if got := check(e, 1, 0); len(got) == 0 {
		t.Fatal("check is not repeatable")
	}
	e.Step(input.Frame{Width: 1280, Height: 720}, 0)
	cam.SetScale(1)
	if got := check(e, 1, 1); len(got) != 0 {
		t.Errorf("violations after constrain: %v", got)
	}
}

func TestRandomFrameIsSeeded(t *testing.T) {
	r := NewRunner()
	a, b := newRand(3), newRand(3)
	for i := 0; i < 20; i++ {
		fa, fb := r.randomFrame(a), r.randomFrame(b)
		if fa.Keys != fb.Keys || fa.Cursor != fb.Cursor || len(fa.Scroll) != len(fb.Scroll) {
			t.Fatalf("frame %d differs for the same seed", i)
		}
	}
}
