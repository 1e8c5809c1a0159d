package profiler

import (
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestTickReportsOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var lines []string
	var reports []Report
	p := NewProfiler(
		WithClock(clock.now),
		WithLogf(func(format string, args ...any) { lines = append(lines, format) }),
		WithReportHandler(func(r Report) { reports = append(reports, r) }),
	)

	for i := 0; i < 49; i++ {
		clock.t = clock.t.Add(20 * time.Millisecond)
		if p.Tick(Sample{Zoomed: i%10 == 0, Panned: true}) {
			t.Fatalf("reported early at tick %d", i)
		}
	}
	clock.t = clock.t.Add(20 * time.Millisecond)
	if !p.Tick(Sample{Scale: 0.5, Position: mgl32.Vec3{1, 2, 3}, Constrained: true}) {
		t.Fatal("no report after one second")
	}

	if len(lines) != 1 || !strings.HasPrefix(lines[0], "[Profiler]") {
		t.Fatalf("log lines = %q", lines)
	}
	r := reports[0]
	if r.Zooms != 5 || r.Pans != 49 || r.Clamps != 1 {
		t.Errorf("counts = %d/%d/%d, want 5/49/1", r.Zooms, r.Pans, r.Clamps)
	}
	if r.TicksPerSecond < 49.9 || r.TicksPerSecond > 50.1 {
		t.Errorf("TicksPerSecond = %v, want 50", r.TicksPerSecond)
	}
	if r.Scale != 0.5 || p.Last().Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("last sample not reported: %+v", r)
	}

	clock.t = clock.t.Add(20 * time.Millisecond)
	if p.Tick(Sample{}) {
		t.Error("reported again right after flushing")
	}
}
