package window

import (
	"testing"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// newTestWindow builds a window without a platform backend.
func newTestWindow() *engineWindow {
	return &engineWindow{recorder: input.NewRecorder(0, 0)}
}

func TestHighDPISizesStaySeparate(t *testing.T) {
	w := newTestWindow()
	var surface [2]int
	w.SetResizeCallback(func(width, height int) { surface = [2]int{width, height} })

	// 2x content scale: 800x600 screen coordinates over a 1600x1200 framebuffer
	w.windowResized(800, 600)
	w.framebufferResized(1600, 1200)

	if width, height := w.Size(); width != 800 || height != 600 {
		t.Errorf("Size() = %dx%d, want 800x600", width, height)
	}
	if w.Width() != 1600 || w.Height() != 1200 {
		t.Errorf("framebuffer = %dx%d, want 1600x1200", w.Width(), w.Height())
	}
	if surface != [2]int{1600, 1200} {
		t.Errorf("resize callback got %v, want framebuffer size", surface)
	}

	// cursor at the bottom-right corner in screen coordinates
	w.recorder.CursorMoved(800, 600)
	f := w.recorder.Snapshot()
	if f.Width != 800 || f.Height != 600 {
		t.Fatalf("frame size = %vx%v, want screen coordinates", f.Width, f.Height)
	}
	if ndc := f.NDC(); !common.Near2(ndc, mgl32.Vec2{1, -1}, 1e-6) {
		t.Errorf("NDC at corner = %v, want {1,-1}", ndc)
	}
}

func TestWindowResizeLeavesSurfaceAlone(t *testing.T) {
	w := newTestWindow()
	calls := 0
	w.SetResizeCallback(func(int, int) { calls++ })

	w.windowResized(1024, 768)
	if calls != 0 {
		t.Errorf("window size change fired the surface callback %d times", calls)
	}
	if f := w.recorder.Snapshot(); f.Width != 1024 || f.Height != 768 {
		t.Errorf("frame size = %vx%v, want 1024x768", f.Width, f.Height)
	}
}
