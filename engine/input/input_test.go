package input

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestKeySet(t *testing.T) {
	s := NewKeySet(KeyK, KeyArrowLeft)
	if !s.Has(KeyK) || !s.Has(KeyArrowLeft) {
		t.Fatalf("NewKeySet lost keys: %b", s)
	}
	if s.Has(KeyJ) {
		t.Error("Has(KeyJ) = true")
	}
	s = s.Without(KeyK)
	if s.Has(KeyK) {
		t.Error("Without(KeyK) kept K")
	}
	if !s.Any(KeyH, KeyArrowLeft) {
		t.Error("Any(H, Left) = false")
	}
	if s.With(keyCount) != s {
		t.Error("With(out of range) changed the set")
	}
}

func TestKeyFromCode(t *testing.T) {
	tests := []struct {
		code int
		want Key
		ok   bool
	}{
		{common.KeyUp, KeyArrowUp, true},
		{common.KeyLeft, KeyArrowLeft, true},
		{common.KeyK, KeyK, true},
		{common.KeyL, KeyL, true},
		{common.KeyQ, 0, false},
	}
	for _, tt := range tests {
		got, ok := KeyFromCode(tt.code)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("KeyFromCode(%d) = %v, %v; want %v, %v", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFrameNDC(t *testing.T) {
	f := Frame{Cursor: mgl32.Vec2{0, 0}, HasCursor: true, Width: 200, Height: 100}
	if got := f.NDC(); got != (mgl32.Vec2{-1, 1}) {
		t.Errorf("top-left NDC = %v, want {-1,1}", got)
	}
	f.Cursor = mgl32.Vec2{100, 50}
	if got := f.NDC(); got != (mgl32.Vec2{0, 0}) {
		t.Errorf("centre NDC = %v, want {0,0}", got)
	}
	f.Width = 0
	if f.CursorUsable() {
		t.Error("CursorUsable with zero width")
	}
}

func TestRecorderSnapshotDrainsScroll(t *testing.T) {
	r := NewRecorder(800, 600)
	r.CursorMoved(10, 20)
	r.Scroll(1)
	r.Scroll(-2)
	r.KeyCode(common.KeyJ, true)
	r.KeyCode(common.KeyQ, true)

	f := r.Snapshot()
	if !f.HasCursor || f.Cursor != (mgl32.Vec2{10, 20}) {
		t.Errorf("cursor = %v %v", f.Cursor, f.HasCursor)
	}
	if len(f.Scroll) != 2 || f.Scroll[0] != 1 || f.Scroll[1] != -2 {
		t.Errorf("Scroll = %v, want [1 -2]", f.Scroll)
	}
	if f.Keys != NewKeySet(KeyJ) {
		t.Errorf("Keys = %b, want J only", f.Keys)
	}

	r.KeyCode(common.KeyJ, false)
	r.CursorLeft()
	r.Resize(0, 0)
	f = r.Snapshot()
	if len(f.Scroll) != 0 {
		t.Errorf("second Scroll = %v, want empty", f.Scroll)
	}
	if f.HasCursor || f.Keys != 0 || f.Width != 0 {
		t.Errorf("second frame = %+v", f)
	}
}

func TestRecorderConcurrentEvents(t *testing.T) {
	r := NewRecorder(1, 1)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Scroll(1)
			}
		}()
	}
	wg.Wait()
	if got := len(r.Snapshot().Scroll); got != 800 {
		t.Errorf("scroll events = %d, want 800", got)
	}
}
