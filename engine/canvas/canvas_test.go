package canvas

import (
	"testing"

	"github.com/Carmen-Shannon/crystal-space/engine"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestCanvas(t *testing.T) *canvasImpl {
	t.Helper()
	e, err := engine.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return NewCanvas(e, WithSize(800, 600), WithTPS(50)).(*canvasImpl)
}

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestRecordMapsKeysAndCursor(t *testing.T) {
	c := newTestCanvas(t)
	c.record(inputState{
		pressed: pressed(ebiten.KeyArrowUp, ebiten.KeyL, ebiten.KeySpace),
		wheelY:  1.5,
		cursorX: 400,
		cursorY: 300,
		focused: true,
	})

	f := c.recorder.Snapshot()
	if want := input.NewKeySet(input.KeyArrowUp, input.KeyL); f.Keys != want {
		t.Errorf("Keys = %v, want %v", f.Keys, want)
	}
	if len(f.Scroll) != 1 || f.Scroll[0] != 1.5 {
		t.Errorf("Scroll = %v, want [1.5]", f.Scroll)
	}
	if !f.HasCursor || f.Cursor[0] != 400 || f.Cursor[1] != 300 {
		t.Errorf("cursor = %v (has %v), want {400,300}", f.Cursor, f.HasCursor)
	}
	if f.Width != 800 || f.Height != 600 {
		t.Errorf("size = %vx%v, want 800x600", f.Width, f.Height)
	}
}

func TestRecordCursorOutside(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		focused bool
	}{
		{"left of window", -1, 10, true},
		{"below window", 10, 600, true},
		{"unfocused", 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t)
			c.record(inputState{pressed: pressed(), cursorX: tt.x, cursorY: tt.y, focused: tt.focused})
			if f := c.recorder.Snapshot(); f.HasCursor {
				t.Errorf("HasCursor = true at (%d, %d) focused=%v", tt.x, tt.y, tt.focused)
			}
		})
	}
}

func TestStepPansCamera(t *testing.T) {
	c := newTestCanvas(t)
	before := c.engine.Camera().Position()
	c.record(inputState{pressed: pressed(ebiten.KeyArrowRight), cursorX: 400, cursorY: 300, focused: true})
	c.step()

	if !c.LastResult().Panned {
		t.Fatal("step with a held arrow key did not pan")
	}
	if c.engine.Camera().Position() == before {
		t.Error("camera did not move")
	}
}

func TestLayoutResizesRecorder(t *testing.T) {
	c := newTestCanvas(t)
	if w, h := c.Layout(1024, 512); w != 1024 || h != 512 {
		t.Fatalf("Layout = %dx%d, want 1024x512", w, h)
	}
	if f := c.recorder.Snapshot(); f.Width != 1024 || f.Height != 512 {
		t.Errorf("recorder size = %vx%v, want 1024x512", f.Width, f.Height)
	}
}
