package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/Carmen-Shannon/crystal-space/engine/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl32"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestModel(t *testing.T) (*Model, *fakeClock) {
	t.Helper()
	e, err := engine.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	clock := &fakeClock{t: time.Unix(100, 0)}
	return NewModel(e, WithSize(80, 25), WithHoldWindow(200*time.Millisecond), WithClock(clock.now)), clock
}

func TestKeyHeldWithinWindow(t *testing.T) {
	m, clock := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})

	clock.t = clock.t.Add(150 * time.Millisecond)
	if got, want := m.heldKeys(clock.t), input.NewKeySet(input.KeyArrowRight, input.KeyK); got != want {
		t.Errorf("held keys = %v, want %v", got, want)
	}

	clock.t = clock.t.Add(100 * time.Millisecond)
	if got := m.heldKeys(clock.t); got.Any(input.KeyArrowRight, input.KeyK) {
		t.Errorf("keys still held after the window: %v", got)
	}
}

func TestTickPansWhileHeld(t *testing.T) {
	m, clock := newTestModel(t)
	before := m.engine.Camera().Position()

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	clock.t = clock.t.Add(50 * time.Millisecond)
	_, cmd := m.Update(tickMsg(clock.t))
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	moved := m.engine.Camera().Position()
	if moved == before {
		t.Fatal("camera did not pan while key held")
	}

	clock.t = clock.t.Add(time.Second)
	m.Update(tickMsg(clock.t))
	clock.t = clock.t.Add(50 * time.Millisecond)
	settled := m.engine.Camera().Position()
	m.Update(tickMsg(clock.t))
	if got := m.engine.Camera().Position(); !common.Near3(got, settled, 1e-3) {
		t.Errorf("camera kept moving after release: %v -> %v", settled, got)
	}
}

func TestWheelZooms(t *testing.T) {
	m, clock := newTestModel(t)
	m.Update(tea.MouseMsg{X: 40, Y: 12, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	clock.t = clock.t.Add(30 * time.Millisecond)
	m.Update(tickMsg(clock.t))

	if got := m.engine.Camera().Scale(); mgl32.Abs(got-0.9) > 1e-4 {
		t.Errorf("Scale after one wheel notch = %v, want 0.9", got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m, _ := newTestModel(t)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%q returned no command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q did not quit", msg.String())
		}
	}
}

func TestWindowSizeResizesView(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 41})
	if w, h := m.viewSize(); w != 120 || h != 80 {
		t.Errorf("viewSize = %vx%v, want 120x80", w, h)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 41 {
		t.Errorf("View has %d lines, want 41", len(lines))
	}
}

func TestRasterize(t *testing.T) {
	red := common.RGB(1, 0, 0)
	quads := []view.Quad{
		{Center: mgl32.Vec2{0, 0}, HalfSize: mgl32.Vec2{0.2, 0.2}, Color: red},
		{Center: mgl32.Vec2{0.925, 0.9}, HalfSize: mgl32.Vec2{0.001, 0.001}, Color: red},
		{Center: mgl32.Vec2{3, 3}, HalfSize: mgl32.Vec2{0.1, 0.1}, Color: red},
	}
	r := Rasterize(quads, 40, 10)
	if len(r) != 10 || len(r[0]) != 40 {
		t.Fatalf("raster size = %dx%d, want 40x10", len(r[0]), len(r))
	}
	if r[5][20].Glyph != '●' {
		t.Errorf("centre cell = %q, want a disc", r[5][20].Glyph)
	}
	// tiny quads still mark their centre cell
	if r[0][38].Glyph != '•' {
		t.Errorf("corner cell = %q, want a dot", r[0][38].Glyph)
	}

	filled := 0
	for _, row := range r {
		for _, c := range row {
			if c.Glyph != ' ' {
				filled++
			}
		}
	}
	if filled < 2 || filled > 40 {
		t.Errorf("filled cells = %d, want a small disc and a dot", filled)
	}
}
