// Package terminal runs the engine as a bubbletea program, drawing the scene with coloured glyphs.
package terminal

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/crystal-space/engine"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/Carmen-Shannon/crystal-space/engine/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// keyNames maps bubbletea key strings onto navigation keys.
var keyNames = map[string]input.Key{
	"up":    input.KeyArrowUp,
	"down":  input.KeyArrowDown,
	"left":  input.KeyArrowLeft,
	"right": input.KeyArrowRight,
	"h":     input.KeyH,
	"j":     input.KeyJ,
	"k":     input.KeyK,
	"l":     input.KeyL,
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

// tickMsg drives one engine step.
type tickMsg time.Time

// Model is the bubbletea model wrapping an Engine.
//
// Terminals report key presses (and auto-repeats) but never releases, so a key counts as
// held until holdWindow has passed since its last press.
type Model struct {
	engine   engine.Engine
	recorder *input.Recorder

	cols, rows int
	lastPress  map[input.Key]time.Time
	lastTick   time.Time

	holdWindow time.Duration
	interval   time.Duration
	now        func() time.Time
}

var _ tea.Model = &Model{}

// NewModel creates a Model for e.
// Defaults: 80x24 terminal, keys held for 200ms after each press, ticks every 1/30s.
//
// Parameters:
//   - e: the engine to drive
//   - options: functional options to configure the model
//
// Returns:
//   - *Model: the new model
func NewModel(e engine.Engine, options ...ModelBuilderOption) *Model {
	m := &Model{
		engine:     e,
		cols:       80,
		rows:       24,
		lastPress:  make(map[input.Key]time.Time),
		holdWindow: 200 * time.Millisecond,
		interval:   time.Second / 30,
		now:        time.Now,
	}
	for _, option := range options {
		option(m)
	}
	m.recorder = input.NewRecorder(m.viewSize())
	m.lastTick = m.now()
	return m
}

// Run starts the program on the alternate screen with mouse motion reporting.
//
// Returns:
//   - error: error reported by bubbletea
func (m *Model) Run() error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		if k, ok := keyNames[msg.String()]; ok {
			m.lastPress[k] = m.now()
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.recorder.Scroll(1)
		case tea.MouseButtonWheelDown:
			m.recorder.Scroll(-1)
		}
		// the cursor points at the centre of the cell
		m.recorder.CursorMoved(float32(msg.X)+0.5, (float32(msg.Y)+0.5)*cellAspect)

	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.recorder.Resize(m.viewSize())

	case tickMsg:
		m.step(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) View() string {
	w, h := m.viewSize()
	raster := Rasterize(view.Build(m.engine.Scene(), m.engine.Camera(), w, h), m.cols, max(m.rows-1, 0))
	cam := m.engine.Camera()
	p := cam.Position()
	status := fmt.Sprintf("scale %.2f  pos (%.1f, %.1f, %.1f)  arrows/hjkl pan  wheel zoom  q quit",
		cam.Scale(), p[0], p[1], p[2])
	return raster.String() + "\n" + statusStyle.Render(status)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// step advances the engine to now using the keys still inside their hold window.
func (m *Model) step(now time.Time) {
	dt := float32(now.Sub(m.lastTick).Seconds())
	m.lastTick = now
	if dt < 0 {
		dt = 0
	}
	m.recorder.SetKeys(m.heldKeys(now))
	m.engine.Step(m.recorder.Snapshot(), dt)
}

func (m *Model) heldKeys(now time.Time) input.KeySet {
	var keys input.KeySet
	for k, at := range m.lastPress {
		if now.Sub(at) < m.holdWindow {
			keys = keys.With(k)
		} else {
			delete(m.lastPress, k)
		}
	}
	return keys
}

// viewSize is the pixel-space size of the drawing area, one row reserved for the status line.
func (m *Model) viewSize() (float32, float32) {
	return float32(m.cols), float32(max(m.rows-1, 0) * cellAspect)
}
