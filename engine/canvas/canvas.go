// Package canvas runs the engine inside an ebiten game loop, drawing bodies as filled circles.
package canvas

import (
	"image/color"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine"
	"github.com/Carmen-Shannon/crystal-space/engine/camera"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/Carmen-Shannon/crystal-space/engine/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// keyBindings maps ebiten keys onto navigation keys.
var keyBindings = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
	ebiten.KeyH:          input.KeyH,
	ebiten.KeyJ:          input.KeyJ,
	ebiten.KeyK:          input.KeyK,
	ebiten.KeyL:          input.KeyL,
}

// canvasImpl is the implementation of the Canvas interface.
type canvasImpl struct {
	engine   engine.Engine
	recorder *input.Recorder

	title      string
	width      int
	height     int
	tps        int
	clearColor common.Color

	last camera.UpdateResult
}

// Canvas is an ebiten.Game driving an Engine one Step per ebiten update.
type Canvas interface {
	ebiten.Game

	// Run opens the window and blocks until it is closed or Esc/Q is pressed.
	//
	// Returns:
	//   - error: error reported by ebiten, nil on a normal close
	Run() error

	// LastResult returns what the most recent Step changed.
	//
	// Returns:
	//   - camera.UpdateResult: the last controller result
	LastResult() camera.UpdateResult
}

var _ Canvas = &canvasImpl{}

// inputState is one poll of ebiten's input state.
type inputState struct {
	pressed          func(ebiten.Key) bool
	wheelY           float64
	cursorX, cursorY int
	focused          bool
}

// NewCanvas creates a Canvas for e.
// Defaults: title "Crystal Space Iso", 1280x720, 60 TPS, near-black blue background.
//
// Parameters:
//   - e: the engine to drive
//   - options: functional options to configure the canvas
//
// Returns:
//   - Canvas: the new canvas
func NewCanvas(e engine.Engine, options ...CanvasBuilderOption) Canvas {
	c := &canvasImpl{
		engine:     e,
		title:      "Crystal Space Iso",
		width:      1280,
		height:     720,
		tps:        60,
		clearColor: common.RGB(0, 0, 0.05),
	}
	for _, option := range options {
		option(c)
	}
	c.recorder = input.NewRecorder(float32(c.width), float32(c.height))
	return c
}

func (c *canvasImpl) Run() error {
	ebiten.SetWindowTitle(c.title)
	ebiten.SetWindowSize(c.width, c.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(c.tps)
	return ebiten.RunGame(c)
}

func (c *canvasImpl) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	_, wheelY := ebiten.Wheel()
	x, y := ebiten.CursorPosition()
	c.record(inputState{
		pressed: ebiten.IsKeyPressed,
		wheelY:  wheelY,
		cursorX: x,
		cursorY: y,
		focused: ebiten.IsFocused(),
	})
	c.step()
	return nil
}

// record pushes one poll into the recorder.
// ebiten has no cursor-leave event, so a cursor outside the layout or an unfocused window counts as left.
func (c *canvasImpl) record(st inputState) {
	var keys input.KeySet
	for ek, k := range keyBindings {
		if st.pressed(ek) {
			keys = keys.With(k)
		}
	}
	c.recorder.SetKeys(keys)
	if st.wheelY != 0 {
		c.recorder.Scroll(float32(st.wheelY))
	}
	inside := st.cursorX >= 0 && st.cursorY >= 0 && st.cursorX < c.width && st.cursorY < c.height
	if st.focused && inside {
		c.recorder.CursorMoved(float32(st.cursorX), float32(st.cursorY))
	} else {
		c.recorder.CursorLeft()
	}
}

func (c *canvasImpl) step() {
	c.last = c.engine.Step(c.recorder.Snapshot(), 1/float32(c.tps))
}

func (c *canvasImpl) Draw(screen *ebiten.Image) {
	r, g, b, a := c.clearColor.RGBA8()
	screen.Fill(color.RGBA{R: r, G: g, B: b, A: a})

	w, h := float32(c.width), float32(c.height)
	for _, q := range view.Build(c.engine.Scene(), c.engine.Camera(), w, h) {
		x, y, radius := q.Pixels(w, h)
		vector.DrawFilledCircle(screen, x, y, radius, toRGBA(q.Color), true)
	}
}

func (c *canvasImpl) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != c.width || outsideHeight != c.height {
		c.width, c.height = outsideWidth, outsideHeight
		c.recorder.Resize(float32(outsideWidth), float32(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (c *canvasImpl) LastResult() camera.UpdateResult {
	return c.last
}

func toRGBA(col common.Color) color.RGBA {
	r, g, b, a := col.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: a}
}
