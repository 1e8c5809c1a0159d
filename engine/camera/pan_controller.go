package camera

import (
	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultPanSpeed   float32 = 30
	DefaultEdgeMargin float32 = 20
)

// PanController translates the camera along its own right and up axes from held keys and
// from the cursor resting near a window edge.
type PanController struct {
	// Speed is the pan rate in world units per second at scale 1.
	Speed float32
	// EdgeMargin is the width in pixels of the edge-scroll band.
	EdgeMargin float32
}

// DefaultPanController returns a pan controller with speed 30 and a 20 pixel edge margin.
func DefaultPanController() PanController {
	return PanController{Speed: DefaultPanSpeed, EdgeMargin: DefaultEdgeMargin}
}

// Intent sums the keyboard and edge-scroll contributions of frame.
// X is positive to the right and Y positive upward; each axis of each source contributes
// at most one unit.
//
// Parameters:
//   - frame: the tick's input
//
// Returns:
//   - mgl32.Vec2: the unnormalized pan intent
func (p PanController) Intent(frame input.Frame) mgl32.Vec2 {
	var pan mgl32.Vec2
	keys := frame.Keys
	if keys.Any(input.KeyArrowUp, input.KeyK) {
		pan[1]++
	}
	if keys.Any(input.KeyArrowDown, input.KeyJ) {
		pan[1]--
	}
	if keys.Any(input.KeyArrowLeft, input.KeyH) {
		pan[0]--
	}
	if keys.Any(input.KeyArrowRight, input.KeyL) {
		pan[0]++
	}

	if frame.HasCursor {
		x, y := frame.Cursor[0], frame.Cursor[1]
		if x < p.EdgeMargin {
			pan[0]--
		} else if x > frame.Width-p.EdgeMargin {
			pan[0]++
		}
		// screen Y grows downward, so the top band pans up
		if y < p.EdgeMargin {
			pan[1]++
		} else if y > frame.Height-p.EdgeMargin {
			pan[1]--
		}
	}
	return pan
}

// Direction returns the unit pan direction for frame, or zero if the intents cancel.
func (p PanController) Direction(frame input.Frame) mgl32.Vec2 {
	return common.NormalizeOrZero2(p.Intent(frame))
}

// Apply moves the camera by Speed * scale * dt along the pan direction.
//
// Parameters:
//   - cam: the camera to pan
//   - frame: the tick's input
//   - dt: elapsed time in seconds
//
// Returns:
//   - bool: true if the camera moved
func (p PanController) Apply(cam Camera, frame input.Frame, dt float32) bool {
	dir := p.Direction(frame)
	if dir == (mgl32.Vec2{}) {
		return false
	}
	move := dir.Mul(p.Speed * cam.Scale() * dt)
	cam.Translate(cam.Right().Mul(move[0]).Add(cam.Up().Mul(move[1])))
	return true
}
