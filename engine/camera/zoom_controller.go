package camera

import (
	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultZoomSpeed float32 = 0.5
	DefaultMinZoom   float32 = 0.2
	DefaultMaxZoom   float32 = 5

	// zoomStep converts one wheel unit times ZoomSpeed into a scale delta.
	zoomStep float32 = 0.2
	// zoomEpsilon is the smallest scale change applied; anything below is dropped so the
	// camera does not creep while pinned at a limit.
	zoomEpsilon float32 = 1e-5
)

// ZoomController changes the orthographic scale from scroll input, keeping the world
// point under the cursor fixed on screen.
type ZoomController struct {
	Speed float32
	Min   float32
	Max   float32
}

// DefaultZoomController returns a zoom controller with speed 0.5 and range [0.2, 5].
func DefaultZoomController() ZoomController {
	return ZoomController{Speed: DefaultZoomSpeed, Min: DefaultMinZoom, Max: DefaultMaxZoom}
}

// TargetScale returns the clamped scale one scroll event moves old to.
//
// Parameters:
//   - old: current scale
//   - delta: vertical wheel delta, positive zooms in
//
// Returns:
//   - float32: the new scale within [Min, Max]
func (z ZoomController) TargetScale(old, delta float32) float32 {
	return common.Clamp(old-delta*z.Speed*zoomStep, z.Min, z.Max)
}

// ClampScale moves the scale of cam into [Min, Max] without shifting its position.
// A camera that starts outside the range would otherwise jump on its first zero-delta scroll.
//
// Parameters:
//   - cam: the camera to clamp
//
// Returns:
//   - bool: true if the scale changed
func (z ZoomController) ClampScale(cam Camera) bool {
	old := cam.Scale()
	clamped := common.Clamp(old, z.Min, z.Max)
	if clamped == old {
		return false
	}
	cam.SetScale(clamped)
	return true
}

// Apply processes every scroll event of frame in order.
// Nothing happens when the frame has no usable cursor.
//
// Parameters:
//   - cam: the camera to zoom
//   - frame: the tick's input
//
// Returns:
//   - bool: true if the scale changed
func (z ZoomController) Apply(cam Camera, frame input.Frame) bool {
	if !frame.CursorUsable() || len(frame.Scroll) == 0 {
		return false
	}
	aspect := frame.Width / frame.Height
	ndc := frame.NDC()

	changed := false
	for _, delta := range frame.Scroll {
		old := cam.Scale()
		target := z.TargetScale(old, delta)
		diff := old - target
		if mgl32.Abs(diff) < zoomEpsilon {
			continue
		}
		offset := ndc.Mul(0.5)
		extent := cam.Projection().VisibleExtent(aspect)
		offset = mgl32.Vec2{offset[0] * extent[0], offset[1] * extent[1]}
		shift := cam.Right().Mul(offset[0]).Add(cam.Up().Mul(offset[1])).Mul(diff)
		cam.Translate(shift)
		cam.SetScale(target)
		changed = true
	}
	return changed
}
