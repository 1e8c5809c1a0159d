package camera

import "github.com/go-gl/mathgl/mgl32"

// ScalingMode selects which viewport extent an orthographic projection holds fixed.
type ScalingMode int

const (
	// ScalingModeFixedVertical keeps the visible height constant; the width follows the aspect ratio.
	ScalingModeFixedVertical ScalingMode = iota

	// ScalingModeFixedHorizontal keeps the visible width constant; the height follows the aspect ratio.
	ScalingModeFixedHorizontal
)

func (m ScalingMode) String() string {
	switch m {
	case ScalingModeFixedVertical:
		return "fixed-vertical"
	case ScalingModeFixedHorizontal:
		return "fixed-horizontal"
	default:
		return "unknown"
	}
}

// DefaultViewportSize is the fixed extent in world units used by the default projection.
// Unknown scaling modes also fall back to it as their visible height.
const DefaultViewportSize float32 = 25

// Orthographic describes an orthographic projection.
type Orthographic struct {
	// Scale multiplies the visible extent: values below 1 zoom in, above 1 zoom out.
	Scale float32
	// Mode selects the fixed axis.
	Mode ScalingMode
	// ViewportSize is the fixed extent in world units for Mode.
	ViewportSize float32
	// Near and Far are the clip plane distances along the view direction.
	Near float32
	Far  float32
}

// DefaultOrthographic returns a fixed-vertical projection 25 units tall at scale 1.
func DefaultOrthographic() Orthographic {
	return Orthographic{
		Scale:        1,
		Mode:         ScalingModeFixedVertical,
		ViewportSize: DefaultViewportSize,
		Near:         -1000,
		Far:          1000,
	}
}

// VisibleExtent returns the world-space width and height of the view at scale 1.
//
// Parameters:
//   - aspect: window width divided by height
//
// Returns:
//   - mgl32.Vec2: unscaled visible width and height
func (o Orthographic) VisibleExtent(aspect float32) mgl32.Vec2 {
	var h float32
	switch o.Mode {
	case ScalingModeFixedVertical:
		h = o.ViewportSize
	case ScalingModeFixedHorizontal:
		h = o.ViewportSize / aspect
	default:
		h = DefaultViewportSize
	}
	return mgl32.Vec2{h * aspect, h}
}

// Area returns the world-space width and height currently visible, scale applied.
//
// Parameters:
//   - aspect: window width divided by height
//
// Returns:
//   - mgl32.Vec2: scaled visible width and height
func (o Orthographic) Area(aspect float32) mgl32.Vec2 {
	return o.VisibleExtent(aspect).Mul(o.Scale)
}

// Matrix returns the projection matrix centred on the view axis.
//
// Parameters:
//   - aspect: window width divided by height
//
// Returns:
//   - mgl32.Mat4: column-major projection matrix
func (o Orthographic) Matrix(aspect float32) mgl32.Mat4 {
	half := o.Area(aspect).Mul(0.5)
	return mgl32.Ortho(-half[0], half[0], -half[1], half[1], o.Near, o.Far)
}
