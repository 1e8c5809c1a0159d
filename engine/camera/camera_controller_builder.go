package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for scroll input
//
// Returns:
//   - CameraControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoom.Speed = speed
	}
}

// WithZoomBounds sets the minimum and maximum orthographic scale.
// The bounds are swapped if given in the wrong order.
//
// Parameters:
//   - min: smallest scale (most zoomed in)
//   - max: largest scale (most zoomed out)
//
// Returns:
//   - CameraControllerOption: functional option to set zoom bounds
func WithZoomBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if min > max {
			min, max = max, min
		}
		cc.zoom.Min = min
		cc.zoom.Max = max
	}
}

// WithPanSpeed sets the pan speed in world units per second at scale 1.
//
// Parameters:
//   - speed: pan rate
//
// Returns:
//   - CameraControllerOption: functional option to set pan speed
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pan.Speed = speed
	}
}

// WithEdgeMargin sets the width of the edge-scroll band.
//
// Parameters:
//   - pixels: band width in window pixels
//
// Returns:
//   - CameraControllerOption: functional option to set the edge margin
func WithEdgeMargin(pixels float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pan.EdgeMargin = pixels
	}
}

// WithMinHeight sets the lowest camera Y the constrain stage allows.
//
// Parameters:
//   - y: minimum height
//
// Returns:
//   - CameraControllerOption: functional option to set the minimum height
func WithMinHeight(y float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bounds.MinHeight = y
	}
}

// WithBoundsFloor sets the smallest scene radius used by the constrain stage.
//
// Parameters:
//   - radius: the floor radius
//
// Returns:
//   - CameraControllerOption: functional option to set the bounds floor
func WithBoundsFloor(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bounds.Floor = radius
	}
}

// WithBoundsMargin sets the slack added to the scene radius.
//
// Parameters:
//   - margin: extra radius
//
// Returns:
//   - CameraControllerOption: functional option to set the bounds margin
func WithBoundsMargin(margin float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bounds.Margin = margin
	}
}
