package camera

import "github.com/Carmen-Shannon/crystal-space/engine/input"

// UpdateResult reports which stages of a controller update changed the camera.
type UpdateResult struct {
	Zoomed      bool
	Panned      bool
	Constrained bool
}

// Changed reports whether any stage moved or rescaled the camera.
func (r UpdateResult) Changed() bool {
	return r.Zoomed || r.Panned || r.Constrained
}

type cameraControllerImpl struct {
	zoom   ZoomController
	pan    PanController
	bounds BoundsConstrainer
}

// CameraController runs the per-tick navigation pipeline over a camera.
// The stages always run in the order zoom, pan, constrain, so the bounds clamp sees the
// final position of the tick.
type CameraController interface {
	// Update applies one tick of navigation to cam.
	//
	// Parameters:
	//   - cam: the camera to drive
	//   - frame: the tick's input snapshot
	//   - dt: elapsed time in seconds
	//   - index: the planets the bounds are derived from
	//
	// Returns:
	//   - UpdateResult: which stages changed the camera
	Update(cam Camera, frame input.Frame, dt float32, index PlanetIndex) UpdateResult

	// Zoom returns the zoom stage configuration.
	//
	// Returns:
	//   - ZoomController: the zoom stage
	Zoom() ZoomController

	// Pan returns the pan stage configuration.
	//
	// Returns:
	//   - PanController: the pan stage
	Pan() PanController

	// Bounds returns the constrain stage configuration.
	//
	// Returns:
	//   - BoundsConstrainer: the constrain stage
	Bounds() BoundsConstrainer
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a navigation pipeline.
// Defaults: zoom speed 0.5 within [0.2, 5], pan speed 30 with a 20 pixel edge margin,
// bounds floor 20 plus a margin of 5, minimum height 5.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		zoom:   DefaultZoomController(),
		pan:    DefaultPanController(),
		bounds: DefaultBoundsConstrainer(),
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Update(cam Camera, frame input.Frame, dt float32, index PlanetIndex) UpdateResult {
	var r UpdateResult
	r.Zoomed = cc.zoom.Apply(cam, frame)
	r.Panned = cc.pan.Apply(cam, frame, dt)
	r.Constrained = cc.bounds.Apply(cam, index)
	return r
}

func (cc *cameraControllerImpl) Zoom() ZoomController {
	return cc.zoom
}

func (cc *cameraControllerImpl) Pan() PanController {
	return cc.pan
}

func (cc *cameraControllerImpl) Bounds() BoundsConstrainer {
	return cc.bounds
}
