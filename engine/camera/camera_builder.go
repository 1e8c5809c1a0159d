package camera

import (
	"github.com/Carmen-Shannon/crystal-space/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraBuilder collects construction parameters; orientation is resolved once all options ran.
type cameraBuilder struct {
	position   mgl32.Vec3
	target     mgl32.Vec3
	transform  *transform.Transform
	projection Orthographic
}

// CameraBuilderOption is a function that configures a Camera during construction.
type CameraBuilderOption func(*cameraBuilder)

// WithPosition sets the camera's world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(b *cameraBuilder) {
		b.position = mgl32.Vec3{x, y, z}
	}
}

// WithLookAt sets the point the camera is oriented toward, keeping world up as up.
//
// Parameters:
//   - x, y, z: target components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's look-at target
func WithLookAt(x, y, z float32) CameraBuilderOption {
	return func(b *cameraBuilder) {
		b.target = mgl32.Vec3{x, y, z}
	}
}

// WithTransform sets the camera transform directly, overriding WithPosition and WithLookAt.
//
// Parameters:
//   - t: the camera transform
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's transform
func WithTransform(t transform.Transform) CameraBuilderOption {
	return func(b *cameraBuilder) {
		b.transform = &t
	}
}

// WithScale sets the initial orthographic scale.
//
// Parameters:
//   - s: the scale
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's scale
func WithScale(s float32) CameraBuilderOption {
	return func(b *cameraBuilder) {
		b.projection.Scale = s
	}
}

// WithScalingMode sets which extent is held fixed and its size in world units.
//
// Parameters:
//   - mode: the scaling mode
//   - viewport: the fixed extent
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's scaling mode
func WithScalingMode(mode ScalingMode, viewport float32) CameraBuilderOption {
	return func(b *cameraBuilder) {
		b.projection.Mode = mode
		b.projection.ViewportSize = viewport
	}
}

// WithClipPlanes sets the near and far clip distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's clip planes
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(b *cameraBuilder) {
		b.projection.Near = near
		b.projection.Far = far
	}
}
