package camera

import (
	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	transform  transform.Transform
	projection Orthographic
}

// Camera defines the interface for the orthographic scene camera.
// The camera is plain state: a world transform and a projection descriptor. Controllers
// mutate it once per tick; renderers read its matrices.
// Not safe for concurrent use.
type Camera interface {
	// Transform returns the camera's world transform.
	//
	// Returns:
	//   - transform.Transform: position and orientation
	Transform() transform.Transform

	// SetTransform replaces the camera's world transform.
	//
	// Parameters:
	//   - t: the new transform
	SetTransform(t transform.Transform)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition moves the camera without changing its orientation.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// Translate moves the camera by d without changing its orientation.
	//
	// Parameters:
	//   - d: world-space offset
	Translate(d mgl32.Vec3)

	// Right returns the camera's world-space +X axis.
	Right() mgl32.Vec3

	// Up returns the camera's world-space +Y axis.
	Up() mgl32.Vec3

	// Forward returns the camera's world-space viewing direction (-Z).
	Forward() mgl32.Vec3

	// Projection returns the orthographic projection descriptor.
	//
	// Returns:
	//   - Orthographic: the projection
	Projection() Orthographic

	// SetProjection replaces the projection descriptor.
	//
	// Parameters:
	//   - p: the new projection
	SetProjection(p Orthographic)

	// Scale returns the orthographic scale.
	//
	// Returns:
	//   - float32: the current scale
	Scale() float32

	// SetScale sets the orthographic scale. Range limits are enforced by the zoom controller.
	//
	// Parameters:
	//   - s: the new scale
	SetScale(s float32)

	// ViewMatrix returns the world-to-view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: column-major view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the view-to-clip matrix for the given aspect ratio.
	//
	// Parameters:
	//   - aspect: window width divided by height
	//
	// Returns:
	//   - mgl32.Mat4: column-major projection matrix
	ProjectionMatrix(aspect float32) mgl32.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix(aspect) * ViewMatrix().
	//
	// Parameters:
	//   - aspect: window width divided by height
	//
	// Returns:
	//   - mgl32.Mat4: column-major view-projection matrix
	ViewProjectionMatrix(aspect float32) mgl32.Mat4

	// WorldToScreen projects a world point into window pixels, origin top-left, Y down.
	//
	// Parameters:
	//   - p: world-space point
	//   - width, height: window size in pixels
	//
	// Returns:
	//   - mgl32.Vec2: pixel position
	//   - bool: false if the point lies outside the clip volume or the window has no size
	WorldToScreen(p mgl32.Vec3, width, height float32) (mgl32.Vec2, bool)

	// ScreenToWorld maps a window pixel to the world point on the camera plane under it.
	//
	// Parameters:
	//   - s: pixel position, origin top-left, Y down
	//   - width, height: window size in pixels
	//
	// Returns:
	//   - mgl32.Vec3: world-space point on the plane through the camera position
	ScreenToWorld(s mgl32.Vec2, width, height float32) mgl32.Vec3
}

var _ Camera = &cameraImpl{}

// NewCamera creates an orthographic camera.
// Defaults: positioned at (30, 30, 30) looking at the origin, DefaultOrthographic projection.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	b := &cameraBuilder{
		position:   mgl32.Vec3{30, 30, 30},
		target:     mgl32.Vec3{},
		projection: DefaultOrthographic(),
	}
	for _, option := range options {
		option(b)
	}
	t := transform.LookingAt(b.position, b.target, common.WorldUp)
	if b.transform != nil {
		t = *b.transform
	}
	return &cameraImpl{transform: t, projection: b.projection}
}

func (c *cameraImpl) Transform() transform.Transform {
	return c.transform
}

func (c *cameraImpl) SetTransform(t transform.Transform) {
	c.transform = t
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.transform.Position
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.transform.Position = p
}

func (c *cameraImpl) Translate(d mgl32.Vec3) {
	c.transform.Position = c.transform.Position.Add(d)
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	return c.transform.Right()
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.transform.Up()
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	return c.transform.Forward()
}

func (c *cameraImpl) Projection() Orthographic {
	return c.projection
}

func (c *cameraImpl) SetProjection(p Orthographic) {
	c.projection = p
}

func (c *cameraImpl) Scale() float32 {
	return c.projection.Scale
}

func (c *cameraImpl) SetScale(s float32) {
	c.projection.Scale = s
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	eye := c.transform.Position
	return mgl32.LookAtV(eye, eye.Add(c.Forward()), c.Up())
}

func (c *cameraImpl) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return c.projection.Matrix(aspect)
}

func (c *cameraImpl) ViewProjectionMatrix(aspect float32) mgl32.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix())
}

func (c *cameraImpl) WorldToScreen(p mgl32.Vec3, width, height float32) (mgl32.Vec2, bool) {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}, false
	}
	clip := c.ViewProjectionMatrix(width / height).Mul4x1(p.Vec4(1))
	if clip[3] == 0 {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	screen := mgl32.Vec2{
		(ndc[0] + 1) / 2 * width,
		(1 - ndc[1]) / 2 * height,
	}
	return screen, ndc[2] >= -1 && ndc[2] <= 1
}

func (c *cameraImpl) ScreenToWorld(s mgl32.Vec2, width, height float32) mgl32.Vec3 {
	if width <= 0 || height <= 0 {
		return c.transform.Position
	}
	ndc := mgl32.Vec2{s[0]/width*2 - 1, -(s[1]/height*2 - 1)}
	half := c.projection.Area(width / height).Mul(0.5)
	return c.transform.Position.
		Add(c.Right().Mul(ndc[0] * half[0])).
		Add(c.Up().Mul(ndc[1] * half[1]))
}
