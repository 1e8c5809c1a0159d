package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/camera"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/Carmen-Shannon/crystal-space/engine/scene"
	"github.com/Carmen-Shannon/crystal-space/engine/view"
	"github.com/Carmen-Shannon/crystal-space/engine/window"
)

// ErrNoSurface is returned by NewRenderer when the window cannot provide a surface descriptor.
var ErrNoSurface = errors.New("window has no surface")

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width, height int
	lastVertices  int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           common.Color
}

// Renderer defines the interface for the rendering system.
//
// Every frame projects the scene's bodies and lights through the camera into screen-space
// quads, uploads them as a single vertex buffer, and draws them with one pipeline.
// The Renderer satisfies engine.FrameRenderer so it can be handed directly to the Engine.
type Renderer interface {
	// Render draws one frame of the scene as seen by cam.
	// A change in the frame's window size reconfigures the surface first; a zero-sized
	// window (minimized) skips the frame entirely.
	//
	// Parameters:
	//   - s: the scene to draw
	//   - cam: the camera to project through
	//   - frame: the input frame carrying the current window size
	//
	// Returns:
	//   - error: error if the surface or GPU submission fails
	Render(s scene.Scene, cam camera.Camera, frame input.Frame) error

	// Resize reconfigures the surface for a new framebuffer size in pixels.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	//
	// Returns:
	//   - error: error if the surface cannot be reconfigured
	Resize(width, height int) error

	// SetPresentMode changes the surface present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the background colour.
	//
	// Parameters:
	//   - c: the clear colour
	SetClearColor(c common.Color)

	// Backend returns the underlying RendererBackend.
	//
	// Returns:
	//   - RendererBackend: the active backend
	Backend() RendererBackend

	// BackendType returns the kind of backend in use.
	//
	// Returns:
	//   - RendererBackendType: the backend type
	BackendType() RendererBackendType

	// VertexCount returns the number of vertices drawn in the last frame.
	//
	// Returns:
	//   - int: vertex count
	VertexCount() int

	// Release frees every GPU resource held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer for the given window.
// The surface descriptor is taken from the window and the body pipeline is compiled immediately.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window that owns the drawing surface
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
//   - error: error if no GPU adapter, device or pipeline could be created
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clearColor:  common.RGB(0, 0, 0.05),
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	desc := win.SurfaceDescriptor()
	if desc == nil {
		return nil, ErrNoSurface
	}

	msaa := MSAAOff
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(desc, r.forceFallbackAdapter, msaa)
	}
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.SetClearColor(r.clearColor)

	r.width, r.height = win.Width(), win.Height()
	if err := r.backend.ConfigureSurface(r.width, r.height); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("configure surface: %w", err)
	}
	if err := r.backend.RegisterBodyPipeline(BodyShaderSource); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("register body pipeline: %w", err)
	}
	return r, nil
}

func (r *renderer) Render(s scene.Scene, cam camera.Camera, frame input.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// the surface follows the framebuffer through Resize; the frame is in screen
	// coordinates and only its aspect matters here
	if frame.Width <= 0 || frame.Height <= 0 || r.width <= 0 || r.height <= 0 {
		return nil
	}

	vertices := Vertices(view.Build(s, cam, frame.Width, frame.Height))
	if err := r.backend.WriteVertices(common.SliceToBytes(vertices)); err != nil {
		return err
	}
	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	r.backend.DrawVertices(uint32(len(vertices)))
	if err := r.backend.EndFrame(); err != nil {
		return err
	}
	r.backend.Present()
	r.lastVertices = len(vertices)
	return nil
}

func (r *renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width <= 0 || height <= 0 {
		return nil
	}
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		return err
	}
	r.width, r.height = width, height
	return nil
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend.SetPresentMode(mode)
	if r.width > 0 && r.height > 0 {
		if err := r.backend.ConfigureSurface(r.width, r.height); err != nil {
			log.Printf("[Renderer] present mode %s: %v", mode, err)
		}
	}
}

func (r *renderer) SetClearColor(c common.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = c
	r.backend.SetClearColor(c)
}

func (r *renderer) Backend() RendererBackend {
	return r.backend
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) VertexCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastVertices
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
