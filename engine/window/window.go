package window

import (
	"fmt"

	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides a platform window that doubles as the engine's input source.
// Platform callbacks feed an input.Recorder; Snapshot polls pending events and returns the
// frame accumulated since the previous call. All methods must be called from the thread
// that created the window.
type Window interface {
	// Snapshot polls platform events and returns the input accumulated since the last call.
	//
	// Returns:
	//   - input.Frame: the tick's input
	Snapshot() input.Frame

	// Running returns true while the window is open.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	Running() bool

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Recorder returns the recorder the platform callbacks write to.
	Recorder() *input.Recorder

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int

	// Size returns the window size in screen coordinates, the space cursor positions are
	// reported in. On high-DPI displays it is smaller than the framebuffer.
	//
	// Returns:
	//   - width, height: the window size in screen coordinates
	Size() (width, height int)
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are in screen coordinates, fbWidth and fbHeight in pixels.
	width    int
	height   int
	fbWidth  int
	fbHeight int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	recorder *input.Recorder
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates and opens a window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
//   - error: error if the platform window cannot be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "Crystal Space Iso",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	w.recorder = input.NewRecorder(float32(w.width), float32(w.height))
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) Snapshot() input.Frame {
	platformProcessMessages(w)
	return w.recorder.Snapshot()
}

func (w *engineWindow) Running() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) Recorder() *input.Recorder {
	return w.recorder
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.fbWidth
}

func (w *engineWindow) Height() int {
	return w.fbHeight
}

func (w *engineWindow) Size() (int, int) {
	return w.width, w.height
}

// windowResized records a window size change. The recorder works in the same screen
// coordinates as the cursor so NDC and the edge margin stay correct under DPI scaling.
func (w *engineWindow) windowResized(width, height int) {
	w.width = width
	w.height = height
	w.recorder.Resize(float32(width), float32(height))
}

// framebufferResized records a framebuffer size change and forwards it to the resize
// callback, which owns the drawing surface.
func (w *engineWindow) framebufferResized(width, height int) {
	w.fbWidth = width
	w.fbHeight = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}
