package renderer

// RendererBackendType picks the GPU API behind a Renderer. WebGPU is the only one.
type RendererBackendType int

const (
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode selects how finished body frames reach the window.
type PresentMode int

const (
	// PresentModeVSync holds each frame for the display refresh, so the orbit animation
	// never runs faster than the monitor.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped hands frames over as soon as they are drawn. Useful when timing
	// the tick loop; tearing is allowed.
	PresentModeUncapped
)

// String returns the lower-case mode name used in logs and config.
func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "vsync"
	case PresentModeUncapped:
		return "uncapped"
	}
	return "unknown"
}

// MSAASampleCount is the per-pixel sample count used to smooth body disc edges.
type MSAASampleCount uint32

const (
	MSAAOff MSAASampleCount = 1
	// MSAA4x is the only multisampled count every WebGPU adapter accepts.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is what the Renderer needs from a GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
