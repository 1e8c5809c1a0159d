package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat   *wgpu.TextureFormat
	msaaTexture     *wgpu.Texture
	msaaTextureView *wgpu.TextureView
	clearColor      wgpu.Color

	presentMode wgpu.PresentMode
	sampleCount MSAASampleCount

	bodyPipeline *wgpu.RenderPipeline
	bodyModule   *wgpu.ShaderModule
	vertexBuffer *wgpu.Buffer
	vertexSize   uint64

	// Frame state between BeginFrame and Present
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and, with MSAA, the multisample target.
	// Must be called before the first frame and after every resize.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	//
	// Returns:
	//   - error: error if the MSAA target cannot be created
	ConfigureSurface(width, height int) error

	// SetPresentMode sets the present mode used by the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the background colour of every frame.
	//
	// Parameters:
	//   - c: the clear colour
	SetClearColor(c common.Color)

	// RegisterBodyPipeline compiles the body shader and creates the quad render pipeline.
	// Requires a configured surface for the colour target format.
	//
	// Parameters:
	//   - source: WGSL source with vs_main and fs_main entry points
	//
	// Returns:
	//   - error: error if compilation or pipeline creation fails
	RegisterBodyPipeline(source string) error

	// WriteVertices uploads the frame's vertex data, growing the buffer when needed.
	//
	// Parameters:
	//   - data: packed GPUVertex data
	//
	// Returns:
	//   - error: error if the buffer cannot be created
	WriteVertices(data []byte) error

	// BeginFrame acquires the next surface texture and opens the clearing render pass.
	//
	// Returns:
	//   - error: error if the surface texture cannot be acquired
	BeginFrame() error

	// DrawVertices draws count vertices of the uploaded buffer with the body pipeline.
	//
	// Parameters:
	//   - count: number of vertices
	DrawVertices(count uint32)

	// EndFrame closes the render pass and submits the recorded commands.
	//
	// Returns:
	//   - error: error if the command buffer cannot be finished
	EndFrame() error

	// Present presents the acquired surface texture and releases frame references.
	Present()

	// Release frees every GPU object held by the backend.
	Release()
}

var _ wgpuRendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) (wgpuRendererBackend, error) {
	if surfaceDescriptor == nil {
		return nil, errors.New("nil surface descriptor")
	}
	b := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: sampleCount,
		clearColor:  wgpu.Color{R: 0, G: 0, B: 0.05, A: 1},
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	b.device = d
	b.queue = d.GetQueue()
	return b, nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTexture.Release()
		b.msaaTextureView, b.msaaTexture = nil, nil
	}
	if b.sampleCount <= 1 {
		return nil
	}

	// the pass draws into the MSAA texture and resolves into the swapchain view
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "MSAA Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   uint32(b.sampleCount),
		Dimension:     wgpu.TextureDimension2D,
		Format:        *b.surfaceFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return fmt.Errorf("create MSAA view: %w", err)
	}
	b.msaaTexture, b.msaaTextureView = tex, view
	return nil
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) SetClearColor(c common.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearColor = wgpu.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

func (b *wgpuRendererBackendImpl) RegisterBodyPipeline(source string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.surfaceFormat == nil {
		return errors.New("surface must be configured before registering pipelines")
	}

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Body Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: source,
		},
	})
	if err != nil {
		return fmt.Errorf("compile body shader: %w", err)
	}

	layout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "Body Pipeline Layout",
	})
	if err != nil {
		module.Release()
		return fmt.Errorf("create body pipeline layout: %w", err)
	}
	defer layout.Release()

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Body Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: bodyVertexEntryPoint,
			Buffers:    []wgpu.VertexBufferLayout{GPUVertexLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: bodyFragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
						Alpha: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		module.Release()
		return fmt.Errorf("create body pipeline: %w", err)
	}

	if b.bodyPipeline != nil {
		b.bodyPipeline.Release()
		b.bodyModule.Release()
	}
	b.bodyPipeline = created
	b.bodyModule = module
	return nil
}

func (b *wgpuRendererBackendImpl) WriteVertices(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(data) == 0 {
		return nil
	}
	if uint64(len(data)) > b.vertexSize {
		size := uint64(len(data)) * 2
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            "Body Vertex Buffer",
			Size:             size,
			Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return fmt.Errorf("create vertex buffer of %d bytes: %w", size, err)
		}
		if b.vertexBuffer != nil {
			b.vertexBuffer.Release()
		}
		b.vertexBuffer = buf
		b.vertexSize = size
	}
	b.queue.WriteBuffer(b.vertexBuffer, 0, data)
	return nil
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// a held surface texture means the previous frame was never presented
	if b.frameSurface != nil {
		return errors.New("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}
	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	attachment := wgpu.RenderPassColorAttachment{
		View:       view,
		LoadOp:     wgpu.LoadOpClear,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: b.clearColor,
	}
	if b.msaaTextureView != nil {
		attachment.View = b.msaaTextureView
		attachment.ResolveTarget = view
		attachment.StoreOp = wgpu.StoreOpDiscard
	}
	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{attachment},
	})

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view
	return nil
}

func (b *wgpuRendererBackendImpl) DrawVertices(count uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if count == 0 || b.framePass == nil || b.bodyPipeline == nil || b.vertexBuffer == nil {
		return
	}
	b.framePass.SetPipeline(b.bodyPipeline)
	b.framePass.SetVertexBuffer(0, b.vertexBuffer, 0, wgpu.WholeSize)
	b.framePass.Draw(count, 1, 0, 0)
}

func (b *wgpuRendererBackendImpl) EndFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return nil
	}
	b.framePass.End()
	b.framePass = nil

	commandBuffer, err := b.frameEncoder.Finish(nil)
	b.frameEncoder.Release()
	b.frameEncoder = nil
	if err != nil {
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameView = nil
		b.frameSurface = nil
		return fmt.Errorf("finish frame: %w", err)
	}

	b.queue.Submit(commandBuffer)
	commandBuffer.Release()
	return nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}
	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.vertexBuffer != nil {
		b.vertexBuffer.Release()
		b.vertexBuffer = nil
	}
	if b.bodyPipeline != nil {
		b.bodyPipeline.Release()
		b.bodyModule.Release()
		b.bodyPipeline, b.bodyModule = nil, nil
	}
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTexture.Release()
		b.msaaTextureView, b.msaaTexture = nil, nil
	}
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
