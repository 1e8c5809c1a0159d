package renderer

import (
	_ "embed"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// BodyShaderSource is the WGSL program drawing body and light quads.
// Its VertexInput struct matches GPUVertex exactly.
//
//go:embed assets/body.wgsl
var BodyShaderSource string

const (
	bodyVertexEntryPoint   = "vs_main"
	bodyFragmentEntryPoint = "fs_main"
)

// GPUVertex is one corner of a body quad.
// Size: 32 bytes, no padding.
type GPUVertex struct {
	Position [2]float32 // offset  0: normalized device coordinates
	Local    [2]float32 // offset  8: corner in quad space, [-1, 1]
	Color    [4]float32 // offset 16: straight RGBA
}

// Size returns the size of the GPUVertex struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// GPUVertexLayout returns the vertex buffer layout matching GPUVertex.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for buffer slot 0
func GPUVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(GPUVertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
		},
	}
}
