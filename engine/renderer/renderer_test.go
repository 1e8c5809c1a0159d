package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/crystal-space/engine/view"
	"github.com/go-gl/mathgl/mgl32"
)

func TestVertices(t *testing.T) {
	quads := []view.Quad{
		{Center: mgl32.Vec2{0.5, 0}, HalfSize: mgl32.Vec2{0.1, 0.2}},
		{Center: mgl32.Vec2{-0.5, 0}, HalfSize: mgl32.Vec2{0.1, 0.1}},
	}
	verts := Vertices(quads)
	if len(verts) != 12 {
		t.Fatalf("len(Vertices) = %d, want 12", len(verts))
	}
	if verts[0].Position != [2]float32{0.4, -0.2} {
		t.Errorf("first corner = %v, want {0.4,-0.2}", verts[0].Position)
	}
	if verts[2].Local != [2]float32{1, 1} {
		t.Errorf("third corner local = %v, want {1,1}", verts[2].Local)
	}
	if got := (&GPUVertex{}).Size(); got != 32 {
		t.Errorf("GPUVertex size = %d, want 32", got)
	}
	if stride := GPUVertexLayout().ArrayStride; stride != 32 {
		t.Errorf("ArrayStride = %d, want 32", stride)
	}
}

func TestPresentModeString(t *testing.T) {
	for mode, want := range map[PresentMode]string{
		PresentModeVSync:    "vsync",
		PresentModeUncapped: "uncapped",
		PresentMode(9):      "unknown",
	} {
		if got := mode.String(); got != want {
			t.Errorf("PresentMode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}
