package light

import (
	"testing"

	"github.com/Carmen-Shannon/crystal-space/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

func TestBeaconBlinks(t *testing.T) {
	l := NewLight(0, WithIntensity(4), WithBlink(2, 0, 0.25))
	if l.Type() != LightTypeBeacon {
		t.Fatalf("Type() = %v, want beacon", l.Type())
	}

	tests := []struct {
		elapsed float64
		want    float32
	}{
		{0, 4},
		{0.4, 4},
		{0.6, 0},
		{1.9, 0},
		{2.1, 4},
	}
	for _, tt := range tests {
		if got := l.IntensityAt(tt.elapsed); got != tt.want {
			t.Errorf("IntensityAt(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestPointLightIsSteady(t *testing.T) {
	l := NewLight(0, WithIntensity(3))
	for _, elapsed := range []float64{0, 0.7, 13} {
		if got := l.IntensityAt(elapsed); got != 3 {
			t.Errorf("IntensityAt(%v) = %v, want 3", elapsed, got)
		}
	}
	l.SetEnabled(false)
	if got := l.IntensityAt(0); got != 0 {
		t.Errorf("disabled IntensityAt = %v, want 0", got)
	}
}

func TestWorldPositionFollowsNode(t *testing.T) {
	h := transform.NewHierarchy(2)
	parent, _ := h.Add(transform.NoParent, transform.FromPosition(5, 0, 0))
	child, _ := h.Add(parent, transform.FromPosition(0, 2, 0))

	l := NewLight(child)
	pos, ok := l.WorldPosition(h)
	if !ok {
		t.Fatal("WorldPosition not found")
	}
	if pos != (mgl32.Vec3{5, 2, 0}) {
		t.Errorf("WorldPosition = %v, want {5,2,0}", pos)
	}
	if _, ok := NewLight(9).WorldPosition(h); ok {
		t.Error("WorldPosition for missing node reported ok")
	}
}
