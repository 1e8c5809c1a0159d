package camera

import (
	"testing"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func zoomFrame(cursor mgl32.Vec2, scroll ...float32) input.Frame {
	return input.Frame{Cursor: cursor, HasCursor: true, Scroll: scroll, Width: 800, Height: 600}
}

func TestZoomTargetScale(t *testing.T) {
	z := DefaultZoomController()
	if got := z.TargetScale(1, 5); mgl32.Abs(got-0.5) > 1e-6 {
		t.Errorf("TargetScale(1, +5) = %v, want 0.5", got)
	}
	if got := z.TargetScale(1, 1000); got != DefaultMinZoom {
		t.Errorf("TargetScale(1, +1000) = %v, want min", got)
	}
	if got := z.TargetScale(1, -1000); got != DefaultMaxZoom {
		t.Errorf("TargetScale(1, -1000) = %v, want max", got)
	}
}

func TestZoomZeroDeltaIsNoop(t *testing.T) {
	cam := NewCamera()
	before := cam.Transform()
	if DefaultZoomController().Apply(cam, zoomFrame(mgl32.Vec2{123, 45}, 0, 0, 0)) {
		t.Error("Apply reported a change for zero deltas")
	}
	if cam.Scale() != 1 || cam.Transform() != before {
		t.Errorf("camera changed: scale %v, transform %+v", cam.Scale(), cam.Transform())
	}
}

func TestZoomStaysWithinBounds(t *testing.T) {
	z := DefaultZoomController()
	cam := NewCamera()
	deltas := []float32{100, -3, -250, 7, 0.01, -0.01, 42, -1e6, 1e6, 3}
	for _, d := range deltas {
		z.Apply(cam, zoomFrame(mgl32.Vec2{10, 590}, d))
		if s := cam.Scale(); s < z.Min || s > z.Max {
			t.Fatalf("scale %v outside [%v, %v] after delta %v", s, z.Min, z.Max, d)
		}
	}
}

func TestZoomRoundTrip(t *testing.T) {
	z := DefaultZoomController()
	cam := NewCamera()
	before := cam.Position()
	cursor := mgl32.Vec2{620, 140}

	z.Apply(cam, zoomFrame(cursor, 1, 2, 1.5))
	z.Apply(cam, zoomFrame(cursor, -1.5, -2, -1))

	if mgl32.Abs(cam.Scale()-1) > 1e-5 {
		t.Errorf("scale after round trip = %v, want 1", cam.Scale())
	}
	if !common.Near3(cam.Position(), before, 1e-3) {
		t.Errorf("position after round trip = %v, want %v", cam.Position(), before)
	}
}

func TestZoomKeepsCursorAnchored(t *testing.T) {
	z := DefaultZoomController()
	cam := NewCamera()
	cursor := mgl32.Vec2{700, 100}
	anchor := cam.ScreenToWorld(cursor, 800, 600)

	if !z.Apply(cam, zoomFrame(cursor, 3)) {
		t.Fatal("Apply reported no change")
	}
	if got := cam.ScreenToWorld(cursor, 800, 600); !common.Near3(got, anchor, 1e-3) {
		t.Errorf("world under cursor moved from %v to %v", anchor, got)
	}
}

func TestZoomShiftTowardCursor(t *testing.T) {
	cam := NewCamera()
	start := cam.Position()
	// right edge, vertical centre: ndc (1, 0), half width 25*4/3/2
	DefaultZoomController().Apply(cam, zoomFrame(mgl32.Vec2{800, 300}, 5))

	want := start.Add(cam.Right().Mul(25.0 * 4 / 3 / 2 * 0.5))
	if !common.Near3(cam.Position(), want, 1e-3) {
		t.Errorf("position = %v, want %v", cam.Position(), want)
	}
	if mgl32.Abs(cam.Scale()-0.5) > 1e-6 {
		t.Errorf("scale = %v, want 0.5", cam.Scale())
	}
}

func TestZoomNeedsCursor(t *testing.T) {
	z := DefaultZoomController()
	tests := []struct {
		name  string
		frame input.Frame
	}{
		{"cursor outside", input.Frame{Scroll: []float32{5}, Width: 800, Height: 600}},
		{"zero size window", input.Frame{HasCursor: true, Scroll: []float32{5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera()
			if z.Apply(cam, tt.frame) || cam.Scale() != 1 {
				t.Errorf("zoomed without a usable cursor: scale %v", cam.Scale())
			}
		})
	}
}

func TestZoomClampScale(t *testing.T) {
	z := ZoomController{Speed: DefaultZoomSpeed, Min: 2, Max: 5}
	cam := NewCamera()
	pos := cam.Position()
	if !z.ClampScale(cam) {
		t.Fatal("ClampScale reported no change for scale 1 below min 2")
	}
	if cam.Scale() != 2 || cam.Position() != pos {
		t.Errorf("after ClampScale: scale %v, position %v", cam.Scale(), cam.Position())
	}
	if z.ClampScale(cam) {
		t.Error("ClampScale changed a scale already in range")
	}

	// a zero-delta scroll on a clamped camera must not move it
	if z.Apply(cam, zoomFrame(mgl32.Vec2{700, 100}, 0)) {
		t.Error("zero-delta scroll changed a clamped camera")
	}
	if cam.Scale() != 2 || cam.Position() != pos {
		t.Errorf("after zero scroll: scale %v, position %v", cam.Scale(), cam.Position())
	}
}
