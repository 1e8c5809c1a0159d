package camera

import (
	"testing"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func TestPanIntent(t *testing.T) {
	p := DefaultPanController()
	centre := mgl32.Vec2{400, 300}
	tests := []struct {
		name      string
		keys      input.KeySet
		cursor    mgl32.Vec2
		hasCursor bool
		want      mgl32.Vec2
	}{
		{"none", 0, centre, true, mgl32.Vec2{}},
		{"arrow up", input.NewKeySet(input.KeyArrowUp), centre, true, mgl32.Vec2{0, 1}},
		{"vi down", input.NewKeySet(input.KeyJ), centre, true, mgl32.Vec2{0, -1}},
		{"both up keys count once", input.NewKeySet(input.KeyArrowUp, input.KeyK), centre, true, mgl32.Vec2{0, 1}},
		{"vi left and right cancel", input.NewKeySet(input.KeyH, input.KeyL), centre, true, mgl32.Vec2{}},
		{"left edge", 0, mgl32.Vec2{5, 300}, true, mgl32.Vec2{-1, 0}},
		{"right edge", 0, mgl32.Vec2{795, 300}, true, mgl32.Vec2{1, 0}},
		{"top edge pans up", 0, mgl32.Vec2{400, 5}, true, mgl32.Vec2{0, 1}},
		{"bottom edge pans down", 0, mgl32.Vec2{400, 590}, true, mgl32.Vec2{0, -1}},
		{"corner", 0, mgl32.Vec2{5, 5}, true, mgl32.Vec2{-1, 1}},
		{"edge ignored without cursor", 0, mgl32.Vec2{5, 5}, false, mgl32.Vec2{}},
		{"key and edge add", input.NewKeySet(input.KeyArrowLeft), mgl32.Vec2{5, 300}, true, mgl32.Vec2{-2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := input.Frame{Keys: tt.keys, Cursor: tt.cursor, HasCursor: tt.hasCursor, Width: 800, Height: 600}
			if got := p.Intent(f); got != tt.want {
				t.Errorf("Intent() = %v, want %v", got, tt.want)
			}
			dir := p.Direction(f)
			if tt.want == (mgl32.Vec2{}) {
				if dir != (mgl32.Vec2{}) {
					t.Errorf("Direction() = %v, want zero", dir)
				}
				return
			}
			if mgl32.Abs(dir.Len()-1) > 1e-6 {
				t.Errorf("|Direction()| = %v, want 1", dir.Len())
			}
		})
	}
}

func TestPanApplyScalesWithZoom(t *testing.T) {
	cam := NewCamera(WithScale(2))
	start := cam.Position()
	f := input.Frame{Keys: input.NewKeySet(input.KeyL), Width: 800, Height: 600}

	if !DefaultPanController().Apply(cam, f, 0.5) {
		t.Fatal("Apply reported no movement")
	}
	want := start.Add(cam.Right().Mul(30 * 2 * 0.5))
	if !common.Near3(cam.Position(), want, 1e-3) {
		t.Errorf("position = %v, want %v", cam.Position(), want)
	}
}

func TestPanOppositeKeysDoNotMove(t *testing.T) {
	cam := NewCamera()
	start := cam.Position()
	f := input.Frame{Keys: input.NewKeySet(input.KeyArrowUp, input.KeyArrowDown, input.KeyArrowLeft, input.KeyArrowRight)}
	if DefaultPanController().Apply(cam, f, 1) {
		t.Error("Apply reported movement for cancelling keys")
	}
	if cam.Position() != start {
		t.Errorf("position moved to %v", cam.Position())
	}
}
