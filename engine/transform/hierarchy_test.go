package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestHierarchyAddRejectsUnknownParent(t *testing.T) {
	h := NewHierarchy(0)
	if _, err := h.Add(3, Identity()); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("Add under missing parent: got %v, want ErrNodeNotFound", err)
	}
	if h.Len() != 0 {
		t.Fatalf("Len() = %d after failed add, want 0", h.Len())
	}
}

func TestHierarchyWorldComposesParents(t *testing.T) {
	h := NewHierarchy(3)
	pivot, err := h.Add(NoParent, Identity())
	if err != nil {
		t.Fatalf("add pivot: %v", err)
	}
	anchor, err := h.Add(pivot, FromPosition(10, 0, 0))
	if err != nil {
		t.Fatalf("add anchor: %v", err)
	}
	leaf, err := h.Add(anchor, FromPosition(0, 1, 0))
	if err != nil {
		t.Fatalf("add leaf: %v", err)
	}

	h.RotateY(pivot, math.Pi/2)

	world, ok := h.World(leaf)
	if !ok {
		t.Fatal("World(leaf) not found")
	}
	want := mgl32.Vec3{0, 1, -10}
	if !common.Near3(world.Position, want, 1e-4) {
		t.Errorf("leaf world position = %v, want %v", world.Position, want)
	}

	local, _ := h.Local(leaf)
	if local.Position != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("leaf local position changed to %v", local.Position)
	}
	if got := h.Parent(leaf); got != anchor {
		t.Errorf("Parent(leaf) = %d, want %d", got, anchor)
	}
	if got := h.Parent(pivot); got != NoParent {
		t.Errorf("Parent(pivot) = %d, want NoParent", got)
	}
}

func TestHierarchySetLocal(t *testing.T) {
	h := NewHierarchy(1)
	id, _ := h.Add(NoParent, Identity())
	if err := h.SetLocal(id, FromPosition(1, 2, 3)); err != nil {
		t.Fatalf("SetLocal: %v", err)
	}
	if err := h.SetLocal(5, Identity()); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("SetLocal(5): got %v, want ErrNodeNotFound", err)
	}
	world, _ := h.World(id)
	if world.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("World = %v, want {1,2,3}", world.Position)
	}
	if _, ok := h.World(-1); ok {
		t.Error("World(-1) reported ok")
	}
}

func TestTransformAxes(t *testing.T) {
	tr := Identity()
	if tr.Forward() != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Forward() = %v", tr.Forward())
	}
	rotated := tr.RotateY(math.Pi / 2)
	if !common.Near3(rotated.Right(), mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("Right() after quarter turn = %v, want {0,0,-1}", rotated.Right())
	}
	if !common.Near3(rotated.Up(), mgl32.Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("Up() after quarter turn = %v, want {0,1,0}", rotated.Up())
	}
}
