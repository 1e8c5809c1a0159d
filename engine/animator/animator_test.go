package animator

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

func rotationAngle(q mgl32.Quat) float64 {
	w := math.Min(1, math.Abs(float64(q.W)))
	return 2 * math.Acos(w)
}

func TestUpdateRotatesBySpeedTimesDt(t *testing.T) {
	h := transform.NewHierarchy(1)
	pivot, _ := h.Add(transform.NoParent, transform.Identity())

	a := NewAnimator()
	a.AddOrbit(pivot, math.Pi)
	a.Update(h, 0.5)

	local, _ := h.Local(pivot)
	if got := rotationAngle(local.Rotation); math.Abs(got-math.Pi/2) > 1e-5 {
		t.Fatalf("rotation angle = %v, want π/2", got)
	}
	if !common.Near3(local.Right(), mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Right() = %v, want {0,0,-1}", local.Right())
	}
	if a.Elapsed() != 0.5 {
		t.Errorf("Elapsed() = %v, want 0.5", a.Elapsed())
	}
}

func TestUpdateIsReproducible(t *testing.T) {
	steps := []float32{0.016, 0.017, 0.016, 0.033, 0.001}

	run := func() mgl32.Quat {
		h := transform.NewHierarchy(1)
		pivot, _ := h.Add(transform.NoParent, transform.Identity())
		a := NewAnimator(WithOrbit(Orbit{Node: pivot, Speed: -0.7}))
		for _, dt := range steps {
			a.Update(h, dt)
		}
		local, _ := h.Local(pivot)
		return local.Rotation
	}

	if first, second := run(), run(); first != second {
		t.Fatalf("rotations differ: %v vs %v", first, second)
	}
}

func TestUpdateCarriesChildren(t *testing.T) {
	h := transform.NewHierarchy(2)
	pivot, _ := h.Add(transform.NoParent, transform.Identity())
	planet, _ := h.Add(pivot, transform.FromPosition(10, 0, 0))

	a := NewAnimator()
	a.AddOrbit(pivot, math.Pi)
	for i := 0; i < 4; i++ {
		a.Update(h, 0.25)
	}

	world, _ := h.World(planet)
	if !common.Near3(world.Position, mgl32.Vec3{-10, 0, 0}, 1e-4) {
		t.Errorf("planet after half orbit = %v, want {-10,0,0}", world.Position)
	}
}

func TestPulse(t *testing.T) {
	h := transform.NewHierarchy(0)
	a := NewAnimator()
	if got := a.Pulse(); got != 1 {
		t.Fatalf("Pulse() at t=0 = %v, want 1", got)
	}
	a.Update(h, math.Pi/4)
	if got := a.Pulse(); math.Abs(float64(got)-1.2) > 1e-5 {
		t.Errorf("Pulse() at t=π/4 = %v, want 1.2", got)
	}

	custom := NewAnimator(WithPulse(1, 0.5))
	custom.Update(h, math.Pi/2)
	if got := custom.Pulse(); math.Abs(float64(got)-1.5) > 1e-5 {
		t.Errorf("custom Pulse() = %v, want 1.5", got)
	}
}

func TestOrbitsReturnsCopy(t *testing.T) {
	a := NewAnimator()
	a.AddOrbit(0, 1)
	orbits := a.Orbits()
	orbits[0].Speed = 99
	if a.Orbits()[0].Speed != 1 {
		t.Error("Orbits() exposed internal slice")
	}
}
