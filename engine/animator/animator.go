package animator

import (
	"math"

	"github.com/Carmen-Shannon/crystal-space/engine/transform"
)

// Orbit spins a pivot node about its parent's vertical axis at a fixed angular speed.
// Children of the pivot are carried around with it, which is how planets orbit the
// star and stations orbit their planet.
type Orbit struct {
	// Node is the pivot whose local rotation is advanced.
	Node transform.NodeID
	// Speed is the signed angular velocity in radians per second.
	Speed float32
}

type animatorImpl struct {
	orbits  []Orbit
	elapsed float64

	pulseFrequency float32
	pulseAmplitude float32
}

// Animator advances orbit pivots and tracks the elapsed animation time.
// It holds no reference to the hierarchy; Update writes into the one it is given.
type Animator interface {
	// AddOrbit registers a pivot node with its angular speed.
	//
	// Parameters:
	//   - node: the pivot node to spin
	//   - speed: angular velocity in radians per second (negative spins clockwise)
	//
	// Returns:
	//   - int: index of the orbit in Orbits()
	AddOrbit(node transform.NodeID, speed float32) int

	// Orbits returns a copy of the registered orbits.
	//
	// Returns:
	//   - []Orbit: the orbits in registration order
	Orbits() []Orbit

	// Update rotates every orbit pivot by speed * dt and advances the elapsed time.
	//
	// Parameters:
	//   - h: the hierarchy holding the pivot nodes
	//   - dt: elapsed time since the previous tick in seconds
	Update(h *transform.Hierarchy, dt float32)

	// Elapsed returns the accumulated animation time in seconds.
	//
	// Returns:
	//   - float64: seconds since the animator was created
	Elapsed() float64

	// Pulse returns the current star pulse factor, 1 + amplitude * sin(elapsed * frequency).
	//
	// Returns:
	//   - float32: the pulse multiplier, in [1 - amplitude, 1 + amplitude]
	Pulse() float32
}

var _ Animator = &animatorImpl{}

// NewAnimator creates an Animator with no orbits.
// The pulse defaults to frequency 2 rad/s and amplitude 0.2.
//
// Parameters:
//   - options: functional options to configure the animator
//
// Returns:
//   - Animator: the newly created animator
func NewAnimator(options ...AnimatorBuilderOption) Animator {
	a := &animatorImpl{
		pulseFrequency: 2.0,
		pulseAmplitude: 0.2,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *animatorImpl) AddOrbit(node transform.NodeID, speed float32) int {
	a.orbits = append(a.orbits, Orbit{Node: node, Speed: speed})
	return len(a.orbits) - 1
}

func (a *animatorImpl) Orbits() []Orbit {
	out := make([]Orbit, len(a.orbits))
	copy(out, a.orbits)
	return out
}

func (a *animatorImpl) Update(h *transform.Hierarchy, dt float32) {
	for _, o := range a.orbits {
		h.RotateY(o.Node, o.Speed*dt)
	}
	a.elapsed += float64(dt)
}

func (a *animatorImpl) Elapsed() float64 {
	return a.elapsed
}

func (a *animatorImpl) Pulse() float32 {
	return float32(math.Sin(a.elapsed*float64(a.pulseFrequency)))*a.pulseAmplitude + 1
}
