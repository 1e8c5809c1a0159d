package light

import (
	"math"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypePoint represents a steady light that emits in all directions from its node.
	// Used for the star glow and station window strips.
	LightTypePoint LightType = iota

	// LightTypeBeacon represents a point light that blinks with a fixed period.
	// Used for station navigation lights.
	LightTypeBeacon
)

// String returns the lower-case name of the light type.
func (t LightType) String() string {
	switch t {
	case LightTypePoint:
		return "point"
	case LightTypeBeacon:
		return "beacon"
	default:
		return "unknown"
	}
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType   LightType
	node        transform.NodeID
	color       common.Color
	intensity   float32
	lightRange  float32
	blinkPeriod float32
	blinkPhase  float32
	dutyCycle   float32
	enabled     bool
}

// Light defines the interface for a light source attached to a hierarchy node.
//
// Lights carry no position of their own: the position is resolved from the node's world
// transform, so a light on a station follows the station around its planet.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (point or beacon)
	Type() LightType

	// Node returns the hierarchy node the light is attached to.
	//
	// Returns:
	//   - transform.NodeID: the owning node
	Node() transform.NodeID

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - common.Color: the light color
	Color() common.Color

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the base intensity value
	Intensity() float32

	// Range returns the maximum attenuation distance of the light.
	//
	// Returns:
	//   - float32: the range value
	Range() float32

	// Enabled returns whether this light is active for rendering.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// IntensityAt returns the effective intensity at the given animation time.
	// Point lights return their base intensity; beacons return it while lit and zero
	// otherwise. Disabled lights always return zero.
	//
	// Parameters:
	//   - elapsed: animation time in seconds
	//
	// Returns:
	//   - float32: the effective intensity
	IntensityAt(elapsed float64) float32

	// WorldPosition resolves the light's position from its node.
	//
	// Parameters:
	//   - h: the hierarchy holding the node
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	//   - bool: false if the node does not exist in h
	WorldPosition(h *transform.Hierarchy) (mgl32.Vec3, bool)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - c: the new color
	SetColor(c common.Color)

	// SetIntensity sets the base intensity.
	//
	// Parameters:
	//   - intensity: the new intensity
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a point light attached to node.
// Defaults: white, intensity 1, range 10, enabled, beacon period 1s with a 50% duty cycle.
//
// Parameters:
//   - node: the hierarchy node the light follows
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewLight(node transform.NodeID, options ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:   LightTypePoint,
		node:        node,
		color:       common.RGB(1, 1, 1),
		intensity:   1,
		lightRange:  10,
		blinkPeriod: 1,
		dutyCycle:   0.5,
		enabled:     true,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Node() transform.NodeID {
	return l.node
}

func (l *lightImpl) Color() common.Color {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) IntensityAt(elapsed float64) float32 {
	if !l.enabled {
		return 0
	}
	if l.lightType != LightTypeBeacon || l.blinkPeriod <= 0 {
		return l.intensity
	}
	period := float64(l.blinkPeriod)
	t := math.Mod(elapsed+float64(l.blinkPhase), period)
	if t < 0 {
		t += period
	}
	if t < period*float64(l.dutyCycle) {
		return l.intensity
	}
	return 0
}

func (l *lightImpl) WorldPosition(h *transform.Hierarchy) (mgl32.Vec3, bool) {
	world, ok := h.World(l.node)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return world.Position, true
}

func (l *lightImpl) SetColor(c common.Color) {
	l.color = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
