package light

import "github.com/Carmen-Shannon/crystal-space/common"

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithType is an option builder that sets the kind of light.
//
// Parameters:
//   - t: the light type
//
// Returns:
//   - LightBuilderOption: a function that applies the type option to a lightImpl
func WithType(t LightType) LightBuilderOption {
	return func(l *lightImpl) {
		l.lightType = t
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - c: the light color
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(c common.Color) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = c
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithRange is an option builder that sets the attenuation range.
//
// Parameters:
//   - r: the range in world units
//
// Returns:
//   - LightBuilderOption: a function that applies the range option to a lightImpl
func WithRange(r float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.lightRange = r
	}
}

// WithBlink is an option builder that turns the light into a beacon.
// The beacon is lit for the first dutyCycle fraction of every period, offset by phase.
//
// Parameters:
//   - period: blink period in seconds
//   - phase: time offset in seconds
//   - dutyCycle: lit fraction of the period in (0, 1]
//
// Returns:
//   - LightBuilderOption: a function that applies the blink option to a lightImpl
func WithBlink(period, phase, dutyCycle float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.lightType = LightTypeBeacon
		l.blinkPeriod = period
		l.blinkPhase = phase
		l.dutyCycle = common.Clamp(dutyCycle, 0, 1)
	}
}

// WithEnabled is an option builder that sets whether the light starts enabled.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}
