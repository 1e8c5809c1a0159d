package animator

// AnimatorBuilderOption is a functional option for configuring an Animator.
type AnimatorBuilderOption func(*animatorImpl)

// WithOrbit registers an orbit during construction.
//
// Parameters:
//   - o: the orbit to register
//
// Returns:
//   - AnimatorBuilderOption: functional option adding the orbit
func WithOrbit(o Orbit) AnimatorBuilderOption {
	return func(a *animatorImpl) {
		a.orbits = append(a.orbits, o)
	}
}

// WithPulse sets the star pulse frequency and amplitude.
//
// Parameters:
//   - frequency: angular frequency in radians per second
//   - amplitude: peak deviation from 1
//
// Returns:
//   - AnimatorBuilderOption: functional option setting the pulse
func WithPulse(frequency, amplitude float32) AnimatorBuilderOption {
	return func(a *animatorImpl) {
		a.pulseFrequency = frequency
		a.pulseAmplitude = amplitude
	}
}
