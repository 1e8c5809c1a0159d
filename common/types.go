// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "fmt"

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB builds an opaque Color.
//
// Parameters:
//   - r, g, b: color components in [0, 1]
//
// Returns:
//   - Color: the opaque color
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Scale multiplies the color channels by k, leaving alpha untouched.
// Channels are not clamped, so the result can be used as an emissive (HDR) value.
//
// Parameters:
//   - k: scale factor
//
// Returns:
//   - Color: the scaled color
func (c Color) Scale(k float32) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// Clamped limits every channel to [0, 1].
//
// Returns:
//   - Color: the clamped color
func (c Color) Clamped() Color {
	return Color{R: Clamp(c.R, 0, 1), G: Clamp(c.G, 0, 1), B: Clamp(c.B, 0, 1), A: Clamp(c.A, 0, 1)}
}

// RGBA8 converts the clamped color to 8-bit channels.
//
// Returns:
//   - r, g, b, a: 8-bit channel values
func (c Color) RGBA8() (r, g, b, a uint8) {
	cc := c.Clamped()
	return uint8(cc.R*255 + 0.5), uint8(cc.G*255 + 0.5), uint8(cc.B*255 + 0.5), uint8(cc.A*255 + 0.5)
}

// Hex returns the clamped color as a "#rrggbb" string.
//
// Returns:
//   - string: hex representation without alpha
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
