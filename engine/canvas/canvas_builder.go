package canvas

import "github.com/Carmen-Shannon/crystal-space/common"

// CanvasBuilderOption is a function that configures a Canvas during construction.
type CanvasBuilderOption func(*canvasImpl)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the window title
//
// Returns:
//   - CanvasBuilderOption: a function that applies the title option
func WithTitle(title string) CanvasBuilderOption {
	return func(c *canvasImpl) {
		c.title = title
	}
}

// WithSize sets the initial window size.
//
// Parameters:
//   - width, height: window size in pixels
//
// Returns:
//   - CanvasBuilderOption: a function that applies the size option
func WithSize(width, height int) CanvasBuilderOption {
	return func(c *canvasImpl) {
		c.width = width
		c.height = height
	}
}

// WithTPS sets the number of ebiten updates, and so engine steps, per second.
// Non-positive values are ignored.
//
// Parameters:
//   - tps: ticks per second
//
// Returns:
//   - CanvasBuilderOption: a function that applies the TPS option
func WithTPS(tps int) CanvasBuilderOption {
	return func(c *canvasImpl) {
		if tps > 0 {
			c.tps = tps
		}
	}
}

// WithClearColor sets the background colour.
//
// Parameters:
//   - col: the background colour
//
// Returns:
//   - CanvasBuilderOption: a function that applies the colour option
func WithClearColor(col common.Color) CanvasBuilderOption {
	return func(c *canvasImpl) {
		c.clearColor = col
	}
}
