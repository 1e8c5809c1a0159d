// Package input defines the per-tick input snapshot consumed by the camera controllers
// and a Recorder that turns push-style window events into those snapshots.
package input

import (
	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Key is a logical key the camera controllers react to.
type Key uint8

const (
	KeyArrowUp Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyH
	KeyJ
	KeyK
	KeyL
	keyCount
)

var keyNames = [keyCount]string{"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight", "H", "J", "K", "L"}

func (k Key) String() string {
	if k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// KeySet is a bit set of held keys.
type KeySet uint16

// NewKeySet returns a KeySet holding keys.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return k < keyCount && s&(1<<k) != 0
}

// With returns s with k added.
func (s KeySet) With(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s | 1<<k
}

// Without returns s with k removed.
func (s KeySet) Without(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s &^ (1 << k)
}

// Any reports whether any of keys is held.
func (s KeySet) Any(keys ...Key) bool {
	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// KeyFromCode maps a GLFW key code to a logical key.
//
// Parameters:
//   - code: a GLFW key code, see common.Key*
//
// Returns:
//   - Key: the logical key
//   - bool: false if the code is not bound to a camera action
func KeyFromCode(code int) (Key, bool) {
	switch code {
	case common.KeyUp:
		return KeyArrowUp, true
	case common.KeyDown:
		return KeyArrowDown, true
	case common.KeyLeft:
		return KeyArrowLeft, true
	case common.KeyRight:
		return KeyArrowRight, true
	case common.KeyH:
		return KeyH, true
	case common.KeyJ:
		return KeyJ, true
	case common.KeyK:
		return KeyK, true
	case common.KeyL:
		return KeyL, true
	}
	return 0, false
}

// Frame is the read-only input snapshot of one tick.
type Frame struct {
	// Cursor is the cursor position in window pixels, origin top-left, Y down.
	Cursor mgl32.Vec2
	// HasCursor is false when the cursor is outside the window.
	HasCursor bool
	// Scroll holds the vertical wheel deltas received since the previous frame, in order.
	Scroll []float32
	// Keys holds the keys currently pressed.
	Keys KeySet
	// Width and Height are the window size in pixels.
	Width  float32
	Height float32
}

// Size returns the window size as a vector.
func (f Frame) Size() mgl32.Vec2 {
	return mgl32.Vec2{f.Width, f.Height}
}

// CursorUsable reports whether the cursor can be mapped to normalized device coordinates.
func (f Frame) CursorUsable() bool {
	return f.HasCursor && f.Width > 0 && f.Height > 0
}

// NDC maps the cursor to normalized device coordinates in [-1, 1], Y up.
// The result is undefined when CursorUsable is false.
func (f Frame) NDC() mgl32.Vec2 {
	return mgl32.Vec2{
		f.Cursor[0]/f.Width*2 - 1,
		-(f.Cursor[1]/f.Height*2 - 1),
	}
}
