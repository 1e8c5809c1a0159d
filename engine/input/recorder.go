package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Recorder accumulates window events between ticks.
// Event methods may be called from a different goroutine than Snapshot.
type Recorder struct {
	mu        sync.Mutex
	cursor    mgl32.Vec2
	hasCursor bool
	scroll    []float32
	keys      KeySet
	width     float32
	height    float32
}

// NewRecorder creates a recorder for a window of the given size with no cursor.
//
// Parameters:
//   - width: window width in pixels
//   - height: window height in pixels
//
// Returns:
//   - *Recorder: the recorder
func NewRecorder(width, height float32) *Recorder {
	return &Recorder{width: width, height: height}
}

// KeyDown marks k as held.
func (r *Recorder) KeyDown(k Key) {
	r.mu.Lock()
	r.keys = r.keys.With(k)
	r.mu.Unlock()
}

// KeyUp marks k as released.
func (r *Recorder) KeyUp(k Key) {
	r.mu.Lock()
	r.keys = r.keys.Without(k)
	r.mu.Unlock()
}

// KeyCode records a raw GLFW key transition. Codes not bound to a camera action are ignored.
//
// Parameters:
//   - code: the GLFW key code
//   - pressed: true for press or repeat, false for release
func (r *Recorder) KeyCode(code int, pressed bool) {
	k, ok := KeyFromCode(code)
	if !ok {
		return
	}
	if pressed {
		r.KeyDown(k)
	} else {
		r.KeyUp(k)
	}
}

// SetKeys replaces the whole held-key set.
func (r *Recorder) SetKeys(keys KeySet) {
	r.mu.Lock()
	r.keys = keys
	r.mu.Unlock()
}

// Scroll queues a vertical wheel delta. Positive values scroll up.
func (r *Recorder) Scroll(dy float32) {
	r.mu.Lock()
	r.scroll = append(r.scroll, dy)
	r.mu.Unlock()
}

// CursorMoved records the cursor position and marks it as inside the window.
func (r *Recorder) CursorMoved(x, y float32) {
	r.mu.Lock()
	r.cursor = mgl32.Vec2{x, y}
	r.hasCursor = true
	r.mu.Unlock()
}

// CursorLeft marks the cursor as outside the window.
func (r *Recorder) CursorLeft() {
	r.mu.Lock()
	r.hasCursor = false
	r.mu.Unlock()
}

// Resize records the window size.
func (r *Recorder) Resize(width, height float32) {
	r.mu.Lock()
	r.width = width
	r.height = height
	r.mu.Unlock()
}

// Snapshot returns the current input frame and drains the scroll queue.
//
// Returns:
//   - Frame: the input state since the previous snapshot
func (r *Recorder) Snapshot() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := Frame{
		Cursor:    r.cursor,
		HasCursor: r.hasCursor,
		Scroll:    r.scroll,
		Keys:      r.keys,
		Width:     r.width,
		Height:    r.height,
	}
	r.scroll = nil
	return f
}
