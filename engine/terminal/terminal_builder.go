package terminal

import "time"

// ModelBuilderOption is a function that configures a Model during construction.
type ModelBuilderOption func(*Model)

// WithSize sets the initial terminal size, used until the first resize message.
//
// Parameters:
//   - cols, rows: terminal size in cells
//
// Returns:
//   - ModelBuilderOption: a function that applies the size option
func WithSize(cols, rows int) ModelBuilderOption {
	return func(m *Model) {
		m.cols, m.rows = cols, rows
	}
}

// WithHoldWindow sets how long a key counts as held after its last press.
//
// Parameters:
//   - d: the hold window
//
// Returns:
//   - ModelBuilderOption: a function that applies the hold window option
func WithHoldWindow(d time.Duration) ModelBuilderOption {
	return func(m *Model) {
		m.holdWindow = d
	}
}

// WithTickInterval sets the time between engine steps.
//
// Parameters:
//   - d: the tick interval
//
// Returns:
//   - ModelBuilderOption: a function that applies the interval option
func WithTickInterval(d time.Duration) ModelBuilderOption {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) ModelBuilderOption {
	return func(m *Model) {
		m.now = now
	}
}
