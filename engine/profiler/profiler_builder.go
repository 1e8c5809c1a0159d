package profiler

import "time"

// ProfilerBuilderOption is a function that configures a Profiler during construction.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often statistics are logged.
//
// Parameters:
//   - d: the logging interval
//
// Returns:
//   - ProfilerBuilderOption: a function that applies the interval option
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces the time source.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerBuilderOption: a function that applies the clock option
func WithClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithLogf replaces the log output function.
//
// Parameters:
//   - logf: printf-style sink for the statistics line
//
// Returns:
//   - ProfilerBuilderOption: a function that applies the log option
func WithLogf(logf func(format string, args ...any)) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.logf = logf
	}
}

// WithReportHandler registers a function receiving every logged report.
//
// Parameters:
//   - fn: the report handler
//
// Returns:
//   - ProfilerBuilderOption: a function that applies the handler option
func WithReportHandler(fn func(Report)) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.onFlush = fn
	}
}
