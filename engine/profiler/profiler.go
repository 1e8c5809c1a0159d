package profiler

import (
	"log"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Sample is the per-tick state the profiler aggregates.
type Sample struct {
	Scale       float32
	Position    mgl32.Vec3
	Zoomed      bool
	Panned      bool
	Constrained bool
}

// Report is one logged interval.
type Report struct {
	TicksPerSecond float64
	Zooms          int
	Pans           int
	Clamps         int
	Scale          float32
	Position       mgl32.Vec3
	HeapMB         float64
	AllocRateMB    float64
	GCCount        uint32
	LastPauseUs    uint64
	MaxPauseUs     uint64
	SysMB          float64
}

// Profiler tracks tick rate, camera activity and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	tickCount      int
	zooms          int
	pans           int
	clamps         int
	last           Sample
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now     func() time.Time
	logf    func(format string, args ...any)
	onFlush func(Report)
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second; output goes to the standard logger.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		logf:           log.Printf,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per engine tick.
// Logs statistics when the update interval has elapsed: ticks per second, zoom/pan/clamp
// counts for the interval, the latest camera scale and position, heap usage, allocation
// rate, GC count/pause times and total memory.
//
// Parameters:
//   - s: the state of the tick
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(s Sample) bool {
	p.tickCount++
	if s.Zoomed {
		p.zooms++
	}
	if s.Panned {
		p.pans++
	}
	if s.Constrained {
		p.clamps++
	}
	p.last = s

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	r := Report{
		TicksPerSecond: float64(p.tickCount) / elapsed.Seconds(),
		Zooms:          p.zooms,
		Pans:           p.pans,
		Clamps:         p.clamps,
		Scale:          s.Scale,
		Position:       s.Position,
	}

	runtime.ReadMemStats(&p.memStats)
	r.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
	r.SysMB = float64(p.memStats.Sys) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	r.AllocRateMB = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	r.GCCount = p.memStats.NumGC
	if r.GCCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		r.LastPauseUs = p.memStats.PauseNs[(r.GCCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if r.GCCount-startIdx > 256 {
			startIdx = r.GCCount - 256
		}
		for i := startIdx; i < r.GCCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > r.MaxPauseUs {
				r.MaxPauseUs = pause
			}
		}
	}

	p.logf("[Profiler] TPS: %.2f | Zoom: %d Pan: %d Clamp: %d | Scale: %.3f Pos: (%.2f, %.2f, %.2f) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		r.TicksPerSecond, r.Zooms, r.Pans, r.Clamps, r.Scale, r.Position[0], r.Position[1], r.Position[2],
		r.HeapMB, r.AllocRateMB, r.GCCount, r.LastPauseUs, r.MaxPauseUs, r.SysMB)
	if p.onFlush != nil {
		p.onFlush(r)
	}

	p.tickCount = 0
	p.zooms, p.pans, p.clamps = 0, 0, 0
	p.lastTime = currentTime
	p.lastGCCount = r.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recent sample passed to Tick.
func (p *Profiler) Last() Sample {
	return p.last
}
