package profiler

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// FrameStats describes the work done in one frame.
type FrameStats struct {
	Records int  // draw records submitted
	Lights  int  // lights in the scene
	Picked  bool // the frame was spent on a pick readback instead of presenting
}

// Report is one logged interval of statistics.
type Report struct {
	FPS        float64
	Frames     int
	Picks      int
	AvgRecords float64
	MaxLights  int
	HeapMB     float64
	GCCount    uint32
}

func (r Report) String() string {
	return fmt.Sprintf("profiler: fps %.1f | frames %d | picks %d | records %.1f | lights %d | heap %.2f MB | gc %d",
		r.FPS, r.Frames, r.Picks, r.AvgRecords, r.MaxLights, r.HeapMB, r.GCCount)
}

// Profiler tracks frame rate and per-frame scene statistics.
// Outputs a Report to the log at a configurable interval.
type Profiler struct {
	now            func() time.Time
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	quiet          bool

	frames    int
	picks     int
	records   int
	maxLights int

	last Report
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame. When the update interval has elapsed the
// accumulated statistics are logged and reset.
//
// Parameters:
//   - stats: what the frame did
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(stats FrameStats) bool {
	p.frames++
	p.records += stats.Records
	if stats.Picked {
		p.picks++
	}
	if stats.Lights > p.maxLights {
		p.maxLights = stats.Lights
	}

	current := p.now()
	elapsed := current.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	p.last = Report{
		FPS:        float64(p.frames) / elapsed.Seconds(),
		Frames:     p.frames,
		Picks:      p.picks,
		AvgRecords: float64(p.records) / float64(p.frames),
		MaxLights:  p.maxLights,
		HeapMB:     float64(p.memStats.Alloc) / 1024 / 1024,
		GCCount:    p.memStats.NumGC,
	}
	if !p.quiet {
		log.Println(p.last)
	}

	p.frames, p.picks, p.records, p.maxLights = 0, 0, 0, 0
	p.lastTime = current
	return true
}

// Last returns the most recently logged report.
func (p *Profiler) Last() Report {
	return p.last
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often statistics are logged.
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithQuiet computes reports without logging them.
func WithQuiet(quiet bool) ProfilerOption {
	return func(p *Profiler) {
		p.quiet = quiet
	}
}
