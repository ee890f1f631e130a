package profiler

import (
	"testing"
	"time"
)

func TestTickReportsInterval(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewProfiler(WithClock(func() time.Time { return now }), WithQuiet(true))

	for i := 0; i < 9; i++ {
		now = now.Add(100 * time.Millisecond)
		if p.Tick(FrameStats{Records: 4, Lights: i % 3}) {
			t.Fatalf("tick %d reported early", i)
		}
	}
	now = now.Add(100 * time.Millisecond)
	if !p.Tick(FrameStats{Records: 14, Lights: 1, Picked: true}) {
		t.Fatalf("tick after one second should report")
	}

	r := p.Last()
	if r.Frames != 10 || r.Picks != 1 || r.MaxLights != 2 {
		t.Fatalf("report = %+v", r)
	}
	if r.FPS != 10 || r.AvgRecords != 5 {
		t.Fatalf("fps = %v records = %v", r.FPS, r.AvgRecords)
	}
}

func TestCountersResetAfterReport(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewProfiler(WithClock(func() time.Time { return now }), WithQuiet(true), WithInterval(time.Second))
	now = now.Add(time.Second)
	p.Tick(FrameStats{Picked: true, Lights: 4})

	now = now.Add(2 * time.Second)
	p.Tick(FrameStats{})
	if r := p.Last(); r.Frames != 1 || r.Picks != 0 || r.MaxLights != 0 {
		t.Fatalf("counters leaked across reports: %+v", r)
	}
}
