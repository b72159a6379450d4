package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFPSCounter(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewFPSCounter(start, time.Second)

	for i := 1; i < 60; i++ {
		_, ok := c.Frame(start.Add(time.Duration(i) * time.Second / 60))
		assert.False(t, ok)
	}
	fps, ok := c.Frame(start.Add(time.Second))
	assert.True(t, ok)
	assert.Equal(t, 60, fps)

	// next interval starts fresh
	fps, ok = c.Frame(start.Add(3 * time.Second))
	assert.True(t, ok)
	assert.Equal(t, 1, fps)
}

func TestFrameTrack(t *testing.T) {
	clock := time.Unix(0, 0)
	f := NewFrame()
	f.now = func() time.Time { return clock }

	stop := f.Track("render")
	clock = clock.Add(4200 * time.Microsecond)
	stop()

	stop = f.Track("swap")
	clock = clock.Add(2 * time.Millisecond)
	stop()

	stop = f.Track("render")
	clock = clock.Add(time.Millisecond)
	stop()

	snap := f.Snapshot()
	assert.Equal(t, 5200*time.Microsecond, snap["render"])
	assert.Equal(t, "render:5.2ms, swap:2ms", f.TopN(5))
	assert.Equal(t, "render:5.2ms", f.TopN(1))

	f.Reset()
	assert.Empty(t, f.Snapshot())
	assert.Equal(t, "", f.TopN(3))
}

func TestFrameAverage(t *testing.T) {
	clock := time.Unix(0, 0)
	f := NewFrame()
	f.now = func() time.Time { return clock }

	assert.Equal(t, "", f.Average(1), "no frames counted yet")

	for i := 0; i < 4; i++ {
		stop := f.Track("frame")
		clock = clock.Add(2500 * time.Microsecond)
		stop()
		f.EndFrame()
	}
	assert.Equal(t, "frame:10ms", f.TopN(1), "totals cover the whole window")
	assert.Equal(t, "frame:2.5ms", f.Average(1))

	f.Reset()
	assert.Equal(t, "", f.Average(1), "reset clears the frame count")
}

func TestLimiterSchedule(t *testing.T) {
	l := NewLimiter(100)
	start := time.Unix(0, 0)

	assert.Equal(t, start.Add(10*time.Millisecond), l.schedule(start))
	// Later frames advance from the previous deadline, not from now
	assert.Equal(t, start.Add(20*time.Millisecond), l.schedule(start.Add(13*time.Millisecond)))

	// Slightly late keeps the schedule
	l.resync(start.Add(25 * time.Millisecond))
	assert.Equal(t, start.Add(20*time.Millisecond), l.next)

	// A hitch longer than one frame restarts it
	l.resync(start.Add(50 * time.Millisecond))
	assert.Equal(t, start.Add(60*time.Millisecond), l.next)
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(0)
	begin := time.Now()
	for i := 0; i < 1000; i++ {
		l.Wait()
	}
	assert.Less(t, time.Since(begin), time.Second)
	assert.True(t, l.next.IsZero())
}
