package profiling

import "time"

// FPSCounter counts frames and reports a rate once per interval
type FPSCounter struct {
	interval time.Duration
	frames   int
	last     time.Time
}

// NewFPSCounter starts counting at start, reporting every interval
func NewFPSCounter(start time.Time, interval time.Duration) *FPSCounter {
	return &FPSCounter{interval: interval, last: start}
}

// Frame records one frame at now. When an interval has elapsed it returns the
// rounded rate and true, and starts a new interval.
func (c *FPSCounter) Frame(now time.Time) (int, bool) {
	c.frames++
	elapsed := now.Sub(c.last)
	if elapsed < c.interval {
		return 0, false
	}
	fps := int(float64(c.frames)/elapsed.Seconds() + 0.5)
	c.frames = 0
	c.last = now
	return fps, true
}
