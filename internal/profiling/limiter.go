package profiling

import "time"

// The last stretch before a deadline is spun instead of slept
const spinWindow = 200 * time.Microsecond

// Limiter caps the frame rate
type Limiter struct {
	target time.Duration
	next   time.Time
}

// NewLimiter limits to fps frames per second. fps <= 0 disables the limit.
func NewLimiter(fps int) *Limiter {
	l := &Limiter{}
	if fps > 0 {
		l.target = time.Second / time.Duration(fps)
	}
	return l
}

// Wait blocks until the next frame is due.
// Uses a hybrid sleep/spin approach for better precision on high caps.
func (l *Limiter) Wait() {
	if l.target <= 0 {
		return
	}
	deadline := l.schedule(time.Now())
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}
	l.resync(time.Now())
}

func (l *Limiter) schedule(now time.Time) time.Time {
	if l.next.IsZero() {
		l.next = now.Add(l.target)
	} else {
		l.next = l.next.Add(l.target)
	}
	return l.next
}

// After a hitch the schedule restarts from now instead of bursting to catch up
func (l *Limiter) resync(now time.Time) {
	if late := now.Sub(l.next); late > l.target {
		l.next = now.Add(l.target)
	}
}
