package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Frame accumulates per-section timings over a window of frames.
// Usage: defer frame.Track("render.Frame")()
type Frame struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	frames int
	now    func() time.Time
}

// NewFrame creates an empty frame profile
func NewFrame() *Frame {
	return &Frame{totals: make(map[string]time.Duration), now: time.Now}
}

// Track returns a stop function that records the elapsed time under name
func (f *Frame) Track(name string) func() {
	start := f.now()
	return func() {
		d := f.now().Sub(start)
		f.mu.Lock()
		f.totals[name] += d
		f.mu.Unlock()
	}
}

// EndFrame counts one finished frame toward Average
func (f *Frame) EndFrame() {
	f.mu.Lock()
	f.frames++
	f.mu.Unlock()
}

// Reset clears the totals and the frame count. Call at the start of each window.
func (f *Frame) Reset() {
	f.mu.Lock()
	clear(f.totals)
	f.frames = 0
	f.mu.Unlock()
}

// Snapshot returns a copy of the current totals
func (f *Frame) Snapshot() map[string]time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]time.Duration, len(f.totals))
	for k, v := range f.totals {
		out[k] = v
	}
	return out
}

// TopN formats the n slowest section totals, e.g. "render.Frame:4.2ms, swap:2.1ms"
func (f *Frame) TopN(n int) string {
	return top(f.Snapshot(), n, 1)
}

// Average is TopN divided by the frames counted with EndFrame since the last Reset
func (f *Frame) Average(n int) string {
	f.mu.Lock()
	frames := f.frames
	f.mu.Unlock()
	if frames == 0 {
		return ""
	}
	return top(f.Snapshot(), n, frames)
}

func top(ss map[string]time.Duration, n, div int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+formatMs(list[i].dur/time.Duration(div)))
	}
	return strings.Join(parts, ", ")
}

// one decimal, dropping ".0"
func formatMs(d time.Duration) string {
	s := fmt.Sprintf("%.1f", float64(d.Microseconds())/1000.0)
	return strings.TrimSuffix(s, ".0") + "ms"
}
