package scene

import "time"

// frameTimes keeps the last N tick durations in a ring buffer.
type frameTimes struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func newFrameTimes(ringSize int) *frameTimes {
	if ringSize < 1 {
		ringSize = 1
	}
	return &frameTimes{buffer: make([]time.Duration, ringSize)}
}

func (f *frameTimes) record(d time.Duration) {
	f.buffer[f.nextIndex] = d
	f.nextIndex++
	if f.nextIndex >= len(f.buffer) {
		f.nextIndex = 0
	}
	if f.filled < len(f.buffer) {
		f.filled++
	}
}

// snapshot returns up to the last n durations, oldest first.
func (f *frameTimes) snapshot(n int) []time.Duration {
	if n > f.filled {
		n = f.filled
	}
	out := make([]time.Duration, n)
	idx := f.nextIndex - n
	if idx < 0 {
		idx += len(f.buffer)
	}
	for i := range out {
		out[i] = f.buffer[idx]
		idx++
		if idx >= len(f.buffer) {
			idx = 0
		}
	}
	return out
}

func (f *frameTimes) mean() time.Duration {
	if f.filled == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range f.snapshot(f.filled) {
		sum += d
	}
	return sum / time.Duration(f.filled)
}
