package beat

import "github.com/pulsekit/pulsekit/internal/stats"

// HistoryCapacity is the number of accepted beat timestamps retained for
// outlier judgment and BPM estimation.
const HistoryCapacity = 20

// History is the bounded, insertion-ordered window of accepted beat
// timestamps. The oldest entry is evicted first once capacity is exceeded.
// It is owned by a single writer (the filter); readers must go through a
// Snapshot taken under the owner's lock.
type History struct {
	timestamps []float64
	capacity   int
}

// NewHistory creates an empty history with the default capacity
func NewHistory() *History {
	return NewHistoryWithCapacity(HistoryCapacity)
}

// NewHistoryWithCapacity creates an empty history with a custom capacity
func NewHistoryWithCapacity(capacity int) *History {
	if capacity < 2 {
		capacity = HistoryCapacity
	}
	return &History{
		timestamps: make([]float64, 0, capacity),
		capacity:   capacity,
	}
}

// Len returns the number of retained timestamps
func (h *History) Len() int {
	return len(h.timestamps)
}

// Capacity returns the retention window size
func (h *History) Capacity() int {
	return h.capacity
}

// Last returns the most recent timestamp, or (0, false) when empty.
func (h *History) Last() (float64, bool) {
	if len(h.timestamps) == 0 {
		return 0, false
	}
	return h.timestamps[len(h.timestamps)-1], true
}

// Append inserts a timestamp and evicts the oldest entry when over capacity
func (h *History) Append(ts float64) {
	h.timestamps = append(h.timestamps, ts)
	if len(h.timestamps) > h.capacity {
		h.timestamps = h.timestamps[1:]
	}
}

// Intervals returns the successive inter-beat intervals
func (h *History) Intervals() []float64 {
	return stats.Diff(h.timestamps)
}

// MeanInterval returns the mean inter-beat interval, or (0, false) when
// fewer than 2 timestamps are retained.
func (h *History) MeanInterval() (float64, bool) {
	intervals := h.Intervals()
	if len(intervals) == 0 {
		return 0, false
	}
	return stats.Mean(intervals), true
}

// Snapshot returns a copy of the retained timestamps, oldest first
func (h *History) Snapshot() []float64 {
	out := make([]float64, len(h.timestamps))
	copy(out, h.timestamps)
	return out
}

// Reset discards all retained timestamps, for reuse across reconnects
func (h *History) Reset() {
	h.timestamps = h.timestamps[:0]
}
