package beat

import (
	"github.com/pulsekit/pulsekit/internal/models"
	"github.com/pulsekit/pulsekit/internal/stats"
)

// Filter decides whether a detected beat is plausible given the recent
// rhythm and keeps the history stable by substituting a synthetic beat when
// it is not. A missed or garbled beat then costs one fabricated timestamp
// instead of a wildly wrong interval in the BPM window.
type Filter struct {
	history *History
}

// NewFilter creates a filter over a fresh history window
func NewFilter() *Filter {
	return &Filter{history: NewHistory()}
}

// History exposes the filter's window. The filter remains the sole writer;
// use only for synchronized reads and estimation.
func (f *Filter) History() *History {
	return f.history
}

// IsOutlier reports whether newBeatTime is rhythmically implausible.
// With fewer entries than the full window there is not enough history to
// judge, so every beat is accepted. Otherwise the candidate interval is
// tested against the IQR fence over the intervals of history plus the
// candidate; strictly outside the fence means outlier.
func (f *Filter) IsOutlier(newBeatTime float64) bool {
	if f.history.Len() < f.history.capacity {
		return false
	}

	extended := append(f.history.Snapshot(), newBeatTime)
	intervals := stats.Diff(extended)
	lower, upper := stats.IQRBounds(intervals)

	newInterval := intervals[len(intervals)-1]
	return newInterval < lower || newInterval > upper
}

// AcceptOrSubstitute inserts the beat into the history. An accepted beat is
// appended as-is. An outlier is replaced by a synthetic timestamp at the
// last beat plus the mean historical interval. Either way the history grows
// by exactly one entry (capped at capacity) and the returned event carries
// the timestamp that was actually inserted.
func (f *Filter) AcceptOrSubstitute(newBeatTime float64) models.BeatEvent {
	if f.IsOutlier(newBeatTime) {
		if last, ok := f.history.Last(); ok {
			if mean, ok := f.history.MeanInterval(); ok {
				synthetic := last + mean
				f.history.Append(synthetic)
				return models.BeatEvent{Timestamp: synthetic, Synthetic: true}
			}
		}
	}

	f.history.Append(newBeatTime)
	return models.BeatEvent{Timestamp: newBeatTime}
}

// Reset clears the history, for reuse across sensor reconnects
func (f *Filter) Reset() {
	f.history.Reset()
}
