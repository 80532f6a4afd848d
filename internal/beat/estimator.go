package beat

import "github.com/pulsekit/pulsekit/internal/stats"

// CalculateBPM computes a robust beats-per-minute figure from the history.
// Intervals outside the IQR fence are discarded before averaging. This is a
// second, independent outlier pass on top of the filter's rejection: the
// filter guards insertions, this guards the estimate against drift that
// slipped through. Returns 0 when fewer than 2 timestamps are available or
// when every interval was rejected; 0 is the "undetermined" sentinel, never
// an estimate.
func CalculateBPM(history *History) float64 {
	intervals := history.Intervals()
	if len(intervals) == 0 {
		return 0
	}

	lower, upper := stats.IQRBounds(intervals)

	filtered := make([]float64, 0, len(intervals))
	for _, interval := range intervals {
		if interval >= lower && interval <= upper {
			filtered = append(filtered, interval)
		}
	}
	if len(filtered) == 0 {
		return 0
	}

	return 60.0 / stats.Mean(filtered)
}
