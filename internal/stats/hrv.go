package stats

import "math"

// RMSSD calculates the root mean square of successive RR differences.
// Requires at least 2 values; returns (0, false) otherwise.
func RMSSD(rr []float64) (float64, bool) {
	diffs := Diff(rr)
	if len(diffs) == 0 {
		return 0, false
	}
	sumSq := 0.0
	for _, d := range diffs {
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(diffs))), true
}

// SDNN calculates the sample standard deviation of RR intervals.
// Requires at least 2 values; returns (0, false) otherwise.
func SDNN(rr []float64) (float64, bool) {
	if len(rr) < 2 {
		return 0, false
	}
	return SampleStdDev(rr), true
}

// PNN50 calculates the percentage of successive RR differences whose
// absolute value exceeds 50 ms. The denominator is the number of RR values,
// not the number of differences, matching the hrv_calc batch tooling.
// Returns (0, false) on empty input.
func PNN50(rr []float64) (float64, bool) {
	if len(rr) == 0 {
		return 0, false
	}
	nn50 := 0
	for _, d := range Diff(rr) {
		if math.Abs(d) > 50 {
			nn50++
		}
	}
	return 100 * float64(nn50) / float64(len(rr)), true
}

// NormalizeRRUnits scales an RR series recorded in seconds to milliseconds.
// A series whose maximum is below 10 cannot plausibly be in milliseconds
// (no human RR interval is under 10 ms), so it is treated as seconds.
// Returns a new slice; the input is not modified.
func NormalizeRRUnits(rr []float64) []float64 {
	out := make([]float64, len(rr))
	copy(out, rr)
	if len(out) == 0 || Max(out) >= 10 {
		return out
	}
	for i := range out {
		out[i] *= 1000
	}
	return out
}

// CleanRR removes RR outliers beyond 3 standard deviations of the mean and
// fills the holes by linear interpolation between the neighbouring valid
// values (nearest valid value at the edges). The result has the same length
// as the input. If fewer than 2 values survive the cut, the input is
// returned unchanged, since there is nothing to interpolate from.
func CleanRR(rr []float64) []float64 {
	if len(rr) < 2 {
		out := make([]float64, len(rr))
		copy(out, rr)
		return out
	}

	mean := Mean(rr)
	std := StdDev(rr)
	lower, upper := mean-3*std, mean+3*std

	valid := make([]bool, len(rr))
	validCount := 0
	for i, v := range rr {
		if v > lower && v < upper {
			valid[i] = true
			validCount++
		}
	}
	if validCount < 2 {
		out := make([]float64, len(rr))
		copy(out, rr)
		return out
	}

	out := make([]float64, len(rr))
	prev := -1 // index of previous valid value
	for i := range rr {
		if valid[i] {
			out[i] = rr[i]
			prev = i
			continue
		}

		next := -1
		for j := i + 1; j < len(rr); j++ {
			if valid[j] {
				next = j
				break
			}
		}

		switch {
		case prev >= 0 && next >= 0:
			w := float64(i-prev) / float64(next-prev)
			out[i] = rr[prev]*(1-w) + rr[next]*w
		case prev >= 0:
			out[i] = rr[prev]
		default:
			out[i] = rr[next]
		}
	}
	return out
}
