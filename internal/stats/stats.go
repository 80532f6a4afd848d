// Package stats implements the descriptive statistics and HRV metrics
// computed over recorded heart-rate and RR-interval series.
package stats

import (
	"math"
	"sort"
)

// Mean calculates the arithmetic mean. Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median calculates the median via the same linear-interpolation
// percentile used for quartiles.
func Median(values []float64) float64 {
	return Percentile(values, 50)
}

// Min returns the smallest value. Returns 0 for empty input.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value. Returns 0 for empty input.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// StdDev calculates the population standard deviation (divisor N).
// This is deliberately distinct from SampleStdDev: the analyzer reports
// population std-dev as "Variability" while SDNN uses the Bessel-corrected
// sample form. Conflating the two silently changes HRV clinical metrics.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// SampleStdDev calculates the sample standard deviation (divisor N-1).
// Returns 0 when fewer than 2 values.
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// Percentile calculates the p-th percentile (0-100) with linear
// interpolation between closest ranks. Input does not need to be sorted.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if len(values) == 1 {
		return values[0]
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	index := (p / 100) * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IQR returns Q1, Q3 and the interquartile range for a slice of values.
func IQR(values []float64) (q1, q3, iqr float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	q1 = Percentile(values, 25)
	q3 = Percentile(values, 75)
	return q1, q3, q3 - q1
}

// IQRBounds returns the standard outlier fence [Q1-1.5*IQR, Q3+1.5*IQR].
func IQRBounds(values []float64) (lower, upper float64) {
	q1, q3, iqr := IQR(values)
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}

// Diff returns successive differences: out[i] = values[i+1] - values[i].
func Diff(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		out[i-1] = values[i] - values[i-1]
	}
	return out
}
