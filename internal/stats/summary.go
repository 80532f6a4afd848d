package stats

import "github.com/pulsekit/pulsekit/internal/models"

// Summarize computes the full statistics report for one segment or episode.
// timestamps is the parallel timestamp series used only for duration; it may
// be shorter than values only in the degenerate single-sample case.
// RMSSD and SDNN are filled for RR channels with more than one value and
// omitted otherwise. pNN50 belongs to the offline HRV batch report and is
// not computed here.
//
// Returns (report, false) on an empty values slice: callers must branch on
// that instead of expecting a panic.
func Summarize(values, timestamps []float64, isRR bool) (models.StatisticsReport, bool) {
	if len(values) == 0 {
		return models.StatisticsReport{}, false
	}

	report := models.StatisticsReport{
		Count:  len(values),
		Mean:   Mean(values),
		Median: Median(values),
		Min:    Min(values),
		Max:    Max(values),
		StdDev: StdDev(values),
	}
	_, _, report.IQR = IQR(values)

	if len(timestamps) > 1 {
		report.Duration = timestamps[len(timestamps)-1] - timestamps[0]
	}

	if isRR && len(values) > 1 {
		if v, ok := RMSSD(values); ok {
			report.RMSSD = &v
		}
		if v, ok := SDNN(values); ok {
			report.SDNN = &v
		}
	}

	return report, true
}
