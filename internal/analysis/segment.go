// Package analysis implements the offline half of the pipeline: segmenting
// a recorded series on recording pauses, splitting segments into marked
// episodes, and assembling the per-session statistics report.
package analysis

import (
	"fmt"

	"github.com/pulsekit/pulsekit/internal/models"
)

// DefaultGapThreshold is the pause, in seconds, that splits a recording
// into separate segments.
const DefaultGapThreshold = 10.0

// ValidateGapThreshold rejects thresholds that cannot segment anything
func ValidateGapThreshold(gap float64) error {
	if gap <= 0 {
		return fmt.Errorf("gap threshold must be positive, got %v", gap)
	}
	return nil
}

// Segment partitions a timestamp-ordered series into maximal contiguous
// segments: a new segment starts wherever consecutive samples are separated
// by more than gapThreshold seconds. The input is assumed sorted and is not
// re-sorted. Every sample lands in exactly one segment and segment order
// follows time order. An empty series yields no segments.
func Segment(series models.Series, gapThreshold float64) []models.Segment {
	if len(series) == 0 {
		return nil
	}

	var segments []models.Segment
	current := models.Series{series[0]}

	for i := 1; i < len(series); i++ {
		if series[i].Timestamp-series[i-1].Timestamp > gapThreshold {
			segments = append(segments, models.Segment{Samples: current})
			current = nil
		}
		current = append(current, series[i])
	}
	segments = append(segments, models.Segment{Samples: current})

	return segments
}
