package analysis

import "github.com/pulsekit/pulsekit/internal/models"

// SplitByMarks partitions a segment into episodes at the marked timestamps
// that fall inside it. Boundaries are the segment start, the in-range marks
// in order, and the segment end; each consecutive boundary pair becomes one
// episode. Episode membership is inclusive on both ends, so a sample lying
// exactly on a mark belongs to both adjacent episodes.
//
// Returns (nil, false) when no marks are supplied: the caller reports the
// segment as having no episodes rather than one trivial whole-segment
// episode.
func SplitByMarks(segment models.Segment, marks []float64) ([]models.Episode, bool) {
	if len(marks) == 0 || len(segment.Samples) == 0 {
		return nil, false
	}

	start, end := segment.StartTime(), segment.EndTime()

	boundaries := []float64{start}
	for _, mark := range marks {
		if mark >= start && mark <= end {
			boundaries = append(boundaries, mark)
		}
	}
	boundaries = append(boundaries, end)

	episodes := make([]models.Episode, 0, len(boundaries)-1)
	for i := 0; i < len(boundaries)-1; i++ {
		episodes = append(episodes, models.Episode{
			Start:   boundaries[i],
			End:     boundaries[i+1],
			Samples: samplesWithin(segment.Samples, boundaries[i], boundaries[i+1]),
		})
	}
	return episodes, true
}

// SplitByIntervals forms one episode per explicitly recorded interval that
// overlaps the segment (overlap, not containment). Member samples are those
// inside both the interval and the segment.
func SplitByIntervals(segment models.Segment, intervals []models.Interval) []models.Episode {
	if len(segment.Samples) == 0 {
		return nil
	}

	var episodes []models.Episode
	for _, iv := range intervals {
		if iv.Start > segment.EndTime() || iv.End < segment.StartTime() {
			continue
		}
		episodes = append(episodes, models.Episode{
			Start:   iv.Start,
			End:     iv.End,
			Samples: samplesWithin(segment.Samples, iv.Start, iv.End),
		})
	}
	return episodes
}

// samplesWithin selects samples with timestamp in [start, end] inclusive
func samplesWithin(samples models.Series, start, end float64) models.Series {
	var out models.Series
	for _, s := range samples {
		if s.Timestamp >= start && s.Timestamp <= end {
			out = append(out, s)
		}
	}
	return out
}
