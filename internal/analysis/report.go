package analysis

import (
	"fmt"

	"github.com/pulsekit/pulsekit/internal/logging"
	"github.com/pulsekit/pulsekit/internal/models"
	"github.com/pulsekit/pulsekit/internal/stats"
)

// Analyzer builds the offline statistics report for a recorded session.
type Analyzer struct {
	logger       *logging.Logger
	gapThreshold float64
}

// NewAnalyzer creates an analyzer. An invalid gap threshold is rejected
// eagerly rather than producing degenerate segmentations later.
func NewAnalyzer(logger *logging.Logger, gapThreshold float64) (*Analyzer, error) {
	if err := ValidateGapThreshold(gapThreshold); err != nil {
		return nil, err
	}
	return &Analyzer{logger: logger, gapThreshold: gapThreshold}, nil
}

// AnalyzeSession produces the full report for one session: per channel,
// segments split on recording pauses, each summarized and further split
// into marked episodes; plus the HRV batch summary over cleaned RR values.
// A channel without data yields a no-data entry instead of failing the run.
func (a *Analyzer) AnalyzeSession(sessionID string, channels map[models.Channel]models.Series, marks []float64) models.SessionReport {
	report := models.SessionReport{SessionID: sessionID}

	for _, channel := range models.AnalysisChannels {
		report.Channels = append(report.Channels, a.analyzeChannel(channel, channels[channel], marks))
	}

	if rr, ok := channels[models.ChannelRRInterval]; ok && len(rr) > 0 {
		report.HRV = a.hrvBatch(rr, marks)
	}

	return report
}

func (a *Analyzer) analyzeChannel(channel models.Channel, series models.Series, marks []float64) models.ChannelReport {
	if len(series) == 0 {
		a.logger.Warn("No data available for channel", "channel", string(channel))
		return models.ChannelReport{Channel: channel, NoData: true}
	}

	out := models.ChannelReport{Channel: channel}
	for idx, segment := range Segment(series, a.gapThreshold) {
		segReport, ok := stats.Summarize(segment.Samples.Values(), segment.Samples.Timestamps(), channel.IsRR())
		if !ok {
			continue
		}

		sr := models.SegmentReport{
			Index:      idx,
			Start:      segment.StartTime(),
			End:        segment.EndTime(),
			Statistics: segReport,
		}

		if episodes, ok := SplitByMarks(segment, marks); ok {
			for i, ep := range episodes {
				epStats, ok := stats.Summarize(ep.Samples.Values(), ep.Samples.Timestamps(), channel.IsRR())
				if !ok {
					continue
				}
				// Episode duration is boundary-to-boundary, not
				// first-to-last sample.
				epStats.Duration = ep.End - ep.Start
				sr.Episodes = append(sr.Episodes, models.EpisodeReport{
					Index:      i,
					Start:      ep.Start,
					End:        ep.End,
					Statistics: epStats,
				})
			}
		} else {
			a.logger.Debug("No marked timestamps for segment",
				"channel", string(channel), "segment", idx)
		}

		out.Segments = append(out.Segments, sr)
	}
	return out
}

// hrvBatch computes the batch HRV summary: RR values are normalized to
// milliseconds, cleaned (3-sigma outlier removal with linear interpolation),
// then RMSSD/SDNN/pNN50 are computed per inter-mark episode and over the
// whole recording. Naming and episode windows match the hrv_calc batch
// tooling that consumes the same recordings.
func (a *Analyzer) hrvBatch(rr models.Series, marks []float64) []models.HRVReport {
	cleaned := stats.CleanRR(stats.NormalizeRRUnits(rr.Values()))
	timestamps := rr.Timestamps()

	var reports []models.HRVReport

	for i := 0; i < len(marks)-1; i++ {
		var episode []float64
		for j, ts := range timestamps {
			if ts >= marks[i] && ts < marks[i+1] {
				episode = append(episode, cleaned[j])
			}
		}

		report := models.HRVReport{Segment: fmt.Sprintf("Episode_%d", i+1)}
		if len(episode) > 1 {
			if v, ok := stats.RMSSD(episode); ok {
				report.RMSSD = &v
			}
			if v, ok := stats.SDNN(episode); ok {
				report.SDNN = &v
			}
			if v, ok := stats.PNN50(episode); ok {
				report.PNN50 = &v
			}
		}
		reports = append(reports, report)
	}

	overall := models.HRVReport{Segment: "Overall"}
	if v, ok := stats.RMSSD(cleaned); ok {
		overall.RMSSD = &v
	}
	if v, ok := stats.SDNN(cleaned); ok {
		overall.SDNN = &v
	}
	if v, ok := stats.PNN50(cleaned); ok {
		overall.PNN50 = &v
	}
	return append(reports, overall)
}
