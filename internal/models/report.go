package models

// StatisticsReport holds the metric set computed over one segment or episode.
// Optional metrics are pointers: a nil metric was not computable for the
// input (too few samples, wrong channel) and is omitted from JSON, which is
// different from a metric that is legitimately zero.
type StatisticsReport struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	StdDev   float64 `json:"std_dev"`
	IQR      float64 `json:"iqr"`
	Duration float64 `json:"duration"`

	RMSSD *float64 `json:"rmssd,omitempty"`
	SDNN  *float64 `json:"sdnn,omitempty"`
	PNN50 *float64 `json:"pnn50,omitempty"`
}

// EpisodeReport is the statistics for one episode within a segment.
type EpisodeReport struct {
	Index      int              `json:"index"`
	Start      float64          `json:"start"`
	End        float64          `json:"end"`
	Statistics StatisticsReport `json:"statistics"`
}

// SegmentReport is the statistics for one segment plus its episodes.
// Episodes is nil when no marked timestamps fell inside the segment; the
// analyzer reports that case explicitly instead of fabricating a single
// whole-segment episode.
type SegmentReport struct {
	Index      int              `json:"index"`
	Start      float64          `json:"start"`
	End        float64          `json:"end"`
	Statistics StatisticsReport `json:"statistics"`
	Episodes   []EpisodeReport  `json:"episodes,omitempty"`
}

// ChannelReport is the full offline analysis for one channel. When the
// channel had no recorded data, NoData is true and Segments is empty rather
// than the whole analysis run failing.
type ChannelReport struct {
	Channel  Channel         `json:"channel"`
	NoData   bool            `json:"no_data,omitempty"`
	Segments []SegmentReport `json:"segments,omitempty"`
}

// HRVReport is the offline HRV batch summary over cleaned RR intervals.
// Segment follows the batch pipeline's naming: "Episode_N" for the slice
// between two consecutive marks, "Overall" for the whole recording.
type HRVReport struct {
	Segment string   `json:"segment"`
	RMSSD   *float64 `json:"rmssd,omitempty"`
	SDNN    *float64 `json:"sdnn,omitempty"`
	PNN50   *float64 `json:"pnn50,omitempty"`
}

// SessionReport is the complete offline analysis of one recorded session.
type SessionReport struct {
	SessionID string          `json:"session_id"`
	Channels  []ChannelReport `json:"channels"`
	HRV       []HRVReport     `json:"hrv,omitempty"`
}
