package models

import "fmt"

// Channel identifies a known physiological data channel.
// Channels are a closed enum rather than free-form strings so that
// per-channel buffers and reports stay strongly typed.
type Channel string

const (
	ChannelHeartRate  Channel = "HeartRate"
	ChannelRRInterval Channel = "RRinterval"
	ChannelRawECG     Channel = "RawECG"
)

// AnalysisChannels are the channels the offline analyzer reports on.
// RawECG is recorded but only consumed by the live beat detector.
var AnalysisChannels = []Channel{ChannelHeartRate, ChannelRRInterval}

// ParseChannel converts a string to a known Channel
func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelHeartRate, ChannelRRInterval, ChannelRawECG:
		return Channel(s), nil
	}
	return "", fmt.Errorf("unknown channel: %s", s)
}

// IsRR reports whether the channel carries RR intervals, which unlocks
// the HRV metrics (RMSSD, SDNN, pNN50) in statistics reports.
func (c Channel) IsRR() bool {
	return c == ChannelRRInterval
}

// Sample is a single reading on a channel. Timestamp is in seconds on the
// recording clock (the LSL local clock when fed from an LSL stream).
type Sample struct {
	Timestamp float64 `json:"timestamp"`
	Value     float64 `json:"value"`
}

// BeatEvent marks the instant a heartbeat was judged to have occurred.
type BeatEvent struct {
	Timestamp float64 `json:"timestamp"`
	Synthetic bool    `json:"synthetic,omitempty"`
}

// Series is an ordered run of samples from one channel.
type Series []Sample

// Timestamps extracts just the timestamps
func (s Series) Timestamps() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Timestamp
	}
	return out
}

// Values extracts just the values
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Segment is a maximal contiguous run of samples where no two consecutive
// timestamps are separated by more than the segmenter's gap threshold.
type Segment struct {
	Samples Series `json:"samples"`
}

// StartTime returns the timestamp of the first sample, or 0 when empty.
func (s Segment) StartTime() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	return s.Samples[0].Timestamp
}

// EndTime returns the timestamp of the last sample, or 0 when empty.
func (s Segment) EndTime() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	return s.Samples[len(s.Samples)-1].Timestamp
}

// Episode is a sub-range of a segment bounded by marked timestamps or an
// explicit interval. Start/End are the boundary times, not sample times.
type Episode struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Samples Series  `json:"samples"`
}

// Interval is an explicitly recorded (start, end, duration) triple.
type Interval struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}
