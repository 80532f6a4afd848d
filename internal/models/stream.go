package models

import (
	"encoding/json"
	"fmt"
)

// Queue subjects for the live path. Sample subjects carry one channel each
// so subscribers can pick the channels they care about.
const (
	SubjectSamplePrefix = "pulsekit.samples."
	SubjectBeats        = "pulsekit.beats"
	SubjectBPM          = "pulsekit.bpm"
)

// SampleSubject returns the queue subject for a channel's sample stream.
func SampleSubject(c Channel) string {
	return SubjectSamplePrefix + string(c)
}

// SampleMessage is the wire form of one live sample.
type SampleMessage struct {
	Channel   Channel `json:"channel"`
	Timestamp float64 `json:"timestamp"`
	Value     float64 `json:"value"`
}

// BPMMessage is the wire form of a BPM update for display collaborators.
type BPMMessage struct {
	Timestamp float64 `json:"timestamp"`
	BPM       float64 `json:"bpm"`
}

// Encode serializes the message for queue transport
func (m SampleMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Encode serializes the message for queue transport
func (m BPMMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// DecodeSampleMessage parses a sample message from queue payload bytes
func DecodeSampleMessage(data []byte) (SampleMessage, error) {
	var m SampleMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return SampleMessage{}, fmt.Errorf("failed to decode sample message: %w", err)
	}
	if _, err := ParseChannel(string(m.Channel)); err != nil {
		return SampleMessage{}, err
	}
	return m, nil
}

// Encode serializes the beat event for queue transport
func EncodeBeatEvent(b BeatEvent) ([]byte, error) {
	return json.Marshal(b)
}

// DecodeBeatEvent parses a beat event from queue payload bytes
func DecodeBeatEvent(data []byte) (BeatEvent, error) {
	var b BeatEvent
	if err := json.Unmarshal(data, &b); err != nil {
		return BeatEvent{}, fmt.Errorf("failed to decode beat event: %w", err)
	}
	return b, nil
}
