package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleSubject(t *testing.T) {
	assert.Equal(t, "pulsekit.samples.RawECG", SampleSubject(ChannelRawECG))
	assert.Equal(t, "pulsekit.samples.HeartRate", SampleSubject(ChannelHeartRate))
}

func TestSampleMessage_Roundtrip(t *testing.T) {
	msg := SampleMessage{Channel: ChannelRRInterval, Timestamp: 12.5, Value: 820}

	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := DecodeSampleMessage(data)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestDecodeSampleMessage_RejectsUnknownChannel(t *testing.T) {
	_, err := DecodeSampleMessage([]byte(`{"channel":"Temperature","timestamp":1,"value":36.6}`))
	assert.Error(t, err)
}

func TestDecodeSampleMessage_RejectsGarbage(t *testing.T) {
	_, err := DecodeSampleMessage([]byte("not json"))
	assert.Error(t, err)
}

func TestBeatEvent_Roundtrip(t *testing.T) {
	event := BeatEvent{Timestamp: 42.1, Synthetic: true}

	data, err := EncodeBeatEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeBeatEvent(data)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestParseChannel(t *testing.T) {
	for _, name := range []string{"HeartRate", "RRinterval", "RawECG"} {
		ch, err := ParseChannel(name)
		require.NoError(t, err)
		assert.Equal(t, Channel(name), ch)
	}

	_, err := ParseChannel("SpO2")
	assert.Error(t, err)
}

func TestSeries_Accessors(t *testing.T) {
	series := Series{{Timestamp: 1, Value: 10}, {Timestamp: 2, Value: 20}}

	assert.Equal(t, []float64{1, 2}, series.Timestamps())
	assert.Equal(t, []float64{10, 20}, series.Values())
}

func TestSegment_Bounds(t *testing.T) {
	seg := Segment{Samples: Series{{Timestamp: 3, Value: 1}, {Timestamp: 9, Value: 2}}}
	assert.Equal(t, 3.0, seg.StartTime())
	assert.Equal(t, 9.0, seg.EndTime())

	empty := Segment{}
	assert.Equal(t, 0.0, empty.StartTime())
	assert.Equal(t, 0.0, empty.EndTime())
}
