package beat

import (
	"math"
	"testing"
)

func TestCalculateBPM_Sentinel(t *testing.T) {
	h := NewHistory()
	if bpm := CalculateBPM(h); bpm != 0 {
		t.Errorf("Expected 0 for empty history, got %v", bpm)
	}

	h.Append(1.0)
	if bpm := CalculateBPM(h); bpm != 0 {
		t.Errorf("Expected 0 for single timestamp, got %v", bpm)
	}
}

func TestCalculateBPM_ConstantInterval(t *testing.T) {
	h := NewHistory()
	for i := 0; i < HistoryCapacity; i++ {
		h.Append(float64(i) * 0.8)
	}

	bpm := CalculateBPM(h)
	if math.Abs(bpm-75.0) > 1e-6 {
		t.Errorf("Expected 75.0 BPM for 0.8s intervals, got %v", bpm)
	}
}

func TestCalculateBPM_SecondOutlierPass(t *testing.T) {
	// One corrupt interval that slipped into the history must not drag
	// the estimate: the estimator's own IQR pass discards it.
	h := NewHistory()
	ts := 0.0
	for i := 0; i < HistoryCapacity-1; i++ {
		ts += 0.8
		h.Append(ts)
	}
	h.Append(ts + 15.0) // corrupt trailing interval

	bpm := CalculateBPM(h)
	if math.Abs(bpm-75.0) > 1e-6 {
		t.Errorf("Expected outlier interval to be filtered, got BPM %v", bpm)
	}
}

func TestCalculateBPM_TwoTimestamps(t *testing.T) {
	h := NewHistory()
	h.Append(0)
	h.Append(1.0)

	bpm := CalculateBPM(h)
	if math.Abs(bpm-60.0) > 1e-6 {
		t.Errorf("Expected 60 BPM for a single 1s interval, got %v", bpm)
	}
}
