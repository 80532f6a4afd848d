package signal

import (
	"testing"

	"github.com/pulsekit/pulsekit/internal/beat"
)

func TestECGSim_RPeakCrossesThreshold(t *testing.T) {
	sim := NewECGSim(250, 60, 0)
	cfg := beat.DefaultDetectorConfig()

	peak := 0.0
	for i := 0; i < 250; i++ { // one full cycle at 60 BPM
		if v := sim.Next(); v > peak {
			peak = v
		}
	}

	if peak <= cfg.Threshold {
		t.Errorf("Expected R peak above detector threshold %v, got %v", cfg.Threshold, peak)
	}
}

func TestECGSim_DetectableBeatRate(t *testing.T) {
	// Run the simulator through the detector and count beats over 10
	// seconds of signal at 72 BPM; expect 12 beats, give or take one for
	// phase alignment at the edges.
	sampleRate, bpm := 250.0, 72.0
	sim := NewECGSim(sampleRate, bpm, 0.01)
	cfg := beat.DefaultDetectorConfig()

	lastBeat := beat.NoPreviousBeat
	beats := 0
	samples := int(10 * sampleRate)
	for i := 0; i < samples; i++ {
		ts := float64(i) / sampleRate
		isBeat, newLast := beat.Detect(ts, sim.Next(), cfg, lastBeat)
		if isBeat {
			beats++
			lastBeat = newLast
		}
	}

	expected := int(10 * bpm / 60)
	if beats < expected-1 || beats > expected+1 {
		t.Errorf("Expected about %d beats in 10s at %v BPM, got %d", expected, bpm, beats)
	}
}

func TestECGSim_BoundedOutput(t *testing.T) {
	sim := NewECGSim(250, 180, 0.05)

	for i := 0; i < 2500; i++ {
		v := sim.Next()
		if v > 400 || v < -400 {
			t.Fatalf("Expected bounded output, got %v at sample %d", v, i)
		}
	}
}
