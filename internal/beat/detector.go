// Package beat implements the live signal-to-beat pipeline: threshold-based
// beat detection, IQR outlier rejection with synthetic substitution, and
// robust BPM estimation over a bounded beat history.
package beat

import (
	"fmt"
	"math"
)

// NoPreviousBeat is the last-beat sentinel for the first call to Detect.
// Seeding with -Inf instead of 0 guarantees the refractory check can never
// suppress the first genuine beat of a session, whatever clock the
// timestamps are on.
var NoPreviousBeat = math.Inf(-1)

// DetectorConfig holds the tunables of the threshold detector. Threshold is
// in raw sensor units and depends on sensor gain; the defaults match the
// Polar H10 recording setup.
type DetectorConfig struct {
	Threshold        float64
	RefractoryPeriod float64
}

// DefaultDetectorConfig returns the Polar H10 tuning
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		Threshold:        210,
		RefractoryPeriod: 0.5,
	}
}

// Validate rejects configurations that would make detection meaningless
func (c DetectorConfig) Validate() error {
	if c.Threshold <= 0 {
		return fmt.Errorf("detector threshold must be positive, got %v", c.Threshold)
	}
	if c.RefractoryPeriod < 0 {
		return fmt.Errorf("detector refractory period must not be negative, got %v", c.RefractoryPeriod)
	}
	return nil
}

// Detect judges whether a sample is a heartbeat. A beat is declared when the
// value strictly exceeds the threshold and the time elapsed since
// lastBeatTime strictly exceeds the refractory period. On a beat the sample
// timestamp becomes the new last-beat time; otherwise lastBeatTime is
// returned unchanged. The function is pure: the caller threads lastBeatTime
// through successive calls, seeding the first call with NoPreviousBeat.
func Detect(timestamp, value float64, cfg DetectorConfig, lastBeatTime float64) (bool, float64) {
	if value > cfg.Threshold && timestamp-lastBeatTime > cfg.RefractoryPeriod {
		return true, timestamp
	}
	return false, lastBeatTime
}
