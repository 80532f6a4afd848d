// Package signal generates a synthetic ECG-like waveform for exercising the
// live pipeline without a physical sensor. The shape is not clinical: a slow
// baseline drift plus gaussian P/QRS/T bumps and deterministic noise.
package signal

import "math"

// ECGSim produces samples of a synthetic ECG at a fixed rate. Amplitude is
// scaled so the R peak lands above the default detector threshold.
type ECGSim struct {
	sampleRate float64
	bpm        float64
	noise      float64
	amplitude  float64
	phase      float64
}

// NewECGSim creates a simulator. sampleRate in Hz (250 is typical), bpm the
// simulated heart rate, noise the relative noise level (0.0-0.05 sensible).
func NewECGSim(sampleRate, bpm, noise float64) *ECGSim {
	return &ECGSim{
		sampleRate: sampleRate,
		bpm:        bpm,
		noise:      noise,
		amplitude:  300, // raw units; R peak ~300 against the 210 default threshold
	}
}

// Next returns the next sample value and advances the waveform phase.
func (s *ECGSim) Next() float64 {
	cycleHz := s.bpm / 60.0
	s.phase += cycleHz / s.sampleRate
	if s.phase >= 1.0 {
		s.phase -= 1.0
	}

	t := s.phase

	baseline := 0.05 * math.Sin(2*math.Pi*0.33*t)

	p := 0.08 * gauss(t, 0.18, 0.03)
	q := -0.12 * gauss(t, 0.30, 0.01)
	r := 1.00 * gauss(t, 0.32, 0.008)
	sWave := -0.25 * gauss(t, 0.35, 0.012)
	tWave := 0.25 * gauss(t, 0.60, 0.06)

	// deterministic noise, cheap and repeatable
	n := s.noise * (2*fract(math.Sin(12345.678*t)*9876.543) - 1)

	return s.amplitude * (baseline + p + q + r + sWave + tWave + n)
}

func gauss(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-0.5 * z * z)
}

func fract(x float64) float64 { return x - math.Floor(x) }
