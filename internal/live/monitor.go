// Package live wires the beat pipeline to the queue transport: samples in
// from the sensor collaborator, beat events and BPM updates out for display
// collaborators, and a snapshot accessor for the HTTP surface.
package live

import (
	"context"
	"sync"
	"time"

	"github.com/pulsekit/pulsekit/internal/beat"
	"github.com/pulsekit/pulsekit/internal/logging"
	"github.com/pulsekit/pulsekit/internal/models"
	"github.com/pulsekit/pulsekit/internal/queue"
)

// Snapshot is a consistent copy of the live pipeline state for readers.
type Snapshot struct {
	BPM          float64
	LastBeatTime float64
	History      []float64
}

// Monitor runs Detector -> Filter -> Estimator over the live sample stream.
// All mutation happens on the queue delivery goroutine; readers take
// snapshots under the lock. Single writer, many readers.
type Monitor struct {
	logger    *logging.Logger
	cfg       beat.DetectorConfig
	publisher queue.Publisher // may be nil when nothing downstream listens

	mu           sync.RWMutex
	filter       *beat.Filter
	lastBeatTime float64
	bpm          float64
}

// NewMonitor creates a monitor. The detector configuration is validated
// eagerly; a monitor with a broken threshold must not start.
func NewMonitor(logger *logging.Logger, cfg beat.DetectorConfig, publisher queue.Publisher) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Monitor{
		logger:       logger,
		cfg:          cfg,
		publisher:    publisher,
		filter:       beat.NewFilter(),
		lastBeatTime: beat.NoPreviousBeat,
	}, nil
}

// Start subscribes the monitor to the raw ECG sample subject. The queue
// delivery goroutine becomes the pipeline's single writer.
func (m *Monitor) Start(subscriber queue.Subscriber) error {
	subject := models.SampleSubject(models.ChannelRawECG)
	return subscriber.Subscribe(subject, func(data []byte) error {
		msg, err := models.DecodeSampleMessage(data)
		if err != nil {
			m.logger.Warn("Dropping undecodable sample", "error", err)
			return nil // a garbled sample must not stop the stream
		}
		m.HandleSample(msg.Timestamp, msg.Value)
		return nil
	})
}

// HandleSample feeds one decoded sample through the pipeline.
func (m *Monitor) HandleSample(timestamp, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	isBeat, newLast := beat.Detect(timestamp, value, m.cfg, m.lastBeatTime)
	if !isBeat {
		return
	}
	m.lastBeatTime = newLast

	event := m.filter.AcceptOrSubstitute(newLast)
	if event.Synthetic {
		m.logger.Debug("Outlier beat substituted",
			"detected", newLast, "synthetic", event.Timestamp)
	}

	// BPM is recomputed on every beat once the window is full.
	history := m.filter.History()
	if history.Len() == history.Capacity() {
		m.bpm = beat.CalculateBPM(history)
	}

	m.publishBeat(event)
}

// publishBeat forwards the beat event and current BPM, best effort.
// Must be called with m.mu held; publish failures are logged, never fatal.
func (m *Monitor) publishBeat(event models.BeatEvent) {
	if m.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if data, err := models.EncodeBeatEvent(event); err == nil {
		if err := m.publisher.Publish(ctx, models.SubjectBeats, data); err != nil {
			m.logger.Warn("Failed to publish beat event", "error", err)
		}
	}

	if m.bpm > 0 {
		msg := models.BPMMessage{Timestamp: event.Timestamp, BPM: m.bpm}
		if data, err := msg.Encode(); err == nil {
			if err := m.publisher.Publish(ctx, models.SubjectBPM, data); err != nil {
				m.logger.Warn("Failed to publish BPM update", "error", err)
			}
		}
	}
}

// Snapshot returns a copy of the pipeline state for concurrent readers.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		BPM:          m.bpm,
		LastBeatTime: m.lastBeatTime,
		History:      m.filter.History().Snapshot(),
	}
}

// Reset clears the pipeline state, for sensor reconnects.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter.Reset()
	m.lastBeatTime = beat.NoPreviousBeat
	m.bpm = 0
}
