package session

import (
	"fmt"
	"sync"

	"github.com/pulsekit/pulsekit/internal/logging"
	"github.com/pulsekit/pulsekit/internal/models"
	"github.com/pulsekit/pulsekit/internal/queue"
)

// Recorder buffers live samples per channel and flushes them to the store.
// Each subscribed channel is appended to by the queue delivery goroutine;
// Mark may be called from the operator's goroutine, so the buffers are
// lock-guarded.
type Recorder struct {
	logger    *logging.Logger
	store     *Store
	sessionID string

	mu      sync.Mutex
	buffers map[models.Channel]models.Series
	marks   []float64
}

// NewRecorder creates a recorder for one session
func NewRecorder(logger *logging.Logger, store *Store, sessionID string) *Recorder {
	if sessionID == "" {
		sessionID = store.NewSessionID()
	}
	return &Recorder{
		logger:    logger,
		store:     store,
		sessionID: sessionID,
		buffers:   make(map[models.Channel]models.Series),
	}
}

// SessionID returns the session this recorder writes to
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Start subscribes the recorder to the given channels' sample subjects
func (r *Recorder) Start(subscriber queue.Subscriber, channels []models.Channel) error {
	for _, channel := range channels {
		subject := models.SampleSubject(channel)
		if err := subscriber.Subscribe(subject, r.handleSample); err != nil {
			return fmt.Errorf("failed to subscribe recorder to %s: %w", subject, err)
		}
	}
	return nil
}

func (r *Recorder) handleSample(data []byte) error {
	msg, err := models.DecodeSampleMessage(data)
	if err != nil {
		r.logger.Warn("Dropping undecodable sample", "error", err)
		return nil
	}

	r.mu.Lock()
	r.buffers[msg.Channel] = append(r.buffers[msg.Channel], models.Sample{
		Timestamp: msg.Timestamp,
		Value:     msg.Value,
	})
	r.mu.Unlock()
	return nil
}

// Mark records a boundary timestamp for later episode splitting
func (r *Recorder) Mark(timestamp float64) {
	r.mu.Lock()
	r.marks = append(r.marks, timestamp)
	r.mu.Unlock()
	r.logger.Info("Timestamp marked", "session", r.sessionID, "timestamp", timestamp)
}

// Flush writes all buffered recordings and marks to the store.
// Buffers are kept, so Flush may be called periodically and again at stop.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	channels := make(map[models.Channel]models.Series, len(r.buffers))
	for channel, series := range r.buffers {
		copied := make(models.Series, len(series))
		copy(copied, series)
		channels[channel] = copied
	}
	marks := make([]float64, len(r.marks))
	copy(marks, r.marks)
	r.mu.Unlock()

	for channel, series := range channels {
		if err := r.store.WriteRecording(r.sessionID, channel, series); err != nil {
			return err
		}
	}
	if len(marks) > 0 {
		if err := r.store.WriteMarks(r.sessionID, marks); err != nil {
			return err
		}
	}

	r.logger.Info("Session flushed", "session", r.sessionID, "channels", len(channels))
	return nil
}
