// Package session persists recorded sessions in the layout the analysis
// tooling expects: one directory per session holding a
// "<Channel>_recording.csv" per channel and a "marked_timestamps.csv".
// Recordings can optionally be snappy-compressed on disk; reads handle both
// forms transparently.
package session

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/golang/snappy"
	"github.com/google/uuid"

	"github.com/pulsekit/pulsekit/internal/config"
	"github.com/pulsekit/pulsekit/internal/logging"
	"github.com/pulsekit/pulsekit/internal/models"
)

const (
	recordingSuffix  = "_recording.csv"
	marksFile        = "marked_timestamps.csv"
	compressedSuffix = ".snappy"
)

// Store reads and writes recorded sessions under a data directory.
type Store struct {
	logger   *logging.Logger
	dataDir  string
	compress bool
}

// NewStore creates a store rooted at the configured data directory
func NewStore(logger *logging.Logger, cfg config.SessionConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", cfg.DataDir, err)
	}
	return &Store{logger: logger, dataDir: cfg.DataDir, compress: cfg.Compress}, nil
}

// NewSessionID generates a fresh session identifier
func (s *Store) NewSessionID() string {
	return uuid.New().String()
}

// ListSessions returns the session IDs present in the data directory
func (s *Store) ListSessions() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	var sessions []string
	for _, e := range entries {
		if e.IsDir() {
			sessions = append(sessions, e.Name())
		}
	}
	sort.Strings(sessions)
	return sessions, nil
}

func (s *Store) sessionDir(sessionID string) string {
	return filepath.Join(s.dataDir, sessionID)
}

// WriteRecording persists one channel's series for a session
func (s *Store) WriteRecording(sessionID string, channel models.Channel, series models.Series) error {
	dir := s.sessionDir(sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create session dir %s: %w", dir, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Timestamp", "Value"}); err != nil {
		return fmt.Errorf("failed to write recording header: %w", err)
	}
	for _, sample := range series {
		record := []string{
			strconv.FormatFloat(sample.Timestamp, 'f', -1, 64),
			strconv.FormatFloat(sample.Value, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write recording row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush recording: %w", err)
	}

	path := filepath.Join(dir, string(channel)+recordingSuffix)
	data := buf.Bytes()
	if s.compress {
		path += compressedSuffix
		data = snappy.Encode(nil, data)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write recording %s: %w", path, err)
	}

	s.logger.Debug("Recording written",
		"session", sessionID, "channel", string(channel), "samples", len(series))
	return nil
}

// ReadRecording loads one channel's series. A channel that was never
// recorded yields (nil, nil): missing data is a per-channel condition the
// analyzer reports on, not an error that aborts the run.
func (s *Store) ReadRecording(sessionID string, channel models.Channel) (models.Series, error) {
	base := filepath.Join(s.sessionDir(sessionID), string(channel)+recordingSuffix)

	data, compressed, err := readMaybeCompressed(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read recording for %s: %w", channel, err)
	}
	if compressed {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress recording for %s: %w", channel, err)
		}
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse recording for %s: %w", channel, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	series := make(models.Series, 0, len(rows)-1)
	for _, row := range rows[1:] { // skip header
		if len(row) < 2 {
			continue
		}
		ts, err1 := strconv.ParseFloat(row[0], 64)
		value, err2 := strconv.ParseFloat(row[1], 64)
		if err1 != nil || err2 != nil {
			s.logger.Warn("Skipping malformed recording row",
				"session", sessionID, "channel", string(channel), "row", row)
			continue
		}
		series = append(series, models.Sample{Timestamp: ts, Value: value})
	}
	return series, nil
}

// WriteMarks persists the user-marked boundary timestamps for a session
func (s *Store) WriteMarks(sessionID string, marks []float64) error {
	dir := s.sessionDir(sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create session dir %s: %w", dir, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Marked Timestamp"}); err != nil {
		return fmt.Errorf("failed to write marks header: %w", err)
	}
	for _, mark := range marks {
		if err := w.Write([]string{strconv.FormatFloat(mark, 'f', -1, 64)}); err != nil {
			return fmt.Errorf("failed to write mark: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush marks: %w", err)
	}

	path := filepath.Join(dir, marksFile)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write marks %s: %w", path, err)
	}
	return nil
}

// ReadMarks loads the marked timestamps. Missing marks yield (nil, nil).
func (s *Store) ReadMarks(sessionID string) ([]float64, error) {
	path := filepath.Join(s.sessionDir(sessionID), marksFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read marks: %w", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse marks: %w", err)
	}

	var marks []float64
	for i, row := range rows {
		if i == 0 || len(row) == 0 { // skip header
			continue
		}
		mark, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			s.logger.Warn("Skipping malformed mark", "session", sessionID, "row", row)
			continue
		}
		marks = append(marks, mark)
	}
	return marks, nil
}

// ReadSession loads all analysis channels and marks for a session
func (s *Store) ReadSession(sessionID string) (map[models.Channel]models.Series, []float64, error) {
	channels := make(map[models.Channel]models.Series)
	for _, channel := range models.AnalysisChannels {
		series, err := s.ReadRecording(sessionID, channel)
		if err != nil {
			return nil, nil, err
		}
		if series != nil {
			channels[channel] = series
		}
	}

	marks, err := s.ReadMarks(sessionID)
	if err != nil {
		return nil, nil, err
	}
	return channels, marks, nil
}

// readMaybeCompressed tries the plain path first, then the snappy variant.
func readMaybeCompressed(base string) (data []byte, compressed bool, err error) {
	data, err = os.ReadFile(base)
	if err == nil {
		return data, false, nil
	}
	if !os.IsNotExist(err) {
		return nil, false, err
	}

	data, errC := os.ReadFile(base + compressedSuffix)
	if errC == nil {
		return data, true, nil
	}
	if os.IsNotExist(errC) {
		return nil, false, err // report the plain path's not-exist
	}
	return nil, false, errC
}
