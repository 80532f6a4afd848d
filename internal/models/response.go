package models

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// LiveResponse represents the current state of the live pipeline
type LiveResponse struct {
	BPM          float64   `json:"bpm"`
	BeatCount    int       `json:"beat_count"`
	LastBeatTime float64   `json:"last_beat_time"`
	History      []float64 `json:"history,omitempty"`
}

// SessionListResponse represents the recorded sessions available for analysis
type SessionListResponse struct {
	Sessions []string `json:"sessions"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}
