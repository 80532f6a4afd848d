// Package handlers contains the HTTP handlers exposing the live pipeline
// state and the offline session reports to display collaborators.
package handlers

import (
	"github.com/pulsekit/pulsekit/internal/analysis"
	"github.com/pulsekit/pulsekit/internal/live"
	"github.com/pulsekit/pulsekit/internal/logging"
	"github.com/pulsekit/pulsekit/internal/session"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger   *logging.Logger
	monitor  *live.Monitor
	store    *session.Store
	analyzer *analysis.Analyzer
}

// New creates a new handler instance. monitor may be nil for analysis-only
// deployments; the live endpoint then reports 503.
func New(logger *logging.Logger, monitor *live.Monitor, store *session.Store, analyzer *analysis.Analyzer) *Handler {
	return &Handler{
		logger:   logger,
		monitor:  monitor,
		store:    store,
		analyzer: analyzer,
	}
}
