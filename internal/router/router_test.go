package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pulsekit/pulsekit/internal/analysis"
	"github.com/pulsekit/pulsekit/internal/beat"
	"github.com/pulsekit/pulsekit/internal/config"
	"github.com/pulsekit/pulsekit/internal/live"
	"github.com/pulsekit/pulsekit/internal/logging"
	"github.com/pulsekit/pulsekit/internal/models"
	"github.com/pulsekit/pulsekit/internal/session"
)

type testApp struct {
	store   *session.Store
	monitor *live.Monitor
}

func setupApp(t *testing.T, withMonitor bool) (*testApp, func(req *http.Request) *http.Response) {
	t.Helper()
	logger := logging.NewDevelopment()

	store, err := session.NewStore(logger, config.SessionConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	analyzer, err := analysis.NewAnalyzer(logger, analysis.DefaultGapThreshold)
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	var monitor *live.Monitor
	if withMonitor {
		monitor, err = live.NewMonitor(logger, beat.DefaultDetectorConfig(), nil)
		if err != nil {
			t.Fatalf("Failed to create monitor: %v", err)
		}
	}

	app := New(logger, monitor, store, analyzer)
	do := func(req *http.Request) *http.Response {
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		return resp
	}
	return &testApp{store: store, monitor: monitor}, do
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("Failed to decode body %q: %v", body, err)
	}
}

func TestRouter_Health(t *testing.T) {
	_, do := setupApp(t, false)

	resp := do(httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var health models.HealthResponse
	decodeBody(t, resp, &health)
	if health.Status != "healthy" {
		t.Errorf("Expected healthy status, got %q", health.Status)
	}
}

func TestRouter_LiveDisabled(t *testing.T) {
	_, do := setupApp(t, false)

	resp := do(httptest.NewRequest(http.MethodGet, "/v1/live", nil))
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503 without monitor, got %d", resp.StatusCode)
	}

	var errResp models.ErrorResponse
	decodeBody(t, resp, &errResp)
	if errResp.Error.Code != "LIVE_DISABLED" {
		t.Errorf("Expected LIVE_DISABLED, got %q", errResp.Error.Code)
	}
}

func TestRouter_LiveSnapshot(t *testing.T) {
	env, do := setupApp(t, true)

	// Drive enough beats through the monitor to produce a BPM.
	for i := 1; i <= beat.HistoryCapacity; i++ {
		env.monitor.HandleSample(float64(i)*0.8, 260)
	}

	resp := do(httptest.NewRequest(http.MethodGet, "/v1/live", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var liveResp models.LiveResponse
	decodeBody(t, resp, &liveResp)
	if liveResp.BeatCount != beat.HistoryCapacity {
		t.Errorf("Expected %d beats, got %d", beat.HistoryCapacity, liveResp.BeatCount)
	}
	if liveResp.BPM <= 0 {
		t.Errorf("Expected positive BPM, got %v", liveResp.BPM)
	}
	if liveResp.LastBeatTime != float64(beat.HistoryCapacity)*0.8 {
		t.Errorf("Expected last beat time %v, got %v",
			float64(beat.HistoryCapacity)*0.8, liveResp.LastBeatTime)
	}
}

func TestRouter_ListSessions(t *testing.T) {
	env, do := setupApp(t, false)

	if err := env.store.WriteRecording("s1", models.ChannelHeartRate,
		models.Series{{Timestamp: 1, Value: 72}}); err != nil {
		t.Fatal(err)
	}

	resp := do(httptest.NewRequest(http.MethodGet, "/v1/sessions", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var list models.SessionListResponse
	decodeBody(t, resp, &list)
	if len(list.Sessions) != 1 || list.Sessions[0] != "s1" {
		t.Errorf("Expected sessions [s1], got %v", list.Sessions)
	}
}

func TestRouter_SessionReportNotFound(t *testing.T) {
	_, do := setupApp(t, false)

	resp := do(httptest.NewRequest(http.MethodGet, "/v1/sessions/missing/report", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown session, got %d", resp.StatusCode)
	}

	var errResp models.ErrorResponse
	decodeBody(t, resp, &errResp)
	if errResp.Error.Code != "SESSION_NOT_FOUND" {
		t.Errorf("Expected SESSION_NOT_FOUND, got %q", errResp.Error.Code)
	}
}

func TestRouter_SessionReport(t *testing.T) {
	env, do := setupApp(t, false)

	var rr models.Series
	for ts := 0.0; ts <= 60; ts += 0.8 {
		rr = append(rr, models.Sample{Timestamp: ts, Value: 800})
	}
	if err := env.store.WriteRecording("s1", models.ChannelRRInterval, rr); err != nil {
		t.Fatal(err)
	}
	if err := env.store.WriteMarks("s1", []float64{30}); err != nil {
		t.Fatal(err)
	}

	resp := do(httptest.NewRequest(http.MethodGet, "/v1/sessions/s1/report", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var report models.SessionReport
	decodeBody(t, resp, &report)
	if report.SessionID != "s1" {
		t.Errorf("Expected session ID s1, got %q", report.SessionID)
	}
	if len(report.Channels) != 2 {
		t.Fatalf("Expected 2 channel entries, got %d", len(report.Channels))
	}
	if len(report.HRV) == 0 {
		t.Error("Expected HRV batch entries for RR data")
	}
}

func TestRouter_NotFound(t *testing.T) {
	_, do := setupApp(t, false)

	resp := do(httptest.NewRequest(http.MethodGet, "/nope", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", resp.StatusCode)
	}

	var errResp models.ErrorResponse
	decodeBody(t, resp, &errResp)
	if errResp.Error.Code != "NOT_FOUND" {
		t.Errorf("Expected NOT_FOUND, got %q", errResp.Error.Code)
	}
}
