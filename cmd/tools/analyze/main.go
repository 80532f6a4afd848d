package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pulsekit/pulsekit/internal/analysis"
	"github.com/pulsekit/pulsekit/internal/config"
	"github.com/pulsekit/pulsekit/internal/logging"
	"github.com/pulsekit/pulsekit/internal/session"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	sessionID := flag.String("session", "", "Session ID to analyze (required)")
	flag.Parse()

	if *sessionID == "" {
		fmt.Fprintln(os.Stderr, "Usage: analyze -session <session-id> [-config <path>]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so the report on stdout stays parseable.
	logger, err := logging.New(logging.Options{
		Level:      cfg.Logging.Level,
		Format:     "console",
		OutputPath: "stderr",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	store, err := session.NewStore(logger, cfg.Session)
	if err != nil {
		logger.Fatal("Failed to open session store", "error", err)
	}

	analyzer, err := analysis.NewAnalyzer(logger, cfg.Analysis.GapThreshold)
	if err != nil {
		logger.Fatal("Failed to create analyzer", "error", err)
	}

	channels, marks, err := store.ReadSession(*sessionID)
	if err != nil {
		logger.Fatal("Failed to read session", "session", *sessionID, "error", err)
	}

	report := analyzer.AnalyzeSession(*sessionID, channels, marks)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Fatal("Failed to encode report", "error", err)
	}
}
