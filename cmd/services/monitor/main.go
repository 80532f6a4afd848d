package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pulsekit/pulsekit/internal/analysis"
	"github.com/pulsekit/pulsekit/internal/beat"
	"github.com/pulsekit/pulsekit/internal/config"
	"github.com/pulsekit/pulsekit/internal/live"
	"github.com/pulsekit/pulsekit/internal/logging"
	"github.com/pulsekit/pulsekit/internal/models"
	"github.com/pulsekit/pulsekit/internal/queue"
	"github.com/pulsekit/pulsekit/internal/router"
	"github.com/pulsekit/pulsekit/internal/session"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	record := flag.Bool("record", false, "Record incoming samples to a session")
	sessionID := flag.String("session", "", "Session ID to record into (generated when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)
	logger.Info("Monitor service starting...", "version", Version, "commit", GitCommit)

	logger.Info("Connecting to queue", "type", cfg.Queue.Type, "url", cfg.Queue.URL)
	queueClient, err := queue.NewQueue(cfg.Queue)
	if err != nil {
		logger.Fatal("Failed to connect to queue", "error", err)
	}
	defer func() { _ = queueClient.Close() }()

	store, err := session.NewStore(logger, cfg.Session)
	if err != nil {
		logger.Fatal("Failed to open session store", "error", err)
	}

	analyzer, err := analysis.NewAnalyzer(logger, cfg.Analysis.GapThreshold)
	if err != nil {
		logger.Fatal("Failed to create analyzer", "error", err)
	}

	monitor, err := live.NewMonitor(logger, beat.DetectorConfig{
		Threshold:        cfg.Detector.Threshold,
		RefractoryPeriod: cfg.Detector.RefractoryPeriod,
	}, queueClient)
	if err != nil {
		logger.Fatal("Failed to create monitor", "error", err)
	}
	if err := monitor.Start(queueClient); err != nil {
		logger.Fatal("Failed to start monitor", "error", err)
	}
	logger.Info("Live pipeline running",
		"threshold", cfg.Detector.Threshold,
		"refractory_period", cfg.Detector.RefractoryPeriod)

	var recorder *session.Recorder
	if *record {
		recorder = session.NewRecorder(logger, store, *sessionID)
		channels := []models.Channel{models.ChannelRawECG, models.ChannelHeartRate, models.ChannelRRInterval}
		if err := recorder.Start(queueClient, channels); err != nil {
			logger.Fatal("Failed to start recorder", "error", err)
		}
		logger.Info("Recording session", "session", recorder.SessionID())
	}

	app := router.New(logger, monitor, store, analyzer)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort)
		logger.Info("Server listening", "address", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	if recorder != nil {
		if err := recorder.Flush(); err != nil {
			logger.Error("Failed to flush recording", "error", err)
		}
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Monitor exited")
}
