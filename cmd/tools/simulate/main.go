package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/pulsekit/pulsekit/internal/config"
	"github.com/pulsekit/pulsekit/internal/logging"
	"github.com/pulsekit/pulsekit/internal/models"
	"github.com/pulsekit/pulsekit/internal/queue"
	"github.com/pulsekit/pulsekit/internal/signal"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	sampleRate := flag.Float64("rate", 250, "Sample rate in Hz")
	bpm := flag.Float64("bpm", 72, "Simulated heart rate in BPM")
	noise := flag.Float64("noise", 0.02, "Relative noise level")
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

	logger.Info("Connecting to queue", "type", cfg.Queue.Type, "url", cfg.Queue.URL)
	publisher, err := queue.NewQueue(cfg.Queue)
	if err != nil {
		logger.Fatal("Failed to connect to queue", "error", err)
	}
	defer func() { _ = publisher.Close() }()

	sim := signal.NewECGSim(*sampleRate, *bpm, *noise)
	subject := models.SampleSubject(models.ChannelRawECG)
	interval := time.Duration(float64(time.Second) / *sampleRate)

	logger.Info("Publishing synthetic ECG",
		"subject", subject, "rate", *sampleRate, "bpm", *bpm)

	quit := make(chan os.Signal, 1)
	ossignal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			logger.Info("Simulator stopped")
			return
		case now := <-ticker.C:
			msg := models.SampleMessage{
				Channel:   models.ChannelRawECG,
				Timestamp: float64(now.UnixNano()) / 1e9,
				Value:     sim.Next(),
			}
			data, err := msg.Encode()
			if err != nil {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			if err := publisher.Publish(ctx, subject, data); err != nil {
				logger.Warn("Failed to publish sample", "error", err)
			}
			cancel()
		}
	}
}
