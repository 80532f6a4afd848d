package config

import "fmt"

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Detector DetectorConfig `mapstructure:"detector"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Queue    QueueConfig    `mapstructure:"queue"`
	Session  SessionConfig  `mapstructure:"session"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	HTTPPort int    `mapstructure:"http_port"`
}

// DetectorConfig represents the beat detector tuning. Threshold is in raw
// sensor units and depends on sensor gain; refractory period is in seconds.
type DetectorConfig struct {
	Threshold        float64 `mapstructure:"threshold"`
	RefractoryPeriod float64 `mapstructure:"refractory_period"`
}

// AnalysisConfig represents the offline analyzer configuration
type AnalysisConfig struct {
	GapThreshold float64 `mapstructure:"gap_threshold"` // seconds of pause that start a new segment
}

// QueueConfig represents message queue configuration
type QueueConfig struct {
	Type     string `mapstructure:"type"` // nats (default), redis, kafka, memory
	URL      string `mapstructure:"url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// Redis-specific options
	RedisDB       int    `mapstructure:"redis_db"`
	RedisStream   string `mapstructure:"redis_stream"`
	RedisGroup    string `mapstructure:"redis_group"`
	RedisConsumer string `mapstructure:"redis_consumer"`

	// Kafka-specific options
	KafkaBrokers []string `mapstructure:"kafka_brokers"`
	KafkaGroupID string   `mapstructure:"kafka_group_id"`
}

// SessionConfig represents the session store configuration
type SessionConfig struct {
	DataDir  string `mapstructure:"data_dir"`
	Compress bool   `mapstructure:"compress"` // snappy-compress recordings on write
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// Validate validates the configuration. Invalid tunables are rejected here,
// at startup, rather than silently tolerated by the pipeline.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Detector.Validate(); err != nil {
		return fmt.Errorf("detector config: %w", err)
	}
	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis config: %w", err)
	}
	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("session config: %w", err)
	}
	return nil
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port: %d", c.HTTPPort)
	}
	return nil
}

// Validate validates the detector configuration
func (c *DetectorConfig) Validate() error {
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %v", c.Threshold)
	}
	if c.RefractoryPeriod < 0 {
		return fmt.Errorf("refractory period must not be negative, got %v", c.RefractoryPeriod)
	}
	return nil
}

// Validate validates the analysis configuration
func (c *AnalysisConfig) Validate() error {
	if c.GapThreshold <= 0 {
		return fmt.Errorf("gap threshold must be positive, got %v", c.GapThreshold)
	}
	return nil
}

// Validate validates the session store configuration
func (c *SessionConfig) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	return nil
}
