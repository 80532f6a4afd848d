package queue

import (
	"fmt"
	"strings"

	"github.com/pulsekit/pulsekit/internal/config"
)

// NewQueue creates a Queue instance based on configuration.
// Default is NATS if type is not specified.
func NewQueue(cfg config.QueueConfig) (Queue, error) {
	switch strings.ToLower(cfg.Type) {
	case "nats", "":
		return NewNATSQueue(cfg.URL)

	case "redis":
		return NewRedisQueue(RedisConfig{
			URL:      cfg.URL,
			Password: cfg.Password,
			DB:       cfg.RedisDB,
			Stream:   cfg.RedisStream,
			Group:    cfg.RedisGroup,
			Consumer: cfg.RedisConsumer,
		})

	case "kafka":
		return NewKafkaQueue(KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			GroupID: cfg.KafkaGroupID,
		})

	case "memory":
		return NewMemoryQueue(), nil

	default:
		return nil, fmt.Errorf("unsupported queue type: %s (supported: nats, redis, kafka, memory)", cfg.Type)
	}
}
