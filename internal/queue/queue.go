// Package queue provides the pluggable message transport the live pipeline
// rides on: decoded sensor samples in, beat events and BPM updates out.
// Backends: NATS (default), Redis Streams, Kafka, and an in-memory queue for
// tests and single-process runs.
package queue

import "context"

// Publisher publishes messages to a subject/topic
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error

	// Close closes the connection
	Close() error
}

// Subscriber subscribes to messages from a queue
type Subscriber interface {
	// Subscribe subscribes to a subject/topic with a handler. The handler
	// runs on the backend's delivery goroutine; a returned error marks the
	// message as failed where the backend supports it.
	Subscribe(subject string, handler MessageHandler) error

	// Unsubscribe unsubscribes from a subject/topic
	Unsubscribe(subject string) error

	// Close closes the connection
	Close() error
}

// MessageHandler handles incoming messages
type MessageHandler func(data []byte) error

// Queue combines Publisher and Subscriber interfaces
type Queue interface {
	Publisher
	Subscriber
}
