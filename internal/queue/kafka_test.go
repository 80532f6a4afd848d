package queue

import "testing"

func TestNewKafkaQueue(t *testing.T) {
	q, err := NewKafkaQueue(KafkaConfig{
		Brokers: []string{"localhost:9092"},
		GroupID: "test-group",
	})
	if err != nil {
		t.Fatalf("Failed to create Kafka queue: %v", err)
	}
	defer func() { _ = q.Close() }()

	if q.writers == nil || q.readers == nil {
		t.Error("Expected writer/reader maps to be initialized")
	}
}

func TestNewKafkaQueue_NoBrokers(t *testing.T) {
	if _, err := NewKafkaQueue(KafkaConfig{Brokers: nil}); err == nil {
		t.Fatal("Expected error when no brokers configured")
	}
	if _, err := NewKafkaQueue(KafkaConfig{Brokers: []string{}}); err == nil {
		t.Fatal("Expected error for empty broker list")
	}
}

func TestNewKafkaQueue_DefaultGroupID(t *testing.T) {
	q, err := NewKafkaQueue(KafkaConfig{Brokers: []string{"localhost:9092"}})
	if err != nil {
		t.Fatalf("Failed to create Kafka queue: %v", err)
	}
	defer func() { _ = q.Close() }()

	if q.config.GroupID != "pulsekit-group" {
		t.Errorf("Expected default group ID, got %q", q.config.GroupID)
	}
}

func TestKafkaQueue_WriterReuse(t *testing.T) {
	q, err := NewKafkaQueue(KafkaConfig{Brokers: []string{"localhost:9092"}})
	if err != nil {
		t.Fatalf("Failed to create Kafka queue: %v", err)
	}
	defer func() { _ = q.Close() }()

	w1 := q.getOrCreateWriter("topic.a")
	w2 := q.getOrCreateWriter("topic.a")
	if w1 != w2 {
		t.Error("Expected the same writer for the same topic")
	}

	w3 := q.getOrCreateWriter("topic.b")
	if w1 == w3 {
		t.Error("Expected different writers for different topics")
	}
}

func TestKafkaQueue_UnsubscribeNotSubscribed(t *testing.T) {
	q, err := NewKafkaQueue(KafkaConfig{Brokers: []string{"localhost:9092"}})
	if err != nil {
		t.Fatalf("Failed to create Kafka queue: %v", err)
	}
	defer func() { _ = q.Close() }()

	if err := q.Unsubscribe("none"); err == nil {
		t.Error("Expected error unsubscribing from unknown topic")
	}
}
