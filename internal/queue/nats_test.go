package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
)

// setupTestNATS creates an embedded NATS server for testing
func setupTestNATS(t *testing.T) (string, func()) {
	opts := &server.Options{
		Host: "127.0.0.1",
		Port: -1, // Random port
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		t.Fatalf("Failed to create NATS server: %v", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(5 * time.Second) {
		t.Fatal("NATS server not ready")
	}

	cleanup := func() {
		ns.Shutdown()
		ns.WaitForShutdown()
	}

	return ns.ClientURL(), cleanup
}

func TestNewNATSQueue(t *testing.T) {
	url, cleanup := setupTestNATS(t)
	defer cleanup()

	queue, err := NewNATSQueue(url)
	if err != nil {
		t.Fatalf("Failed to create NATS queue: %v", err)
	}
	defer func() { _ = queue.Close() }()

	if queue.conn == nil {
		t.Error("Expected connection to be initialized")
	}
	if queue.subscriptions == nil {
		t.Error("Expected subscriptions map to be initialized")
	}
}

func TestNewNATSQueue_InvalidURL(t *testing.T) {
	queue, err := NewNATSQueue("nats://invalid-host:9999")
	if err == nil {
		if queue != nil {
			_ = queue.Close()
		}
		t.Fatal("Expected error with invalid URL")
	}
}

func TestNATSQueue_PublishAndSubscribe(t *testing.T) {
	url, cleanup := setupTestNATS(t)
	defer cleanup()

	queue, err := NewNATSQueue(url)
	if err != nil {
		t.Fatalf("Failed to create NATS queue: %v", err)
	}
	defer func() { _ = queue.Close() }()

	subject := "test.publish.subscribe"
	testData := []byte("test message")

	received := make(chan []byte, 1)
	handler := func(data []byte) error {
		received <- data
		return nil
	}

	// Subscribe first
	if err := queue.Subscribe(subject, handler); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	if err := queue.Publish(context.Background(), subject, testData); err != nil {
		t.Fatalf("Failed to publish: %v", err)
	}

	select {
	case data := <-received:
		if string(data) != string(testData) {
			t.Errorf("Expected data %q, got %q", testData, data)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout waiting for message")
	}
}

func TestNATSQueue_PublishMultipleMessages(t *testing.T) {
	url, cleanup := setupTestNATS(t)
	defer cleanup()

	queue, err := NewNATSQueue(url)
	if err != nil {
		t.Fatalf("Failed to create NATS queue: %v", err)
	}
	defer func() { _ = queue.Close() }()

	subject := "test.multiple.messages"
	messageCount := 10

	var receivedCount atomic.Int32
	handler := func(data []byte) error {
		receivedCount.Add(1)
		return nil
	}

	if err := queue.Subscribe(subject, handler); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	ctx := context.Background()
	for i := 0; i < messageCount; i++ {
		data := []byte(fmt.Sprintf("message-%d", i))
		if err := queue.Publish(ctx, subject, data); err != nil {
			t.Fatalf("Failed to publish message %d: %v", i, err)
		}
	}

	timeout := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if receivedCount.Load() >= int32(messageCount) {
				return
			}
		case <-timeout:
			t.Fatalf("Timeout: only received %d out of %d messages", receivedCount.Load(), messageCount)
		}
	}
}

func TestNATSQueue_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	url, cleanup := setupTestNATS(t)
	defer cleanup()

	queue, err := NewNATSQueue(url)
	if err != nil {
		t.Fatalf("Failed to create NATS queue: %v", err)
	}
	defer func() { _ = queue.Close() }()

	subject := "test.handler.error"

	var callCount atomic.Int32
	handler := func(data []byte) error {
		callCount.Add(1)
		return fmt.Errorf("simulated error")
	}

	if err := queue.Subscribe(subject, handler); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := queue.Publish(ctx, subject, []byte("msg")); err != nil {
			t.Fatalf("Failed to publish: %v", err)
		}
	}

	timeout := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if callCount.Load() >= 5 {
				return
			}
		case <-timeout:
			t.Fatalf("Expected 5 handler calls despite errors, got %d", callCount.Load())
		}
	}
}

func TestNATSQueue_SubscribeAlreadySubscribed(t *testing.T) {
	url, cleanup := setupTestNATS(t)
	defer cleanup()

	queue, err := NewNATSQueue(url)
	if err != nil {
		t.Fatalf("Failed to create NATS queue: %v", err)
	}
	defer func() { _ = queue.Close() }()

	subject := "test.duplicate.subscribe"
	handler := func(data []byte) error { return nil }

	if err := queue.Subscribe(subject, handler); err != nil {
		t.Fatalf("Failed to subscribe first time: %v", err)
	}
	if err := queue.Subscribe(subject, handler); err == nil {
		t.Error("Expected error when subscribing to same subject twice")
	}
}

func TestNATSQueue_Unsubscribe(t *testing.T) {
	url, cleanup := setupTestNATS(t)
	defer cleanup()

	queue, err := NewNATSQueue(url)
	if err != nil {
		t.Fatalf("Failed to create NATS queue: %v", err)
	}
	defer func() { _ = queue.Close() }()

	subject := "test.unsubscribe"
	if err := queue.Subscribe(subject, func(data []byte) error { return nil }); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}

	queue.mu.RLock()
	_, exists := queue.subscriptions[subject]
	queue.mu.RUnlock()
	if !exists {
		t.Fatal("Expected subscription to exist")
	}

	if err := queue.Unsubscribe(subject); err != nil {
		t.Fatalf("Failed to unsubscribe: %v", err)
	}

	queue.mu.RLock()
	_, exists = queue.subscriptions[subject]
	queue.mu.RUnlock()
	if exists {
		t.Error("Expected subscription to be removed")
	}
}

func TestNATSQueue_UnsubscribeNotSubscribed(t *testing.T) {
	url, cleanup := setupTestNATS(t)
	defer cleanup()

	queue, err := NewNATSQueue(url)
	if err != nil {
		t.Fatalf("Failed to create NATS queue: %v", err)
	}
	defer func() { _ = queue.Close() }()

	if err := queue.Unsubscribe("nonexistent.subject"); err == nil {
		t.Error("Expected error when unsubscribing from non-existent subject")
	}
}

func TestNATSQueue_MultipleSubscribers(t *testing.T) {
	url, cleanup := setupTestNATS(t)
	defer cleanup()

	queue, err := NewNATSQueue(url)
	if err != nil {
		t.Fatalf("Failed to create NATS queue: %v", err)
	}
	defer func() { _ = queue.Close() }()

	subject1 := "test.multi.subject1"
	subject2 := "test.multi.subject2"

	received1 := make(chan []byte, 1)
	received2 := make(chan []byte, 1)

	if err := queue.Subscribe(subject1, func(data []byte) error {
		received1 <- data
		return nil
	}); err != nil {
		t.Fatalf("Failed to subscribe to subject1: %v", err)
	}
	if err := queue.Subscribe(subject2, func(data []byte) error {
		received2 <- data
		return nil
	}); err != nil {
		t.Fatalf("Failed to subscribe to subject2: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	ctx := context.Background()
	data1 := []byte("message1")
	data2 := []byte("message2")
	_ = queue.Publish(ctx, subject1, data1)
	_ = queue.Publish(ctx, subject2, data2)

	select {
	case msg := <-received1:
		if string(msg) != string(data1) {
			t.Errorf("Subject1: expected %q, got %q", data1, msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout waiting for message on subject1")
	}

	select {
	case msg := <-received2:
		if string(msg) != string(data2) {
			t.Errorf("Subject2: expected %q, got %q", data2, msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout waiting for message on subject2")
	}
}

func TestNATSQueue_Close(t *testing.T) {
	url, cleanup := setupTestNATS(t)
	defer cleanup()

	queue, err := NewNATSQueue(url)
	if err != nil {
		t.Fatalf("Failed to create NATS queue: %v", err)
	}

	if err := queue.Subscribe("test.close", func(data []byte) error { return nil }); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}

	if err := queue.Close(); err != nil {
		t.Errorf("Failed to close queue: %v", err)
	}

	queue.mu.RLock()
	subCount := len(queue.subscriptions)
	queue.mu.RUnlock()
	if subCount != 0 {
		t.Errorf("Expected 0 subscriptions after close, got %d", subCount)
	}
}

func TestNATSQueue_ConcurrentPublish(t *testing.T) {
	url, cleanup := setupTestNATS(t)
	defer cleanup()

	queue, err := NewNATSQueue(url)
	if err != nil {
		t.Fatalf("Failed to create NATS queue: %v", err)
	}
	defer func() { _ = queue.Close() }()

	subject := "test.concurrent.publish"
	messageCount := 50
	goroutines := 5

	var receivedCount atomic.Int32
	if err := queue.Subscribe(subject, func(data []byte) error {
		receivedCount.Add(1)
		return nil
	}); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	var wg sync.WaitGroup
	ctx := context.Background()
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < messageCount; i++ {
				data := []byte(fmt.Sprintf("goroutine-%d-message-%d", id, i))
				_ = queue.Publish(ctx, subject, data)
			}
		}(g)
	}
	wg.Wait()

	expectedTotal := int32(messageCount * goroutines)
	timeout := time.After(10 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if receivedCount.Load() >= expectedTotal {
				return
			}
		case <-timeout:
			t.Fatalf("Timeout: received %d out of %d messages", receivedCount.Load(), expectedTotal)
		}
	}
}
