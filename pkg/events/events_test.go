package events

import (
	"testing"
	"time"
)

// TestPublishSubscribe tests basic event distribution
func TestPublishSubscribe(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	if broker.SubscriberCount() != 1 {
		t.Fatalf("SubscriberCount() = %d, want 1", broker.SubscriberCount())
	}

	broker.Publish(New(EventHostnameUpdated, "hostname updated", map[string]string{
		"hostname": "a.example.com",
		"address":  "9.9.9.9",
	}))

	select {
	case event := <-sub:
		if event.Type != EventHostnameUpdated {
			t.Errorf("event type = %s, want %s", event.Type, EventHostnameUpdated)
		}
		if event.ID == "" {
			t.Error("event ID must be set")
		}
		if event.Timestamp.IsZero() {
			t.Error("event timestamp must be set")
		}
		if event.Metadata["hostname"] != "a.example.com" {
			t.Errorf("metadata hostname = %q", event.Metadata["hostname"])
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

// TestSlowSubscriberSkipped tests that a full subscriber buffer does not
// block the broker
func TestSlowSubscriberSkipped(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	// Overflow the subscriber buffer without draining it
	for i := 0; i < 200; i++ {
		broker.Publish(New(EventPassStarted, "pass", nil))
	}

	// The broker must still be responsive
	done := make(chan struct{})
	go func() {
		broker.Publish(New(EventPassCompleted, "pass", nil))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broker blocked on a slow subscriber")
	}
}
