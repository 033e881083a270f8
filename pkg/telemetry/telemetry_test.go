package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	events, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	hub.Publish(Event{Type: EventLoadCompleted, Data: map[string]any{"narratives": 2}})

	select {
	case ev := <-events:
		assert.Equal(t, EventLoadCompleted, ev.Type)
		assert.Equal(t, 2, ev.Data["narratives"])
		assert.False(t, ev.Timestamp.IsZero(), "timestamp should be stamped")
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	events, unsubscribe := hub.Subscribe()
	unsubscribe()

	_, open := <-events
	assert.False(t, open, "channel should be closed after unsubscribe")

	// Double unsubscribe must not panic.
	unsubscribe()
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	_, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	// Nobody drains the channel; publishing past the buffer must not stall.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish(Event{Type: EventDraftChanged})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}

func TestSubscribeAfterClose(t *testing.T) {
	hub := NewHub()
	hub.Close()

	events, unsubscribe := hub.Subscribe()
	require.NotNil(t, unsubscribe)

	_, open := <-events
	assert.False(t, open, "post-close subscription should be closed")

	// Publishing after close is a no-op.
	hub.Publish(Event{Type: EventLoadStarted})
}
