// Package telemetry fans console state events out to any number of
// subscribers. The store publishes an event for every applied state
// transition and every surfaced failure; the renderer subscribes and
// repaints.
package telemetry

import (
	"sync"
	"time"
)

// EventType identifies the kind of console event.
type EventType string

const (
	EventLoadStarted      EventType = "load.started"
	EventLoadCompleted    EventType = "load.completed"
	EventLoadFailed       EventType = "load.failed"
	EventStatsRefreshed   EventType = "stats.refreshed"
	EventNarrativeCreated EventType = "narrative.created"
	EventDreamGenerated   EventType = "dream.generated"
	EventSearchCompleted  EventType = "search.completed"
	EventSearchCleared    EventType = "search.cleared"
	EventDraftChanged     EventType = "draft.changed"
	EventTabSelected      EventType = "tab.selected"
	EventProtocolFailed   EventType = "protocol.failed"
)

// Event describes a state transition the renderer may care about.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
	// Err carries the surfaced failure for *.failed events. Transient;
	// the console remains interactive.
	Err error `json:"-"`
}

// Hub fan-outs events to subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	closed      bool
}

// NewHub constructs an event hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan Event]struct{})}
}

// Publish notifies all subscribers. Non-blocking; drops the event for
// subscribers that cannot keep up so a slow renderer never stalls a
// protocol.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe returns a channel receiving future events and a cleanup
// function.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		empty := make(chan Event)
		close(empty)
		return empty, func() {}
	}
	ch := make(chan Event, 64)
	h.subscribers[ch] = struct{}{}
	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
	}
	return ch, unsubscribe
}

// Close unsubscribes all listeners and prevents future publications.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subscribers {
		close(ch)
	}
	h.subscribers = nil
}
