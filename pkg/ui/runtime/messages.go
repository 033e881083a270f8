package runtime

import (
	"time"

	"github.com/eidora/mythos/pkg/ui/terminal"
)

// Message is an event flowing into the UI. Messages come from terminal
// input, timers, or background goroutines via App.Post.
type Message interface {
	isMessage()
}

// KeyMsg is a keyboard input event.
type KeyMsg struct {
	Key   terminal.Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyMsg) isMessage() {}

// ResizeMsg reports a terminal size change.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// MouseMsg is a mouse input event.
type MouseMsg struct {
	X, Y   int
	Button terminal.MouseButton
	Action terminal.MouseAction
}

func (MouseMsg) isMessage() {}

// PasteMsg carries text from bracketed paste mode.
type PasteMsg struct {
	Text string
}

func (PasteMsg) isMessage() {}

// TickMsg is sent on each frame tick.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// EventMsg wraps an application-level event posted from outside the
// loop, such as a state change notification.
type EventMsg struct {
	Payload any
}

func (EventMsg) isMessage() {}
