// Package backend abstracts the terminal so the console can run against
// a real tty (tcell) or an in-memory screen in tests.
package backend

import "github.com/eidora/mythos/pkg/ui/terminal"

// Backend is the terminal abstraction used by the runtime.
type Backend interface {
	// Init prepares the terminal (alt screen, raw mode).
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent writes a cell at (x, y). comb carries combining runes
	// and may be nil.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show flushes buffered cells to the terminal.
	Show()

	// Clear blanks the screen.
	Clear()

	// HideCursor hides the hardware cursor.
	HideCursor()

	// ShowCursor shows the hardware cursor.
	ShowCursor()

	// SetCursorPos moves the hardware cursor.
	SetCursorPos(x, y int)

	// PollEvent blocks for the next input event. A nil return means the
	// backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the input queue.
	PostEvent(ev terminal.Event) error

	// Sync forces a full repaint on the next Show.
	Sync()
}
