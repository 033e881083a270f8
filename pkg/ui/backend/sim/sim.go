// Package sim provides an in-memory Backend for tests. Rendered frames
// can be inspected as plain strings and input is injected directly.
package sim

import (
	"strings"
	"sync"

	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/terminal"
)

type cell struct {
	ch    rune
	style backend.Style
}

// Backend is a simulated terminal.
type Backend struct {
	mu     sync.Mutex
	width  int
	height int
	cells  [][]cell

	events chan terminal.Event
	closed bool
}

// New creates a simulated terminal of the given size.
func New(width, height int) *Backend {
	b := &Backend{
		width:  width,
		height: height,
		events: make(chan terminal.Event, 64),
	}
	b.reset()
	return b
}

func (b *Backend) reset() {
	b.cells = make([][]cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = cell{ch: ' ', style: backend.DefaultStyle()}
		}
	}
}

func (b *Backend) Init() error { return nil }

func (b *Backend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.events)
	}
}

func (b *Backend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || y >= b.height || x >= b.width {
		return
	}
	b.cells[y][x] = cell{ch: mainc, style: style}
}

func (b *Backend) Show()                 {}
func (b *Backend) Clear()                { b.mu.Lock(); b.reset(); b.mu.Unlock() }
func (b *Backend) HideCursor()           {}
func (b *Backend) ShowCursor()           {}
func (b *Backend) SetCursorPos(x, y int) {}
func (b *Backend) Sync()                 {}

func (b *Backend) PollEvent() terminal.Event {
	ev, ok := <-b.events
	if !ok {
		return nil
	}
	return ev
}

func (b *Backend) PostEvent(ev terminal.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.events <- ev
	return nil
}

// Resize changes the simulated terminal size and queues a resize event.
func (b *Backend) Resize(width, height int) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.reset()
	b.mu.Unlock()
	b.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// InjectKey queues a special key press.
func (b *Backend) InjectKey(key terminal.Key) {
	b.PostEvent(terminal.KeyEvent{Key: key})
}

// InjectRune queues a printable key press.
func (b *Backend) InjectRune(r rune) {
	b.PostEvent(terminal.KeyEvent{Key: terminal.KeyRune, Rune: r})
}

// InjectString queues one key press per rune.
func (b *Backend) InjectString(s string) {
	for _, r := range s {
		b.InjectRune(r)
	}
}

// Line returns row y of the screen, right-trimmed.
func (b *Backend) Line(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.cells[y][x].ch)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Contents returns the whole screen as newline-joined rows.
func (b *Backend) Contents() string {
	b.mu.Lock()
	h := b.height
	b.mu.Unlock()
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}

// StyleAt returns the style of the cell at (x, y).
func (b *Backend) StyleAt(x, y int) backend.Style {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || y >= b.height || x >= b.width {
		return backend.DefaultStyle()
	}
	return b.cells[y][x].style
}
