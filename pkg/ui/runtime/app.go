package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/terminal"
)

// UpdateFunc processes one message. Return true to trigger a redraw.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler receives commands the app itself does not consume.
// Return true to trigger a redraw.
type CommandHandler func(cmd Command) bool

// AppConfig configures a new App.
type AppConfig struct {
	Backend   backend.Backend
	Update    UpdateFunc
	OnCommand CommandHandler
	TickRate  time.Duration
}

// App owns the message loop. All widget updates and rendering happen on
// the loop goroutine; other goroutines interact only through Post.
type App struct {
	backend        backend.Backend
	update         UpdateFunc
	commandHandler CommandHandler
	tickRate       time.Duration

	root     Widget
	buffer   *Buffer
	messages chan Message
	running  atomic.Bool
	dirty    bool
}

// NewApp creates an app around the given backend.
func NewApp(cfg AppConfig) *App {
	return &App{
		backend:        cfg.Backend,
		update:         cfg.Update,
		commandHandler: cfg.OnCommand,
		tickRate:       cfg.TickRate,
		messages:       make(chan Message, 128),
	}
}

// SetRoot sets the root widget.
func (a *App) SetRoot(root Widget) {
	a.root = root
}

// Root returns the current root widget.
func (a *App) Root() Widget {
	return a.root
}

// Post queues a message for the loop. Safe to call from any goroutine;
// drops the message if the queue is full.
func (a *App) Post(msg Message) {
	select {
	case a.messages <- msg:
	default:
	}
}

// Quit stops the loop after the current message.
func (a *App) Quit() {
	a.running.Store(false)
}

// Run drives the event loop until quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	a.buffer = NewBuffer(w, h)

	if a.update == nil {
		a.update = DefaultUpdate
	}

	a.running.Store(true)
	a.dirty = true

	go a.pollEvents()

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for a.running.Load() {
		select {
		case <-ctx.Done():
			a.running.Store(false)
		case msg := <-a.messages:
			if a.update(a, msg) {
				a.dirty = true
			}
		case now := <-ticks:
			if a.update(a, TickMsg{Time: now}) {
				a.dirty = true
			}
		}

		if a.dirty {
			a.render()
			a.dirty = false
		}
	}

	return ctx.Err()
}

// DefaultUpdate routes messages into the widget tree and commands back
// to the app.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil || app.root == nil {
		return false
	}

	if m, ok := msg.(ResizeMsg); ok {
		if app.buffer != nil {
			app.buffer.Resize(m.Width, m.Height)
		}
		return true
	}

	result := app.root.HandleMessage(msg)
	dirty := result.Handled
	for _, cmd := range result.Commands {
		if app.handleCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

func (a *App) handleCommand(cmd Command) bool {
	switch cmd.(type) {
	case Quit:
		a.running.Store(false)
		return false
	case Refresh:
		return true
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

func (a *App) pollEvents() {
	for a.running.Load() {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case terminal.KeyEvent:
			a.Post(KeyMsg{Key: e.Key, Rune: e.Rune, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift})
		case terminal.ResizeEvent:
			a.Post(ResizeMsg{Width: e.Width, Height: e.Height})
		case terminal.MouseEvent:
			a.Post(MouseMsg{X: e.X, Y: e.Y, Button: e.Button, Action: e.Action})
		case terminal.PasteEvent:
			a.Post(PasteMsg{Text: e.Text})
		}
	}
}

func (a *App) render() {
	if a.root == nil || a.buffer == nil {
		return
	}

	w, h := a.buffer.Size()
	a.buffer.Clear()
	a.root.Measure(Tight(w, h))
	a.root.Layout(NewRect(0, 0, w, h))
	a.root.Render(RenderContext{Buffer: a.buffer})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := a.buffer.Get(x, y)
			a.backend.SetContent(x, y, cell.Rune, nil, cell.Style)
		}
	}
	a.backend.Show()
}
