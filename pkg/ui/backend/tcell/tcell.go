// Package tcell provides a Backend implementation using tcell.
package tcell

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/terminal"
)

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen tcell.Screen

	// Bracketed paste state
	inPaste     bool
	pasteBuffer strings.Builder
}

// New creates a tcell-backed terminal backend.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen. Tests use this with
// tcell's simulation screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnablePaste()
	b.screen.HideCursor()
	return nil
}

func (b *Backend) Fini() {
	b.screen.Fini()
}

func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, convertStyle(style))
}

func (b *Backend) Show()                 { b.screen.Show() }
func (b *Backend) Clear()                { b.screen.Clear() }
func (b *Backend) HideCursor()           { b.screen.HideCursor() }
func (b *Backend) ShowCursor()           {}
func (b *Backend) SetCursorPos(x, y int) { b.screen.ShowCursor(x, y) }
func (b *Backend) Sync()                 { b.screen.Sync() }

func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if converted := b.convertEvent(ev); converted != nil {
			return converted
		}
	}
}

func (b *Backend) PostEvent(ev terminal.Event) error {
	return b.screen.PostEvent(&wrappedEvent{inner: ev})
}

// wrappedEvent carries one of our events through tcell's queue.
type wrappedEvent struct {
	tcell.EventTime
	inner terminal.Event
}

func (b *Backend) convertEvent(ev tcell.Event) terminal.Event {
	switch tev := ev.(type) {
	case *wrappedEvent:
		return tev.inner

	case *tcell.EventKey:
		if b.inPaste {
			// Accumulate printable keys until the paste ends.
			if tev.Key() == tcell.KeyRune {
				b.pasteBuffer.WriteRune(tev.Rune())
			} else if tev.Key() == tcell.KeyEnter {
				b.pasteBuffer.WriteRune('\n')
			}
			return nil
		}
		return convertKey(tev)

	case *tcell.EventResize:
		w, h := tev.Size()
		return terminal.ResizeEvent{Width: w, Height: h}

	case *tcell.EventPaste:
		if tev.Start() {
			b.inPaste = true
			b.pasteBuffer.Reset()
			return nil
		}
		b.inPaste = false
		text := b.pasteBuffer.String()
		b.pasteBuffer.Reset()
		if text == "" {
			return nil
		}
		return terminal.PasteEvent{Text: text}

	case *tcell.EventMouse:
		x, y := tev.Position()
		out := terminal.MouseEvent{X: x, Y: y, Action: terminal.MousePress}
		switch {
		case tev.Buttons()&tcell.WheelUp != 0:
			out.Button = terminal.MouseWheelUp
		case tev.Buttons()&tcell.WheelDown != 0:
			out.Button = terminal.MouseWheelDown
		case tev.Buttons()&tcell.Button1 != 0:
			out.Button = terminal.MouseLeft
		default:
			out.Button = terminal.MouseNone
			out.Action = terminal.MouseRelease
		}
		return out

	default:
		return nil
	}
}

func convertKey(ev *tcell.EventKey) terminal.Event {
	out := terminal.KeyEvent{
		Alt:   ev.Modifiers()&tcell.ModAlt != 0,
		Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
		Shift: ev.Modifiers()&tcell.ModShift != 0,
	}

	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = terminal.KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEnter:
		out.Key = terminal.KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = terminal.KeyBackspace
	case tcell.KeyTab:
		out.Key = terminal.KeyTab
	case tcell.KeyBacktab:
		out.Key = terminal.KeyBacktab
	case tcell.KeyEscape:
		out.Key = terminal.KeyEscape
	case tcell.KeyUp:
		out.Key = terminal.KeyUp
	case tcell.KeyDown:
		out.Key = terminal.KeyDown
	case tcell.KeyLeft:
		out.Key = terminal.KeyLeft
	case tcell.KeyRight:
		out.Key = terminal.KeyRight
	case tcell.KeyHome:
		out.Key = terminal.KeyHome
	case tcell.KeyEnd:
		out.Key = terminal.KeyEnd
	case tcell.KeyPgUp:
		out.Key = terminal.KeyPageUp
	case tcell.KeyPgDn:
		out.Key = terminal.KeyPageDown
	case tcell.KeyDelete:
		out.Key = terminal.KeyDelete
	case tcell.KeyCtrlC:
		out.Key = terminal.KeyCtrlC
	case tcell.KeyCtrlR:
		out.Key = terminal.KeyCtrlR
	case tcell.KeyCtrlU:
		out.Key = terminal.KeyCtrlU
	default:
		return nil
	}
	return out
}

func convertStyle(style backend.Style) tcell.Style {
	fg, bg, attrs := style.Decompose()

	out := tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))

	if attrs&backend.AttrBold != 0 {
		out = out.Bold(true)
	}
	if attrs&backend.AttrReverse != 0 {
		out = out.Reverse(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		out = out.Underline(true)
	}
	if attrs&backend.AttrDim != 0 {
		out = out.Dim(true)
	}
	if attrs&backend.AttrItalic != 0 {
		out = out.Italic(true)
	}
	return out
}

func convertColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}
