package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/runtime"
	"github.com/eidora/mythos/pkg/ui/terminal"
)

// Input is a single-line text field with cursor movement and
// horizontal scrolling. It edits only while focused.
type Input struct {
	FocusableBase
	label       string
	value       []rune
	cursor      int
	scroll      int
	placeholder string

	labelStyle  backend.Style
	textStyle   backend.Style
	placeStyle  backend.Style
	cursorStyle backend.Style

	// OnChange fires after every edit.
	OnChange func(value string)
}

// NewInput creates an input with a left-hand label.
func NewInput(label string) *Input {
	return &Input{
		label:       label,
		labelStyle:  backend.DefaultStyle(),
		textStyle:   backend.DefaultStyle(),
		placeStyle:  backend.DefaultStyle().Dim(true),
		cursorStyle: backend.DefaultStyle().Reverse(true),
	}
}

// SetStyles sets the label, text, placeholder, and cursor styles.
func (in *Input) SetStyles(label, text, placeholder, cursor backend.Style) {
	in.labelStyle = label
	in.textStyle = text
	in.placeStyle = placeholder
	in.cursorStyle = cursor
}

// SetPlaceholder sets the text shown while the value is empty.
func (in *Input) SetPlaceholder(s string) {
	in.placeholder = s
}

// Value returns the current text.
func (in *Input) Value() string {
	return string(in.value)
}

// SetValue replaces the text and moves the cursor to the end.
func (in *Input) SetValue(s string) {
	in.value = []rune(s)
	in.cursor = len(in.value)
	in.scroll = 0
}

func (in *Input) notify() {
	if in.OnChange != nil {
		in.OnChange(string(in.value))
	}
}

func (in *Input) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: 1})
}

func (in *Input) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !in.focused {
		return runtime.Unhandled()
	}

	switch m := msg.(type) {
	case runtime.KeyMsg:
		return in.handleKey(m)
	case runtime.PasteMsg:
		text := strings.ReplaceAll(m.Text, "\n", " ")
		in.insert([]rune(text))
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (in *Input) handleKey(m runtime.KeyMsg) runtime.HandleResult {
	switch m.Key {
	case terminal.KeyRune:
		if m.Ctrl || m.Alt {
			return runtime.Unhandled()
		}
		in.insert([]rune{m.Rune})
	case terminal.KeyBackspace:
		if in.cursor > 0 {
			in.value = append(in.value[:in.cursor-1], in.value[in.cursor:]...)
			in.cursor--
			in.notify()
		}
	case terminal.KeyDelete:
		if in.cursor < len(in.value) {
			in.value = append(in.value[:in.cursor], in.value[in.cursor+1:]...)
			in.notify()
		}
	case terminal.KeyLeft:
		if in.cursor > 0 {
			in.cursor--
		}
	case terminal.KeyRight:
		if in.cursor < len(in.value) {
			in.cursor++
		}
	case terminal.KeyHome:
		in.cursor = 0
	case terminal.KeyEnd:
		in.cursor = len(in.value)
	case terminal.KeyCtrlU:
		in.value = in.value[:0]
		in.cursor = 0
		in.scroll = 0
		in.notify()
	default:
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

func (in *Input) insert(runes []rune) {
	in.value = append(in.value[:in.cursor], append(runes, in.value[in.cursor:]...)...)
	in.cursor += len(runes)
	in.notify()
}

func (in *Input) Render(ctx runtime.RenderContext) {
	bounds := in.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	x := bounds.X
	if in.label != "" {
		x = ctx.Buffer.SetString(x, bounds.Y, in.label+" ", in.labelStyle)
	}
	fieldWidth := bounds.X + bounds.Width - x
	if fieldWidth <= 0 {
		return
	}

	if len(in.value) == 0 {
		if in.placeholder != "" {
			ctx.Buffer.SetString(x, bounds.Y, Truncate(in.placeholder, fieldWidth), in.placeStyle)
		}
		if in.focused {
			ctx.Buffer.Set(x, bounds.Y, ' ', in.cursorStyle)
		}
		return
	}

	// Keep the cursor inside the visible window.
	if in.cursor < in.scroll {
		in.scroll = in.cursor
	}
	if in.cursor-in.scroll >= fieldWidth {
		in.scroll = in.cursor - fieldWidth + 1
	}

	visible := in.value[in.scroll:]
	col := x
	for i, r := range visible {
		w := runewidth.RuneWidth(r)
		if col+w > bounds.X+bounds.Width {
			break
		}
		style := in.textStyle
		if in.focused && in.scroll+i == in.cursor {
			style = in.cursorStyle
		}
		ctx.Buffer.Set(col, bounds.Y, r, style)
		col += w
	}
	if in.focused && in.cursor == len(in.value) && col < bounds.X+bounds.Width {
		ctx.Buffer.Set(col, bounds.Y, ' ', in.cursorStyle)
	}
}
