// Package widgets provides the building blocks the console screens are
// composed from.
package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/runtime"
)

// Base provides common bounds bookkeeping for widgets.
type Base struct {
	bounds runtime.Rect
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	b.bounds = bounds
}

// Bounds returns the last assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	return b.bounds
}

// HandleMessage ignores all messages.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// FocusableBase adds focus state to Base.
type FocusableBase struct {
	Base
	focused bool
}

func (f *FocusableBase) CanFocus() bool  { return true }
func (f *FocusableBase) Focus()          { f.focused = true }
func (f *FocusableBase) Blur()           { f.focused = false }
func (f *FocusableBase) IsFocused() bool { return f.focused }

// Truncate shortens s to maxWidth display cells, appending an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth-1, "") + "…"
}

// WrapText breaks text into lines no wider than width, preferring word
// boundaries.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph == "" {
			lines = append(lines, "")
			continue
		}
		line := ""
		lineWidth := 0
		for _, word := range strings.Fields(paragraph) {
			w := runewidth.StringWidth(word)
			switch {
			case lineWidth == 0:
				for w > width {
					head := runewidth.Truncate(word, width, "")
					lines = append(lines, head)
					word = strings.TrimPrefix(word, head)
					w = runewidth.StringWidth(word)
				}
				line = word
				lineWidth = w
			case lineWidth+1+w <= width:
				line += " " + word
				lineWidth += 1 + w
			default:
				lines = append(lines, line)
				line = word
				lineWidth = w
			}
		}
		if lineWidth > 0 || line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// fillRow paints a full row of the rect with spaces.
func fillRow(buf *runtime.Buffer, bounds runtime.Rect, y int, style backend.Style) {
	for x := bounds.X; x < bounds.X+bounds.Width; x++ {
		buf.Set(x, y, ' ', style)
	}
}
