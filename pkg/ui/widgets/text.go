package widgets

import (
	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/runtime"
)

// Text displays static text, word-wrapped to its bounds.
type Text struct {
	Base
	text  string
	style backend.Style
}

// NewText creates a text widget.
func NewText(text string) *Text {
	return &Text{text: text, style: backend.DefaultStyle()}
}

// SetText replaces the displayed text.
func (t *Text) SetText(text string) {
	t.text = text
}

// Text returns the current text.
func (t *Text) Text() string {
	return t.text
}

// WithStyle sets the style and returns the widget for chaining.
func (t *Text) WithStyle(style backend.Style) *Text {
	t.style = style
	return t
}

// Measure returns the wrapped extent of the text.
func (t *Text) Measure(constraints runtime.Constraints) runtime.Size {
	lines := WrapText(t.text, constraints.MaxWidth)
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	return constraints.Constrain(runtime.Size{Width: width, Height: len(lines)})
}

// Render draws the wrapped text.
func (t *Text) Render(ctx runtime.RenderContext) {
	bounds := t.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	for i, line := range WrapText(t.text, bounds.Width) {
		if i >= bounds.Height {
			break
		}
		ctx.Buffer.SetString(bounds.X, bounds.Y+i, line, t.style)
	}
}
