package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/runtime"
)

// StatusBar is a one-row bar showing a transient message on the left
// and a hint on the right.
type StatusBar struct {
	Base
	message  string
	msgStyle backend.Style
	hint     string
	hintSt   backend.Style
	fill     backend.Style
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		msgStyle: backend.DefaultStyle(),
		hintSt:   backend.DefaultStyle(),
		fill:     backend.DefaultStyle(),
	}
}

// SetMessage sets the left-aligned message with its style.
func (s *StatusBar) SetMessage(msg string, style backend.Style) {
	s.message = msg
	s.msgStyle = style
}

// SetHint sets the right-aligned key hint text.
func (s *StatusBar) SetHint(hint string, style backend.Style) {
	s.hint = hint
	s.hintSt = style
}

// SetFill sets the background style.
func (s *StatusBar) SetFill(fill backend.Style) {
	s.fill = fill
}

func (s *StatusBar) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: 1})
}

func (s *StatusBar) Render(ctx runtime.RenderContext) {
	bounds := s.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	fillRow(ctx.Buffer, bounds, bounds.Y, s.fill)

	hintWidth := runewidth.StringWidth(s.hint)
	msgSpace := bounds.Width - hintWidth - 3
	if s.message != "" && msgSpace > 0 {
		ctx.Buffer.SetString(bounds.X+1, bounds.Y, Truncate(s.message, msgSpace), s.msgStyle)
	}
	if s.hint != "" && hintWidth < bounds.Width-1 {
		ctx.Buffer.SetString(bounds.X+bounds.Width-hintWidth-1, bounds.Y, s.hint, s.hintSt)
	}
}
