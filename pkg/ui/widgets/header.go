package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/runtime"
)

// Header is a one-row bar with a title on the left and optional info on
// the right.
type Header struct {
	Base
	title      string
	info       string
	titleStyle backend.Style
	infoStyle  backend.Style
	fill       backend.Style
}

// NewHeader creates a header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		title:      title,
		titleStyle: backend.DefaultStyle().Bold(true),
		infoStyle:  backend.DefaultStyle(),
		fill:       backend.DefaultStyle(),
	}
}

// SetInfo sets the right-aligned text.
func (h *Header) SetInfo(info string) {
	h.info = info
}

// SetStyles sets the title, info, and background styles.
func (h *Header) SetStyles(title, info, fill backend.Style) {
	h.titleStyle = title
	h.infoStyle = info
	h.fill = fill
}

func (h *Header) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: 1})
}

func (h *Header) Render(ctx runtime.RenderContext) {
	bounds := h.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	fillRow(ctx.Buffer, bounds, bounds.Y, h.fill)

	title := Truncate(h.title, bounds.Width-2)
	ctx.Buffer.SetString(bounds.X+1, bounds.Y, title, h.titleStyle)

	if h.info != "" {
		infoWidth := runewidth.StringWidth(h.info)
		x := bounds.X + bounds.Width - infoWidth - 1
		if x > bounds.X+runewidth.StringWidth(title)+2 {
			ctx.Buffer.SetString(x, bounds.Y, h.info, h.infoStyle)
		}
	}
}
