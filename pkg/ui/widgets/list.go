package widgets

import (
	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/runtime"
	"github.com/eidora/mythos/pkg/ui/terminal"
)

// ListSource supplies items to a List.
type ListSource interface {
	// Len returns the number of items.
	Len() int

	// ItemHeight returns the rows item i occupies at the given width.
	ItemHeight(i, width int) int

	// RenderItem draws item i into the rect.
	RenderItem(buf *runtime.Buffer, bounds runtime.Rect, i int, selected bool)
}

// List is a vertically scrolling list with a selection cursor. Items
// may span multiple rows.
type List struct {
	FocusableBase
	source   ListSource
	selected int
	offset   int // index of first visible item

	scrollbar backend.Style
	thumb     backend.Style

	// OnSelect fires when Enter is pressed on an item.
	OnSelect func(i int)
}

// NewList creates a list over the given source.
func NewList(source ListSource) *List {
	return &List{
		source:    source,
		scrollbar: backend.DefaultStyle().Dim(true),
		thumb:     backend.DefaultStyle(),
	}
}

// SetScrollbarStyles sets the track and thumb styles.
func (l *List) SetScrollbarStyles(track, thumb backend.Style) {
	l.scrollbar = track
	l.thumb = thumb
}

// Selected returns the selection index, or -1 for an empty list.
func (l *List) Selected() int {
	if l.source.Len() == 0 {
		return -1
	}
	return l.selected
}

// Reset moves the cursor and scroll back to the top.
func (l *List) Reset() {
	l.selected = 0
	l.offset = 0
}

func (l *List) clamp() {
	n := l.source.Len()
	if n == 0 {
		l.selected = 0
		l.offset = 0
		return
	}
	if l.selected >= n {
		l.selected = n - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	if l.offset > l.selected {
		l.offset = l.selected
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l *List) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.MaxSize()
}

func (l *List) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.KeyMsg:
		if !l.focused {
			return runtime.Unhandled()
		}
		switch m.Key {
		case terminal.KeyUp:
			l.selected--
			l.clamp()
		case terminal.KeyDown:
			l.selected++
			l.clamp()
		case terminal.KeyHome:
			l.selected = 0
			l.clamp()
		case terminal.KeyEnd:
			l.selected = l.source.Len() - 1
			l.clamp()
		case terminal.KeyPageUp:
			l.selected -= l.pageSize()
			l.clamp()
		case terminal.KeyPageDown:
			l.selected += l.pageSize()
			l.clamp()
		case terminal.KeyEnter:
			if l.OnSelect != nil && l.source.Len() > 0 {
				l.OnSelect(l.selected)
			}
		default:
			return runtime.Unhandled()
		}
		return runtime.Handled()

	case runtime.MouseMsg:
		if !l.bounds.Contains(m.X, m.Y) {
			return runtime.Unhandled()
		}
		switch m.Button {
		case terminal.MouseWheelUp:
			l.selected--
			l.clamp()
			return runtime.Handled()
		case terminal.MouseWheelDown:
			l.selected++
			l.clamp()
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (l *List) pageSize() int {
	if l.bounds.Height < 4 {
		return 1
	}
	return l.bounds.Height / 4
}

func (l *List) Render(ctx runtime.RenderContext) {
	bounds := l.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 || l.source.Len() == 0 {
		return
	}
	l.clamp()

	itemWidth := bounds.Width - 1 // rightmost column is the scrollbar

	// Scroll forward until the selected item fits on screen.
	for !l.fits(l.selected, itemWidth, bounds.Height) {
		l.offset++
	}

	y := bounds.Y
	lastVisible := l.offset
	for i := l.offset; i < l.source.Len(); i++ {
		h := l.source.ItemHeight(i, itemWidth)
		if y+h > bounds.Y+bounds.Height {
			break
		}
		l.source.RenderItem(ctx.Buffer, runtime.NewRect(bounds.X, y, itemWidth, h), i, i == l.selected && l.focused)
		y += h
		lastVisible = i
	}

	l.renderScrollbar(ctx.Buffer, bounds, lastVisible)
}

// fits reports whether item target is fully visible starting from the
// current offset.
func (l *List) fits(target, width, height int) bool {
	if target < l.offset {
		return true // clamp already pulled offset up
	}
	y := 0
	for i := l.offset; i <= target; i++ {
		h := l.source.ItemHeight(i, width)
		if y+h > height && i <= target {
			return i > target
		}
		y += h
	}
	return true
}

func (l *List) renderScrollbar(buf *runtime.Buffer, bounds runtime.Rect, lastVisible int) {
	n := l.source.Len()
	if l.offset == 0 && lastVisible == n-1 {
		return // everything visible
	}
	x := bounds.X + bounds.Width - 1
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		buf.Set(x, y, '│', l.scrollbar)
	}
	thumbTop := bounds.Y + bounds.Height*l.offset/n
	thumbBot := bounds.Y + bounds.Height*(lastVisible+1)/n
	if thumbBot <= thumbTop {
		thumbBot = thumbTop + 1
	}
	for y := thumbTop; y < thumbBot && y < bounds.Y+bounds.Height; y++ {
		buf.Set(x, y, '█', l.thumb)
	}
}
