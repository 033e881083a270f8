package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/eidora/mythos/pkg/ui/backend"
)

// Cell is one character position in the frame buffer.
type Cell struct {
	Rune  rune
	Style backend.Style
}

// Buffer is the off-screen frame the widget tree renders into. The app
// copies it to the backend after each update.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer allocates a cleared buffer.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize reallocates the buffer and clears it.
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.width = w
	b.height = h
	b.cells = make([]Cell, w*h)
	b.Clear()
}

// Clear resets every cell to a blank with the default style.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: backend.DefaultStyle()}
	}
}

// Get returns the cell at (x, y), or a blank cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{Rune: ' ', Style: backend.DefaultStyle()}
	}
	return b.cells[y*b.width+x]
}

// Set writes one cell. Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: s}
}

// SetString writes a string starting at (x, y), accounting for wide
// runes. Returns the x position after the last written cell.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= b.width {
			break
		}
		b.Set(x, y, r, style)
		// Wide runes occupy a trailing blank cell.
		for i := 1; i < w; i++ {
			b.Set(x+i, y, ' ', style)
		}
		x += w
	}
	return x
}

// Fill paints a rect with the given rune and style.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			b.Set(x, y, ch, s)
		}
	}
}

// DrawBox draws a single-line border on the rect's perimeter.
func (b *Buffer) DrawBox(r Rect, s backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	x2 := r.X + r.Width - 1
	y2 := r.Y + r.Height - 1

	b.Set(r.X, r.Y, '┌', s)
	b.Set(x2, r.Y, '┐', s)
	b.Set(r.X, y2, '└', s)
	b.Set(x2, y2, '┘', s)
	for x := r.X + 1; x < x2; x++ {
		b.Set(x, r.Y, '─', s)
		b.Set(x, y2, '─', s)
	}
	for y := r.Y + 1; y < y2; y++ {
		b.Set(r.X, y, '│', s)
		b.Set(x2, y, '│', s)
	}
}

// RenderContext is passed to Widget.Render.
type RenderContext struct {
	Buffer *Buffer
}
