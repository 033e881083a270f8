// Package runtime implements the widget runtime for the console:
// constraint-based measurement, rectangle layout, and a message loop
// driven by a terminal backend.
package runtime

// Constraints bound the space offered to a widget during measure.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Tight returns constraints that force an exact size.
func Tight(w, h int) Constraints {
	return Constraints{MinWidth: w, MaxWidth: w, MinHeight: h, MaxHeight: h}
}

// Loose returns constraints with only max bounds.
func Loose(w, h int) Constraints {
	return Constraints{MaxWidth: w, MaxHeight: h}
}

// Unbounded returns constraints with no limits.
func Unbounded() Constraints {
	return Constraints{MaxWidth: maxInt, MaxHeight: maxInt}
}

// Constrain clamps a size to fit within the constraints.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(s.Height, c.MinHeight, c.MaxHeight),
	}
}

// MaxSize returns the largest size the constraints allow.
func (c Constraints) MaxSize() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// Size is a widget's measured dimensions.
type Size struct {
	Width, Height int
}

// Rect is a positioned rectangle in screen coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// NewRect creates a rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inset returns the rect shrunk by the given amounts per edge.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}

// Widget is the interface all UI components implement.
type Widget interface {
	// Measure returns the desired size under the given constraints.
	Measure(constraints Constraints) Size

	// Layout assigns the final bounds. Widgets keep the rect for Render.
	Layout(bounds Rect)

	// Render draws the widget into the frame buffer.
	Render(ctx RenderContext)

	// HandleMessage processes an input event or app message.
	HandleMessage(msg Message) HandleResult
}

// Focusable marks widgets that can hold keyboard focus.
type Focusable interface {
	Widget

	CanFocus() bool
	Focus()
	Blur()
	IsFocused() bool
}

// HandleResult reports whether a message was consumed and carries
// commands to bubble up.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled returns a consumed result with no commands.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// Unhandled returns a result indicating the message was not consumed.
func Unhandled() HandleResult {
	return HandleResult{}
}

// WithCommand returns a consumed result carrying one command.
func WithCommand(cmd Command) HandleResult {
	return HandleResult{Handled: true, Commands: []Command{cmd}}
}

const maxInt = int(^uint(0) >> 1)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
