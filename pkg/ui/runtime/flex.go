package runtime

// FlexDirection selects the main axis of a flex container.
type FlexDirection int

const (
	Column FlexDirection = iota
	Row
)

// FlexChild pairs a widget with its layout weight.
type FlexChild struct {
	Widget Widget
	Grow   float64 // 0 = fixed, >0 = proportional share of leftover space
	Basis  int     // fixed main-axis size, -1 = use measured size
}

// Fixed creates a child sized by its own measurement.
func Fixed(w Widget) FlexChild {
	return FlexChild{Widget: w, Basis: -1}
}

// Expanded creates a child that fills remaining space.
func Expanded(w Widget) FlexChild {
	return FlexChild{Widget: w, Grow: 1, Basis: -1}
}

// Sized creates a child with a fixed main-axis size.
func Sized(w Widget, basis int) FlexChild {
	return FlexChild{Widget: w, Basis: basis}
}

// Flex lays out children along one axis. Fixed children keep their
// measured size; growing children split the leftover proportionally.
type Flex struct {
	Direction FlexDirection
	Children  []FlexChild
	Gap       int

	bounds Rect
}

// VBox creates a vertical flex container.
func VBox(children ...FlexChild) *Flex {
	return &Flex{Direction: Column, Children: children}
}

// HBox creates a horizontal flex container.
func HBox(children ...FlexChild) *Flex {
	return &Flex{Direction: Row, Children: children}
}

// WithGap sets the spacing between children.
func (f *Flex) WithGap(gap int) *Flex {
	f.Gap = gap
	return f
}

// Add appends a child.
func (f *Flex) Add(child FlexChild) {
	f.Children = append(f.Children, child)
}

func (f *Flex) mainOf(s Size) int {
	if f.Direction == Column {
		return s.Height
	}
	return s.Width
}

func (f *Flex) childConstraints(c Constraints) Constraints {
	if f.Direction == Column {
		return Constraints{MinWidth: c.MinWidth, MaxWidth: c.MaxWidth, MaxHeight: maxInt}
	}
	return Constraints{MinHeight: c.MinHeight, MaxHeight: c.MaxHeight, MaxWidth: maxInt}
}

// Measure sums fixed children along the main axis and takes the max of
// the cross axis.
func (f *Flex) Measure(constraints Constraints) Size {
	totalMain := 0
	maxCross := 0
	cc := f.childConstraints(constraints)

	for _, child := range f.Children {
		size := child.Widget.Measure(cc)
		main := f.mainOf(size)
		if child.Basis >= 0 {
			main = child.Basis
		}
		totalMain += main
		if f.Direction == Column {
			maxCross = max(maxCross, size.Width)
		} else {
			maxCross = max(maxCross, size.Height)
		}
	}
	if len(f.Children) > 1 {
		totalMain += f.Gap * (len(f.Children) - 1)
	}

	if f.Direction == Column {
		return constraints.Constrain(Size{Width: maxCross, Height: totalMain})
	}
	return constraints.Constrain(Size{Width: totalMain, Height: maxCross})
}

// Layout positions children: fixed sizes first, then leftover space
// split among growing children by weight.
func (f *Flex) Layout(bounds Rect) {
	f.bounds = bounds
	if len(f.Children) == 0 {
		return
	}

	available := f.mainOf(bounds.Size())
	available -= f.Gap * (len(f.Children) - 1)

	mains := make([]int, len(f.Children))
	cc := f.childConstraints(Constraints{
		MaxWidth:  bounds.Width,
		MaxHeight: bounds.Height,
	})

	fixedTotal := 0
	growTotal := 0.0
	for i, child := range f.Children {
		if child.Grow > 0 {
			growTotal += child.Grow
			continue
		}
		main := child.Basis
		if main < 0 {
			main = f.mainOf(child.Widget.Measure(cc))
		}
		mains[i] = main
		fixedTotal += main
	}

	leftover := max(0, available-fixedTotal)
	remaining := leftover
	for i, child := range f.Children {
		if child.Grow <= 0 {
			continue
		}
		share := int(float64(leftover) * child.Grow / growTotal)
		mains[i] = min(share, remaining)
		remaining -= mains[i]
	}
	// Hand rounding leftovers to the last growing child.
	if remaining > 0 {
		for i := len(f.Children) - 1; i >= 0; i-- {
			if f.Children[i].Grow > 0 {
				mains[i] += remaining
				break
			}
		}
	}

	offset := 0
	for i, child := range f.Children {
		var r Rect
		if f.Direction == Column {
			r = NewRect(bounds.X, bounds.Y+offset, bounds.Width, mains[i])
		} else {
			r = NewRect(bounds.X+offset, bounds.Y, mains[i], bounds.Height)
		}
		child.Widget.Layout(r)
		offset += mains[i] + f.Gap
	}
}

// Render draws every child.
func (f *Flex) Render(ctx RenderContext) {
	for _, child := range f.Children {
		child.Widget.Render(ctx)
	}
}

// HandleMessage offers the message to children in order until one
// consumes it. Commands from all consulted children are merged.
func (f *Flex) HandleMessage(msg Message) HandleResult {
	var commands []Command
	for _, child := range f.Children {
		result := child.Widget.HandleMessage(msg)
		commands = append(commands, result.Commands...)
		if result.Handled {
			return HandleResult{Handled: true, Commands: commands}
		}
	}
	return HandleResult{Commands: commands}
}
