package runtime

import "testing"

// stubWidget records its layout and reports a fixed measure.
type stubWidget struct {
	size   Size
	bounds Rect
}

func (s *stubWidget) Measure(c Constraints) Size          { return c.Constrain(s.size) }
func (s *stubWidget) Layout(bounds Rect)                  { s.bounds = bounds }
func (s *stubWidget) Render(ctx RenderContext)            {}
func (s *stubWidget) HandleMessage(m Message) HandleResult { return Unhandled() }

func TestVBoxFixedAndExpanded(t *testing.T) {
	header := &stubWidget{size: Size{Width: 80, Height: 1}}
	body := &stubWidget{}
	footer := &stubWidget{size: Size{Width: 80, Height: 1}}

	flex := VBox(
		Sized(header, 1),
		Expanded(body),
		Sized(footer, 1),
	)
	flex.Layout(NewRect(0, 0, 80, 24))

	if header.bounds != NewRect(0, 0, 80, 1) {
		t.Errorf("header bounds = %+v", header.bounds)
	}
	if body.bounds != NewRect(0, 1, 80, 22) {
		t.Errorf("body bounds = %+v", body.bounds)
	}
	if footer.bounds != NewRect(0, 23, 80, 1) {
		t.Errorf("footer bounds = %+v", footer.bounds)
	}
}

func TestHBoxProportionalGrowth(t *testing.T) {
	left := &stubWidget{}
	right := &stubWidget{}

	flex := HBox(
		FlexChild{Widget: left, Grow: 1, Basis: -1},
		FlexChild{Widget: right, Grow: 3, Basis: -1},
	)
	flex.Layout(NewRect(0, 0, 40, 10))

	if left.bounds.Width != 10 {
		t.Errorf("left width = %d, want 10", left.bounds.Width)
	}
	if right.bounds.Width != 30 {
		t.Errorf("right width = %d, want 30", right.bounds.Width)
	}
	if left.bounds.Width+right.bounds.Width != 40 {
		t.Error("children do not cover the full axis")
	}
}

func TestFlexGapSpacing(t *testing.T) {
	a := &stubWidget{size: Size{Height: 2}}
	b := &stubWidget{size: Size{Height: 2}}

	flex := VBox(Sized(a, 2), Sized(b, 2)).WithGap(1)
	flex.Layout(NewRect(0, 0, 10, 10))

	if a.bounds.Y != 0 || b.bounds.Y != 3 {
		t.Errorf("a.Y = %d, b.Y = %d, want 0 and 3", a.bounds.Y, b.bounds.Y)
	}
}

func TestFlexRoundingGoesToLastGrower(t *testing.T) {
	a := &stubWidget{}
	b := &stubWidget{}
	c := &stubWidget{}

	flex := VBox(Expanded(a), Expanded(b), Expanded(c))
	flex.Layout(NewRect(0, 0, 10, 10))

	total := a.bounds.Height + b.bounds.Height + c.bounds.Height
	if total != 10 {
		t.Errorf("heights sum to %d, want 10", total)
	}
}

func TestMeasureSumsMainAxis(t *testing.T) {
	a := &stubWidget{size: Size{Width: 5, Height: 2}}
	b := &stubWidget{size: Size{Width: 8, Height: 3}}

	flex := VBox(Fixed(a), Fixed(b))
	size := flex.Measure(Loose(20, 20))

	if size.Height != 5 {
		t.Errorf("height = %d, want 5", size.Height)
	}
	if size.Width != 8 {
		t.Errorf("width = %d, want 8 (max of children)", size.Width)
	}
}
