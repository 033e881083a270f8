package widgets

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/runtime"
)

// TabBar renders a one-row list of tab labels with the active one
// highlighted. Selection is driven from outside; the bar itself does
// not consume input.
type TabBar struct {
	Base
	labels   []string
	active   int
	activeSt backend.Style
	idleSt   backend.Style
	fill     backend.Style
}

// NewTabBar creates a tab bar over the given labels.
func NewTabBar(labels ...string) *TabBar {
	return &TabBar{
		labels:   labels,
		activeSt: backend.DefaultStyle().Bold(true),
		idleSt:   backend.DefaultStyle(),
		fill:     backend.DefaultStyle(),
	}
}

// SetStyles sets the active, inactive, and background styles.
func (t *TabBar) SetStyles(active, idle, fill backend.Style) {
	t.activeSt = active
	t.idleSt = idle
	t.fill = fill
}

// SetActive selects a tab index. Out-of-range values are ignored.
func (t *TabBar) SetActive(i int) {
	if i >= 0 && i < len(t.labels) {
		t.active = i
	}
}

// Active returns the selected tab index.
func (t *TabBar) Active() int {
	return t.active
}

func (t *TabBar) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: 1})
}

func (t *TabBar) Render(ctx runtime.RenderContext) {
	bounds := t.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	fillRow(ctx.Buffer, bounds, bounds.Y, t.fill)

	x := bounds.X + 1
	for i, label := range t.labels {
		entry := fmt.Sprintf(" %d %s ", i+1, label)
		style := t.idleSt
		if i == t.active {
			style = t.activeSt
		}
		if x+runewidth.StringWidth(entry) > bounds.X+bounds.Width {
			break
		}
		x = ctx.Buffer.SetString(x, bounds.Y, entry, style)
		x++
	}
}
