package widgets

import (
	"fmt"
	"strings"
	"testing"

	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/runtime"
	"github.com/eidora/mythos/pkg/ui/terminal"
)

// rowSource renders "item N" one row per item.
type rowSource struct {
	n int
}

func (s *rowSource) Len() int                { return s.n }
func (s *rowSource) ItemHeight(i, w int) int { return 1 }

func (s *rowSource) RenderItem(buf *runtime.Buffer, bounds runtime.Rect, i int, selected bool) {
	prefix := "  "
	if selected {
		prefix = "> "
	}
	buf.SetString(bounds.X, bounds.Y, fmt.Sprintf("%sitem %d", prefix, i), backend.DefaultStyle())
}

func listKey(l *List, key terminal.Key) runtime.HandleResult {
	return l.HandleMessage(runtime.KeyMsg{Key: key})
}

func renderList(l *List, w, h int) []string {
	buf := runtime.NewBuffer(w, h)
	l.Layout(runtime.NewRect(0, 0, w, h))
	l.Render(runtime.RenderContext{Buffer: buf})
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			sb.WriteRune(buf.Get(x, y).Rune)
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

func TestListCursorMovement(t *testing.T) {
	l := NewList(&rowSource{n: 5})
	l.Focus()

	if l.Selected() != 0 {
		t.Fatalf("initial selection = %d", l.Selected())
	}
	listKey(l, terminal.KeyDown)
	listKey(l, terminal.KeyDown)
	if l.Selected() != 2 {
		t.Errorf("after two Down = %d", l.Selected())
	}
	listKey(l, terminal.KeyUp)
	if l.Selected() != 1 {
		t.Errorf("after Up = %d", l.Selected())
	}
	listKey(l, terminal.KeyEnd)
	if l.Selected() != 4 {
		t.Errorf("after End = %d", l.Selected())
	}
	listKey(l, terminal.KeyDown) // clamped at the last item
	if l.Selected() != 4 {
		t.Errorf("Down past end = %d", l.Selected())
	}
	listKey(l, terminal.KeyHome)
	if l.Selected() != 0 {
		t.Errorf("after Home = %d", l.Selected())
	}
}

func TestListIgnoresKeysWhenBlurred(t *testing.T) {
	l := NewList(&rowSource{n: 3})

	result := listKey(l, terminal.KeyDown)
	if result.Handled {
		t.Error("blurred list consumed a key")
	}
	if l.Selected() != 0 {
		t.Errorf("selection moved while blurred: %d", l.Selected())
	}
}

func TestListScrollsSelectionIntoView(t *testing.T) {
	l := NewList(&rowSource{n: 20})
	l.Focus()
	listKey(l, terminal.KeyEnd)

	lines := renderList(l, 20, 5)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "> item 19") {
		t.Fatalf("selected item not visible:\n%s", joined)
	}
	if strings.Contains(joined, "item 0") {
		t.Errorf("top of list still visible after scrolling:\n%s", joined)
	}
}

func TestListScrollbarOnlyWhenOverflowing(t *testing.T) {
	short := NewList(&rowSource{n: 3})
	short.Focus()
	if joined := strings.Join(renderList(short, 20, 5), "\n"); strings.ContainsRune(joined, '│') {
		t.Errorf("scrollbar drawn with everything visible:\n%s", joined)
	}

	long := NewList(&rowSource{n: 20})
	long.Focus()
	listKey(long, terminal.KeyEnd)
	joined := strings.Join(renderList(long, 20, 5), "\n")
	if !strings.ContainsRune(joined, '█') {
		t.Errorf("scrollbar thumb missing on overflow:\n%s", joined)
	}
}

func TestListSelectCallback(t *testing.T) {
	l := NewList(&rowSource{n: 4})
	l.Focus()
	var picked []int
	l.OnSelect = func(i int) { picked = append(picked, i) }

	listKey(l, terminal.KeyDown)
	listKey(l, terminal.KeyEnter)
	if len(picked) != 1 || picked[0] != 1 {
		t.Errorf("picked = %v", picked)
	}
}

func TestListWheelScrollInsideBounds(t *testing.T) {
	l := NewList(&rowSource{n: 5})
	l.Focus()
	l.Layout(runtime.NewRect(0, 0, 20, 5))

	l.HandleMessage(runtime.MouseMsg{X: 5, Y: 2, Button: terminal.MouseWheelDown})
	if l.Selected() != 1 {
		t.Errorf("wheel inside bounds = %d", l.Selected())
	}

	result := l.HandleMessage(runtime.MouseMsg{X: 50, Y: 50, Button: terminal.MouseWheelDown})
	if result.Handled {
		t.Error("wheel outside bounds was consumed")
	}
}
