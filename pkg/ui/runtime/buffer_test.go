package runtime

import (
	"testing"

	"github.com/eidora/mythos/pkg/ui/backend"
)

func TestSetStringAdvancesByDisplayWidth(t *testing.T) {
	buf := NewBuffer(10, 2)
	style := backend.DefaultStyle()

	end := buf.SetString(0, 0, "ab", style)
	if end != 2 {
		t.Errorf("end = %d, want 2", end)
	}
	if got := buf.Get(1, 0).Rune; got != 'b' {
		t.Errorf("cell (1,0) = %q", got)
	}

	// Wide rune occupies two cells.
	end = buf.SetString(0, 1, "名x", style)
	if end != 3 {
		t.Errorf("end after wide rune = %d, want 3", end)
	}
	if got := buf.Get(0, 1).Rune; got != '名' {
		t.Errorf("cell (0,1) = %q", got)
	}
	if got := buf.Get(2, 1).Rune; got != 'x' {
		t.Errorf("cell (2,1) = %q", got)
	}
}

func TestSetStringClipsAtBufferEdge(t *testing.T) {
	buf := NewBuffer(4, 1)
	buf.SetString(0, 0, "abcdef", backend.DefaultStyle())
	if got := buf.Get(3, 0).Rune; got != 'd' {
		t.Errorf("last cell = %q", got)
	}
	// Out-of-bounds read is a blank, not a panic.
	if got := buf.Get(4, 0).Rune; got != ' ' {
		t.Errorf("out of bounds = %q", got)
	}
}

func TestFillAndClear(t *testing.T) {
	buf := NewBuffer(3, 3)
	buf.Fill(NewRect(1, 1, 2, 2), '#', backend.DefaultStyle())

	if got := buf.Get(0, 0).Rune; got != ' ' {
		t.Errorf("outside fill = %q", got)
	}
	if got := buf.Get(1, 1).Rune; got != '#' {
		t.Errorf("inside fill = %q", got)
	}
	if got := buf.Get(2, 2).Rune; got != '#' {
		t.Errorf("fill corner = %q", got)
	}

	buf.Clear()
	if got := buf.Get(1, 1).Rune; got != ' ' {
		t.Errorf("after clear = %q", got)
	}
}

func TestDrawBox(t *testing.T) {
	buf := NewBuffer(5, 4)
	buf.DrawBox(NewRect(0, 0, 5, 4), backend.DefaultStyle())

	corners := map[[2]int]rune{
		{0, 0}: '┌', {4, 0}: '┐',
		{0, 3}: '└', {4, 3}: '┘',
	}
	for pos, want := range corners {
		if got := buf.Get(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner (%d,%d) = %q, want %q", pos[0], pos[1], got, want)
		}
	}
	if got := buf.Get(2, 0).Rune; got != '─' {
		t.Errorf("top edge = %q", got)
	}
	if got := buf.Get(0, 1).Rune; got != '│' {
		t.Errorf("left edge = %q", got)
	}
	if got := buf.Get(2, 1).Rune; got != ' ' {
		t.Errorf("interior = %q", got)
	}
}
