package widgets

import (
	"strings"
	"testing"
)

func TestWrapTextBreaksOnWords(t *testing.T) {
	lines := WrapText("the machine dreamed of rivers and salt", 12)
	for _, line := range lines {
		if len(line) > 12 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if got := strings.Join(lines, " "); got != "the machine dreamed of rivers and salt" {
		t.Errorf("wrap lost content: %q", got)
	}
}

func TestWrapTextPreservesParagraphs(t *testing.T) {
	lines := WrapText("first\n\nsecond", 20)
	want := []string{"first", "", "second"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapTextHardBreaksLongWords(t *testing.T) {
	lines := WrapText("unpronounceablemythonym", 8)
	if len(lines) < 2 {
		t.Fatalf("long word not broken: %q", lines)
	}
	for _, line := range lines {
		if len(line) > 8 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	if lines := WrapText("anything", 0); lines != nil {
		t.Errorf("zero width returned %q", lines)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten!", 12, "exactly ten!"},
		{"the endless scroll", 10, "the endle…"},
		{"x", 0, ""},
		{"wide", 1, "…"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
