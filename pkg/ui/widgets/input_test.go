package widgets

import (
	"testing"

	"github.com/eidora/mythos/pkg/ui/runtime"
	"github.com/eidora/mythos/pkg/ui/terminal"
)

func typeString(in *Input, s string) {
	for _, r := range s {
		in.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: r})
	}
}

func press(in *Input, key terminal.Key) runtime.HandleResult {
	return in.HandleMessage(runtime.KeyMsg{Key: key})
}

func TestInputIgnoresKeysWhileBlurred(t *testing.T) {
	in := NewInput("field")
	typeString(in, "ghost")
	if got := in.Value(); got != "" {
		t.Errorf("blurred input accepted text: %q", got)
	}
}

func TestInputTypingAndBackspace(t *testing.T) {
	in := NewInput("field")
	in.Focus()

	typeString(in, "mythos")
	if got := in.Value(); got != "mythos" {
		t.Errorf("value = %q", got)
	}

	press(in, terminal.KeyBackspace)
	if got := in.Value(); got != "mytho" {
		t.Errorf("after backspace = %q", got)
	}
}

func TestInputCursorEditing(t *testing.T) {
	in := NewInput("field")
	in.Focus()
	typeString(in, "abc")

	press(in, terminal.KeyHome)
	typeString(in, "x")
	if got := in.Value(); got != "xabc" {
		t.Errorf("insert at home = %q", got)
	}

	press(in, terminal.KeyEnd)
	press(in, terminal.KeyLeft)
	press(in, terminal.KeyBackspace)
	if got := in.Value(); got != "xac" {
		t.Errorf("edit mid-string = %q", got)
	}

	press(in, terminal.KeyCtrlU)
	if got := in.Value(); got != "" {
		t.Errorf("after clear = %q", got)
	}
}

func TestInputOnChangeFires(t *testing.T) {
	in := NewInput("field")
	in.Focus()

	var last string
	in.OnChange = func(v string) { last = v }

	typeString(in, "hi")
	if last != "hi" {
		t.Errorf("OnChange saw %q", last)
	}

	press(in, terminal.KeyBackspace)
	if last != "h" {
		t.Errorf("OnChange after backspace saw %q", last)
	}
}

func TestInputPasteStripsNewlines(t *testing.T) {
	in := NewInput("field")
	in.Focus()

	in.HandleMessage(runtime.PasteMsg{Text: "line one\nline two"})
	if got := in.Value(); got != "line one line two" {
		t.Errorf("pasted value = %q", got)
	}
}

func TestInputUnhandledKeysPassThrough(t *testing.T) {
	in := NewInput("field")
	in.Focus()

	if result := press(in, terminal.KeyTab); result.Handled {
		t.Error("Tab should bubble up for focus handling")
	}
	if result := press(in, terminal.KeyEnter); result.Handled {
		t.Error("Enter should bubble up for form handling")
	}
}
