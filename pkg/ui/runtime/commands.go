package runtime

// Command is an intent emitted by a widget. Commands bubble up to the
// app for handling.
type Command interface {
	isCommand()
}

// Quit signals the application should exit.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh requests a redraw.
type Refresh struct{}

func (Refresh) isCommand() {}

// Submit indicates text was submitted from an input widget.
type Submit struct {
	Text string
}

func (Submit) isCommand() {}

// Cancel indicates an operation was abandoned, usually via Escape.
type Cancel struct{}

func (Cancel) isCommand() {}

// FocusNext requests focus move to the next focusable widget.
type FocusNext struct{}

func (FocusNext) isCommand() {}

// FocusPrev requests focus move to the previous focusable widget.
type FocusPrev struct{}

func (FocusPrev) isCommand() {}
