package tui

import (
	"github.com/eidora/mythos/pkg/mythology"
	"github.com/eidora/mythos/pkg/ui/runtime"
	"github.com/eidora/mythos/pkg/ui/terminal"
	"github.com/eidora/mythos/pkg/ui/theme"
	"github.com/eidora/mythos/pkg/ui/widgets"
)

// createForm is the Create tab: the interaction draft editor. Focus
// cycles interaction → response → outcome → submit. The submit row is
// disabled until both required fields are filled.
type createForm struct {
	widgets.Base
	theme *theme.Theme

	interaction *widgets.Input
	response    *widgets.Input
	outcome     mythology.Outcome
	focus       int // 0..3

	// OnEdit propagates field edits to the store's draft.
	OnEdit func(edit func(*mythology.InteractionDraft))

	// OnSubmit fires when the enabled submit row is activated.
	OnSubmit func()
}

const (
	focusInteraction = iota
	focusResponse
	focusOutcome
	focusSubmit
	focusCount
)

func newCreateForm(th *theme.Theme) *createForm {
	f := &createForm{
		theme:       th,
		interaction: widgets.NewInput("You     "),
		response:    widgets.NewInput("Machine "),
		outcome:     mythology.OutcomeSuccess,
	}
	f.interaction.SetPlaceholder("what you said or did")
	f.response.SetPlaceholder("how the machine answered")
	for _, in := range []*widgets.Input{f.interaction, f.response} {
		in.SetStyles(th.TextSecondary, th.TextPrimary, th.TextMuted, th.AccentGlow)
	}
	f.interaction.OnChange = func(v string) {
		if f.OnEdit != nil {
			f.OnEdit(func(d *mythology.InteractionDraft) { d.UserInteraction = v })
		}
	}
	f.response.OnChange = func(v string) {
		if f.OnEdit != nil {
			f.OnEdit(func(d *mythology.InteractionDraft) { d.AIResponse = v })
		}
	}
	f.interaction.Focus()
	return f
}

// syncDraft refreshes the form from the authoritative draft. Called
// after every snapshot so a store-side reset clears the fields.
func (f *createForm) syncDraft(d mythology.InteractionDraft) {
	if f.interaction.Value() != d.UserInteraction {
		f.interaction.SetValue(d.UserInteraction)
	}
	if f.response.Value() != d.AIResponse {
		f.response.SetValue(d.AIResponse)
	}
	f.outcome = d.Outcome
}

func (f *createForm) complete() bool {
	return f.interaction.Value() != "" && f.response.Value() != ""
}

func (f *createForm) setFocus(i int) {
	f.focus = (i + focusCount) % focusCount
	f.interaction.Blur()
	f.response.Blur()
	switch f.focus {
	case focusInteraction:
		f.interaction.Focus()
	case focusResponse:
		f.response.Focus()
	}
}

func (f *createForm) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.MaxSize()
}

func (f *createForm) Layout(bounds runtime.Rect) {
	f.Base.Layout(bounds)
	inner := bounds.Inset(1, 2, 0, 2)
	f.interaction.Layout(runtime.NewRect(inner.X, inner.Y+1, inner.Width, 1))
	f.response.Layout(runtime.NewRect(inner.X, inner.Y+3, inner.Width, 1))
}

func (f *createForm) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if key, ok := msg.(runtime.KeyMsg); ok {
		switch key.Key {
		case terminal.KeyTab:
			f.setFocus(f.focus + 1)
			return runtime.Handled()
		case terminal.KeyBacktab:
			f.setFocus(f.focus - 1)
			return runtime.Handled()
		case terminal.KeyEnter:
			switch f.focus {
			case focusInteraction, focusResponse:
				f.setFocus(f.focus + 1)
			case focusOutcome:
				f.cycleOutcome()
			case focusSubmit:
				if f.complete() && f.OnSubmit != nil {
					f.OnSubmit()
				}
			}
			return runtime.Handled()
		}

		if f.focus == focusOutcome && key.Key == terminal.KeyRune && key.Rune == ' ' {
			f.cycleOutcome()
			return runtime.Handled()
		}
	}

	if result := f.interaction.HandleMessage(msg); result.Handled {
		return result
	}
	return f.response.HandleMessage(msg)
}

func (f *createForm) cycleOutcome() {
	f.outcome = f.outcome.Next()
	if f.OnEdit != nil {
		next := f.outcome
		f.OnEdit(func(d *mythology.InteractionDraft) { d.Outcome = next })
	}
}

func (f *createForm) Render(ctx runtime.RenderContext) {
	bounds := f.Bounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	th := f.theme
	buf := ctx.Buffer
	inner := bounds.Inset(1, 2, 0, 2)

	buf.SetString(inner.X, inner.Y, "Record an interaction", th.AccentGlow)
	f.interaction.Render(ctx)
	f.response.Render(ctx)

	outcomeStyle := th.TextSecondary
	if f.focus == focusOutcome {
		outcomeStyle = th.AccentGlow
	}
	x := buf.SetString(inner.X, inner.Y+5, "Outcome ", th.TextSecondary)
	buf.SetString(x, inner.Y+5, "◂ "+string(f.outcome)+" ▸", outcomeStyle)

	label := "[ Weave narrative ]"
	submitStyle := th.TextMuted
	switch {
	case !f.complete():
		label = "[ Weave narrative ]  (fill both fields first)"
	case f.focus == focusSubmit:
		submitStyle = th.AccentGlow.Reverse(true)
	default:
		submitStyle = th.Accent
	}
	buf.SetString(inner.X, inner.Y+7, label, submitStyle)

	hint := "Tab fields · Enter next/submit · Space cycles outcome"
	if inner.Y+9 < bounds.Y+bounds.Height {
		buf.SetString(inner.X, inner.Y+9, widgets.Truncate(hint, inner.Width), th.TextMuted)
	}
}
