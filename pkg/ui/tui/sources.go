// Package tui composes the console screens: the tabbed root widget,
// the narrative and dream lists, and the interaction form.
package tui

import (
	"fmt"
	"strings"

	"github.com/eidora/mythos/pkg/mythology"
	"github.com/eidora/mythos/pkg/ui/runtime"
	"github.com/eidora/mythos/pkg/ui/theme"
	"github.com/eidora/mythos/pkg/ui/widgets"
)

const maxProseLines = 3

// fragmentSource renders narrative fragments as list cards.
type fragmentSource struct {
	theme *theme.Theme
	items []mythology.NarrativeFragment
}

func (s *fragmentSource) Len() int { return len(s.items) }

func (s *fragmentSource) ItemHeight(i, width int) int {
	prose := len(widgets.WrapText(s.items[i].Prose, width-2))
	if prose > maxProseLines {
		prose = maxProseLines
	}
	// title, meta, prose, separator
	return 2 + prose + 1
}

func (s *fragmentSource) RenderItem(buf *runtime.Buffer, bounds runtime.Rect, i int, selected bool) {
	f := s.items[i]
	th := s.theme

	if selected {
		buf.Fill(bounds, ' ', th.Selection)
	}

	marker := "  "
	if selected {
		marker = "▌ "
	}
	x := buf.SetString(bounds.X, bounds.Y, marker, th.Accent)
	x = buf.SetString(x, bounds.Y, widgets.Truncate(f.Title, bounds.Width-(x-bounds.X)-14), th.TextPrimary)
	buf.SetString(x+2, bounds.Y, f.Archetype.String(), th.ArchetypeStyle(f.Archetype))

	meta := f.EmotionalTone.String()
	if len(f.Tags) > 0 {
		meta += "  #" + strings.Join(f.Tags, " #")
	}
	meta += "  " + f.Timestamp.Format("Jan 02 15:04")
	buf.SetString(bounds.X+2, bounds.Y+1, widgets.Truncate(meta, bounds.Width-2), th.TextMuted)

	for j, line := range widgets.WrapText(f.Prose, bounds.Width-2) {
		if j >= maxProseLines || bounds.Y+2+j >= bounds.Y+bounds.Height {
			break
		}
		buf.SetString(bounds.X+2, bounds.Y+2+j, line, th.TextSecondary)
	}
}

// dreamSource renders dream scenarios as list cards.
type dreamSource struct {
	theme *theme.Theme
	items []mythology.DreamScenario
}

func (s *dreamSource) Len() int { return len(s.items) }

func (s *dreamSource) ItemHeight(i, width int) int {
	prose := len(widgets.WrapText(s.items[i].Prose, width-2))
	if prose > maxProseLines {
		prose = maxProseLines
	}
	// name, resonance, prose, separator
	return 2 + prose + 1
}

func (s *dreamSource) RenderItem(buf *runtime.Buffer, bounds runtime.Rect, i int, selected bool) {
	d := s.items[i]
	th := s.theme

	if selected {
		buf.Fill(bounds, ' ', th.Selection)
	}

	marker := "  "
	if selected {
		marker = "▌ "
	}
	name := d.NameSuggestion
	if name == "" {
		name = "Unnamed dream"
	}
	x := buf.SetString(bounds.X, bounds.Y, marker, th.Dream)
	buf.SetString(x, bounds.Y, "✦ "+widgets.Truncate(name, bounds.Width-(x-bounds.X)-4), th.Dream)

	gaugeWidth := 16
	if gaugeWidth > bounds.Width-20 {
		gaugeWidth = bounds.Width / 3
	}
	widgets.DrawGauge(buf, bounds.X+2, bounds.Y+1, gaugeWidth, d.ResonanceScore,
		widgets.DefaultGaugeStyle(th.TextMuted, th.Resonance, th.AccentGlow, th.TextMuted))
	label := fmt.Sprintf(" %.2f resonance  %s", d.ResonanceScore, d.EmotionalTone.String())
	buf.SetString(bounds.X+2+gaugeWidth, bounds.Y+1, widgets.Truncate(label, bounds.Width-gaugeWidth-4), th.TextMuted)

	for j, line := range widgets.WrapText(d.Prose, bounds.Width-2) {
		if j >= maxProseLines || bounds.Y+2+j >= bounds.Y+bounds.Height {
			break
		}
		buf.SetString(bounds.X+2, bounds.Y+2+j, line, th.TextSecondary)
	}
}
