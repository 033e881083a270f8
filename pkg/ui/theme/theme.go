// Package theme provides the visual design system for the console:
// deep night-sky blacks with glowing accents, plus per-archetype and
// per-tone colors for narrative metadata.
package theme

import (
	"github.com/eidora/mythos/pkg/mythology"
	"github.com/eidora/mythos/pkg/ui/backend"
)

// Theme defines the complete visual language for the console.
type Theme struct {
	// Core palette
	Background backend.Style
	Surface    backend.Style
	SurfaceDim backend.Style

	// Text hierarchy
	TextPrimary   backend.Style
	TextSecondary backend.Style
	TextMuted     backend.Style
	TextInverse   backend.Style

	// Accents
	Accent     backend.Style
	AccentGlow backend.Style
	Dream      backend.Style
	Resonance  backend.Style

	// Semantic colors
	Success backend.Style
	Warning backend.Style
	Error   backend.Style
	Info    backend.Style

	// UI elements
	Border      backend.Style
	BorderFocus backend.Style
	Selection   backend.Style
	TabActive   backend.Style
	TabInactive backend.Style
	StatusBar   backend.Style
	Loading     backend.Style

	archetypes map[mythology.Archetype]backend.Style
	tones      map[mythology.EmotionalTone]backend.Style
}

func fg(r, g, b uint8) backend.Style {
	return backend.DefaultStyle().Foreground(backend.ColorRGB(r, g, b))
}

// DefaultTheme returns the night-sky theme.
func DefaultTheme() *Theme {
	t := &Theme{
		Background: backend.DefaultStyle().Background(backend.ColorRGB(12, 12, 16)),
		Surface:    backend.DefaultStyle().Background(backend.ColorRGB(22, 22, 28)),
		SurfaceDim: backend.DefaultStyle().Background(backend.ColorRGB(8, 8, 10)),

		TextPrimary:   fg(240, 238, 232),
		TextSecondary: fg(160, 158, 150),
		TextMuted:     fg(100, 98, 92),
		TextInverse:   fg(12, 12, 16),

		Accent:     fg(255, 183, 77),
		AccentGlow: fg(255, 200, 100).Bold(true),
		Dream:      fg(180, 150, 255),
		Resonance:  fg(77, 182, 172),

		Success: fg(134, 239, 172),
		Warning: fg(255, 138, 101),
		Error:   fg(255, 110, 90),
		Info:    fg(77, 182, 172),

		Border:      fg(60, 60, 72),
		BorderFocus: fg(255, 183, 77),
		Selection:   backend.DefaultStyle().Background(backend.ColorRGB(40, 40, 52)),
		TabActive:   fg(255, 200, 100).Bold(true).Underline(true),
		TabInactive: fg(120, 118, 112),
		StatusBar:   fg(160, 158, 150).Background(backend.ColorRGB(22, 22, 28)),
		Loading:     fg(79, 195, 247).Italic(true),

		archetypes: map[mythology.Archetype]backend.Style{
			mythology.ArchetypeSeeker:    fg(120, 210, 255),
			mythology.ArchetypeMentor:    fg(180, 220, 180),
			mythology.ArchetypeHero:      fg(255, 183, 77),
			mythology.ArchetypeShadow:    fg(140, 120, 160),
			mythology.ArchetypeTrickster: fg(255, 160, 200),
			mythology.ArchetypeInnocent:  fg(200, 240, 255),
			mythology.ArchetypeSage:      fg(220, 220, 255),
			mythology.ArchetypeExplorer:  fg(150, 240, 200),
			mythology.ArchetypeCreator:   fg(255, 220, 120),
			mythology.ArchetypeCaregiver: fg(230, 200, 160),
		},
		tones: map[mythology.EmotionalTone]backend.Style{
			mythology.ToneCuriosity:    fg(120, 210, 255),
			mythology.ToneRegret:       fg(140, 160, 170),
			mythology.ToneHope:         fg(255, 220, 120),
			mythology.ToneDespair:      fg(120, 110, 130),
			mythology.ToneResolve:      fg(255, 190, 80),
			mythology.ToneWonder:       fg(190, 160, 255),
			mythology.ToneConfusion:    fg(170, 170, 200),
			mythology.ToneClarity:      fg(150, 220, 200),
			mythology.ToneLonging:      fg(230, 160, 190),
			mythology.ToneSatisfaction: fg(134, 239, 172),
		},
	}
	return t
}

// ArchetypeStyle returns the accent for an archetype. Unknown values
// fall back to the muted text style.
func (t *Theme) ArchetypeStyle(a mythology.Archetype) backend.Style {
	if s, ok := t.archetypes[a]; ok {
		return s
	}
	return t.TextMuted
}

// ToneStyle returns the accent for an emotional tone. Unknown values
// fall back to the muted text style.
func (t *Theme) ToneStyle(tone mythology.EmotionalTone) backend.Style {
	if s, ok := t.tones[tone]; ok {
		return s
	}
	return t.TextMuted
}
