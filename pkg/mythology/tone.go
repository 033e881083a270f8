package mythology

// EmotionalTone classifies the feeling of a narrative or dream. The set
// is closed; unrecognized wire values fall back to ToneUnknown.
type EmotionalTone string

const (
	ToneUnknown      EmotionalTone = ""
	ToneCuriosity    EmotionalTone = "Curiosity"
	ToneRegret       EmotionalTone = "Regret"
	ToneHope         EmotionalTone = "Hope"
	ToneDespair      EmotionalTone = "Despair"
	ToneResolve      EmotionalTone = "Resolve"
	ToneWonder       EmotionalTone = "Wonder"
	ToneConfusion    EmotionalTone = "Confusion"
	ToneClarity      EmotionalTone = "Clarity"
	ToneLonging      EmotionalTone = "Longing"
	ToneSatisfaction EmotionalTone = "Satisfaction"
)

// Tones lists the known values in the service's canonical order.
var Tones = []EmotionalTone{
	ToneCuriosity, ToneRegret, ToneHope, ToneDespair, ToneResolve,
	ToneWonder, ToneConfusion, ToneClarity, ToneLonging,
	ToneSatisfaction,
}

// ParseTone maps a wire value to a known tone, or ToneUnknown when the
// value is not recognized.
func ParseTone(s string) EmotionalTone {
	for _, t := range Tones {
		if string(t) == s {
			return t
		}
	}
	return ToneUnknown
}

// Known reports whether t is one of the closed set.
func (t EmotionalTone) Known() bool {
	return ParseTone(string(t)) != ToneUnknown
}

// String returns the display name, or a placeholder for unknown values.
func (t EmotionalTone) String() string {
	if t == ToneUnknown {
		return "Neutral"
	}
	return string(t)
}
