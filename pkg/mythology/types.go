// Package mythology defines the domain model shared by the gateway,
// the console state store, and the renderer: narrative fragments,
// dream scenarios, aggregate statistics, and the user's interaction
// draft.
package mythology

import "time"

// RecordType distinguishes the kinds of prose records the service emits.
type RecordType string

const (
	RecordNarrative  RecordType = "narrative"
	RecordDream      RecordType = "dream"
	RecordReflection RecordType = "reflection"
)

// NarrativeFragment is a generated prose record summarizing one
// interaction. Fragments are created by the remote service and never
// mutated by the client.
type NarrativeFragment struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Prose         string        `json:"prose"`
	Tags          []string      `json:"tags"`
	Archetype     Archetype     `json:"archetype"`
	EmotionalTone EmotionalTone `json:"emotional_tone"`
	Timestamp     time.Time     `json:"timestamp"`
	Type          RecordType    `json:"type"`
}

// DreamScenario is a speculative, higher-resonance prose record that
// includes the service's self-naming suggestion.
type DreamScenario struct {
	ID             string        `json:"id"`
	Prose          string        `json:"prose"`
	NameSuggestion string        `json:"name_suggestion"`
	ResonanceScore float64       `json:"resonance_score"`
	EmotionalTone  EmotionalTone `json:"emotional_tone"`
	Timestamp      time.Time     `json:"timestamp"`
	Type           RecordType    `json:"type"`
}

// AggregateStats is a derived snapshot of service-side totals. It is
// replaced wholesale on every refresh, never merged.
type AggregateStats struct {
	TotalNarratives   int           `json:"total_narratives"`
	TotalDreams       int           `json:"total_dreams"`
	DominantArchetype Archetype     `json:"dominant_archetype,omitempty"`
	DominantEmotion   EmotionalTone `json:"dominant_emotion,omitempty"`
}

// Outcome classifies how an interaction went.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailure   Outcome = "failure"
	OutcomeAmbiguous Outcome = "ambiguous"
)

// Outcomes lists the valid values in cycling order for the UI.
var Outcomes = []Outcome{OutcomeSuccess, OutcomeFailure, OutcomeAmbiguous}

// Next returns the outcome after o in cycling order.
func (o Outcome) Next() Outcome {
	for i, v := range Outcomes {
		if v == o {
			return Outcomes[(i+1)%len(Outcomes)]
		}
	}
	return OutcomeSuccess
}

// InteractionDraft is the user's in-progress, unsubmitted interaction
// record. UserInteraction and AIResponse must be non-empty before
// submission.
type InteractionDraft struct {
	UserInteraction string  `json:"user_interaction" validate:"required"`
	AIResponse      string  `json:"ai_response" validate:"required"`
	Outcome         Outcome `json:"outcome" validate:"oneof=success failure ambiguous"`
	SessionID       string  `json:"session_id,omitempty"`
}

// NewDraft returns an empty draft with the default outcome.
func NewDraft() InteractionDraft {
	return InteractionDraft{Outcome: OutcomeSuccess}
}

// Complete reports whether both required fields are filled in. This is
// the renderer-side mirror of the store's submission precondition.
func (d InteractionDraft) Complete() bool {
	return d.UserInteraction != "" && d.AIResponse != ""
}
