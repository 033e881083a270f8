package mythology

// Archetype classifies a narrative by the archetypal role the service
// saw in it. The set is closed; values arriving from the service that
// are not recognized fall back to ArchetypeUnknown.
type Archetype string

const (
	ArchetypeUnknown   Archetype = ""
	ArchetypeSeeker    Archetype = "Seeker"
	ArchetypeMentor    Archetype = "Mentor"
	ArchetypeHero      Archetype = "Hero"
	ArchetypeShadow    Archetype = "Shadow"
	ArchetypeTrickster Archetype = "Trickster"
	ArchetypeInnocent  Archetype = "Innocent"
	ArchetypeSage      Archetype = "Sage"
	ArchetypeExplorer  Archetype = "Explorer"
	ArchetypeCreator   Archetype = "Creator"
	ArchetypeCaregiver Archetype = "Caregiver"
)

// Archetypes lists the known values in the service's canonical order.
var Archetypes = []Archetype{
	ArchetypeSeeker, ArchetypeMentor, ArchetypeHero, ArchetypeShadow,
	ArchetypeTrickster, ArchetypeInnocent, ArchetypeSage,
	ArchetypeExplorer, ArchetypeCreator, ArchetypeCaregiver,
}

// ParseArchetype maps a wire value to a known archetype, or
// ArchetypeUnknown when the value is not recognized.
func ParseArchetype(s string) Archetype {
	for _, a := range Archetypes {
		if string(a) == s {
			return a
		}
	}
	return ArchetypeUnknown
}

// Known reports whether a is one of the closed set.
func (a Archetype) Known() bool {
	return ParseArchetype(string(a)) != ArchetypeUnknown
}

// String returns the display name, or a placeholder for unknown values.
func (a Archetype) String() string {
	if a == ArchetypeUnknown {
		return "Unclassified"
	}
	return string(a)
}
