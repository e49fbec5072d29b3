package model

// CoachMeta describes a coach persona. Specialty and Personality fall
// back to fixed defaults when the provider has no value for them.
type CoachMeta struct {
	ID          int64
	Name        string
	Specialty   string
	Personality string
}

const (
	DefaultCoachSpecialty   = "general"
	DefaultCoachPersonality = "supportive"
)

// WithDefaults fills absent specialty/personality fields.
func (c CoachMeta) WithDefaults() CoachMeta {
	if c.Specialty == "" {
		c.Specialty = DefaultCoachSpecialty
	}
	if c.Personality == "" {
		c.Personality = DefaultCoachPersonality
	}
	return c
}
