package session

import (
	"github.com/abhisek/mentorai/internal/config"
	"github.com/abhisek/mentorai/internal/validate"
)

// Profile describes the learner. It shapes generation prompts.
type Profile struct {
	Role       string `json:"role" validate:"required,catalog=profile"`
	Discipline string `json:"discipline" validate:"required,catalog=discipline"`
	Level      string `json:"level" validate:"required,catalog=level"`
}

// Validate checks every field against its catalog.
func (p Profile) Validate() error {
	return validate.Struct(p)
}

// Canonical rewrites each field to its catalog spelling. Unknown values
// are left alone for Validate to report.
func (p Profile) Canonical() Profile {
	if v, ok := config.Match("profile", p.Role); ok {
		p.Role = v
	}
	if v, ok := config.Match("discipline", p.Discipline); ok {
		p.Discipline = v
	}
	if v, ok := config.Match("level", p.Level); ok {
		p.Level = v
	}
	return p
}

// DefaultProfile is used until the learner saves one.
func DefaultProfile() Profile {
	return Profile{
		Role:       config.Profiles[0],
		Discipline: config.Disciplines[0],
		Level:      config.Levels[0],
	}
}
