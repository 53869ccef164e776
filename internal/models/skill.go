package models

import "sagar88.com.np/internal/icons"

// Skill is one cell of the technologies grid
type Skill struct {
	Icon  icons.Tag `json:"icon"`
	Label string    `json:"label"`
}

// Key returns the identifier used to address the skill
func (s Skill) Key() string {
	return s.Label
}
