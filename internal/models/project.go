package models

import "time"

// Project represents a showcased portfolio project
type Project struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Technologies  []string   `json:"technologies"`
	RepositoryURL string     `json:"repository_url"`
	LiveURL       string     `json:"live_url"`
	Stars         int        `json:"stars"`
	Forks         int        `json:"forks"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"`
}

// Key returns the identifier used to address the project
func (p Project) Key() string {
	return p.Title
}
