package content

import "time"

// document mirrors the content file layout. Fields stay as raw strings so
// that one bad record can be rejected without failing the whole decode.
type document struct {
	Profile  profileDoc    `yaml:"profile" json:"profile"`
	Projects []projectDoc  `yaml:"projects" json:"projects"`
	Skills   []skillDoc    `yaml:"skills" json:"skills"`
	Timeline []timelineDoc `yaml:"timeline" json:"timeline"`
}

type profileDoc struct {
	Name   string            `yaml:"name" json:"name" validate:"required"`
	Handle string            `yaml:"handle" json:"handle" validate:"required"`
	Bio    []string          `yaml:"bio" json:"bio" validate:"min=1,dive,required"`
	Avatar avatarDoc         `yaml:"avatar" json:"avatar" validate:"required"`
	Social map[string]string `yaml:"social" json:"social" validate:"min=1,dive,keys,required,endkeys,required"`
}

type avatarDoc struct {
	URL string `yaml:"url" json:"url" validate:"required"`
	Alt string `yaml:"alt" json:"alt"`
}

type projectDoc struct {
	Title         string     `yaml:"title" json:"title" validate:"required"`
	Description   string     `yaml:"description" json:"description" validate:"required"`
	Technologies  []string   `yaml:"technologies" json:"technologies" validate:"dive,required"`
	RepositoryURL string     `yaml:"repository_url" json:"repository_url" validate:"required"`
	LiveURL       string     `yaml:"live_url" json:"live_url" validate:"required"`
	Stars         int        `yaml:"stars" json:"stars" validate:"min=0"`
	Forks         int        `yaml:"forks" json:"forks" validate:"min=0"`
	LastUpdated   *time.Time `yaml:"last_updated" json:"last_updated"`
}

type skillDoc struct {
	Icon  string `yaml:"icon" json:"icon" validate:"required"`
	Label string `yaml:"label" json:"label" validate:"required"`
}

type timelineDoc struct {
	Kind         string   `yaml:"kind" json:"kind" validate:"required,oneof=education experience"`
	Title        string   `yaml:"title" json:"title" validate:"required"`
	Organization string   `yaml:"organization" json:"organization" validate:"required"`
	Date         string   `yaml:"date" json:"date" validate:"required"`
	Location     string   `yaml:"location" json:"location"`
	Description  string   `yaml:"description" json:"description"`
	Skills       []string `yaml:"skills" json:"skills" validate:"dive,required"`
}
