package models

// Profile is the identity shown on the about-me card
type Profile struct {
	Name   string            `json:"name"`
	Handle string            `json:"handle"`
	Bio    []string          `json:"bio"`
	Avatar Avatar            `json:"avatar"`
	Social map[string]string `json:"social"`
}

// Avatar references the profile picture
type Avatar struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}
