package models

// TimelineKind partitions timeline entries into panels
type TimelineKind string

const (
	KindEducation  TimelineKind = "education"
	KindExperience TimelineKind = "experience"
)

// TimelineEntry is a single education or experience item
type TimelineEntry struct {
	Kind         TimelineKind `json:"kind"`
	Title        string       `json:"title"`
	Organization string       `json:"organization"`
	Date         string       `json:"date"` // free text, never parsed
	Location     string       `json:"location,omitempty"`
	Description  string       `json:"description,omitempty"`
	Skills       []string     `json:"skills,omitempty"`
}

// Key returns the identifier used to address the entry
func (e TimelineEntry) Key() string {
	return string(e.Kind) + "/" + e.Organization + "/" + e.Title
}

// Timeline holds both panels, each in its own order
type Timeline struct {
	Experience []TimelineEntry `json:"experience"`
	Education  []TimelineEntry `json:"education"`
}
