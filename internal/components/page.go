package components

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"sagar88.com.np/internal/icons"
	"sagar88.com.np/internal/models"
)

// Section names, in page order.
const (
	SectionProfile  = "profile"
	SectionProjects = "projects"
	SectionSkills   = "skills"
	SectionTimeline = "timeline"
)

// PageData is everything the page shell needs.
type PageData struct {
	Profile  models.Profile
	Projects []models.Project
	Skills   []models.Skill
	Timeline models.Timeline
	LoadedAt time.Time
}

// Section is one independently renderable part of the page.
type Section struct {
	Name string
	View templ.Component
}

// Sections returns the page sections in display order.
func Sections(data PageData) []Section {
	return []Section{
		{Name: SectionProfile, View: ProfileSummary(data.Profile)},
		{Name: SectionProjects, View: ProjectGallery(data.Projects)},
		{Name: SectionSkills, View: SkillGrid(data.Skills)},
		{Name: SectionTimeline, View: CareerTimeline(data.Timeline)},
	}
}

// FindSection returns the named section.
func FindSection(data PageData, name string) (Section, bool) {
	for _, section := range Sections(data) {
		if section.Name == name {
			return section, true
		}
	}
	return Section{}, false
}

// Page renders the full document around the sections.
func Page(data PageData) templ.Component {
	sections := Sections(data)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", "en")
		h.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", data.Profile.Name+" | Portfolio")
		h.raw(`<link rel="stylesheet" href="/static/site.css"></head>`)
		h.open("body", "class", "bg-gray-50 dark:bg-gray-900")
		h.raw(icons.LucideSprite())
		h.open("main", "class", "grid gap-6 p-6 md:grid-cols-5 lg:grid-cols-7")
		for _, section := range sections {
			h.component(section.View)
		}
		h.close("main")
		h.open("footer", "class", "text-center text-xs text-gray-500 p-4")
		h.text("Content loaded ")
		h.element("time", data.LoadedAt.Format("2006-01-02"), "datetime", data.LoadedAt.Format(time.RFC3339))
		h.close("footer")
		h.close("body")
		h.close("html")
		return h.err
	})
}
