package components

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"sagar88.com.np/internal/models"
)

// ProjectGallery renders the featured projects grid.
func ProjectGallery(projects []models.Project) templ.Component {
	nodes := Projection(projects, models.Project.Key, ProjectItemView)
	grid := List(ListOptions{Class: "project-grid grid gap-4 p-4 sm:grid-cols-2"}, nodes)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("section", "id", "projects", "class", "project-gallery rounded-lg shadow-md")
		h.open("div", "class", "p-4")
		h.element("h2", "Featured Projects", "class", "text-xl font-bold")
		h.close("div")
		h.component(grid)
		h.close("section")
		return h.err
	})
}

// ProjectItemView renders one project card.
func ProjectItemView(project models.Project) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("article", "class", "project-card bg-white dark:bg-gray-800 rounded-lg shadow p-4 transition-shadow duration-300 hover:shadow-lg")
		h.element("h3", project.Title, "class", "project-title text-lg font-semibold")
		h.element("p", project.Description, "class", "project-description text-sm text-gray-700 dark:text-gray-300 mt-2")
		h.badges("project-technologies flex flex-wrap gap-2 mt-3", "project-technology px-2 py-1 text-xs rounded-full bg-blue-100 text-blue-800", project.Technologies)

		h.open("dl", "class", "project-stats flex gap-4 mt-3 text-xs text-gray-500")
		h.element("dt", "Stars", "class", "sr-only")
		h.element("dd", strconv.Itoa(project.Stars), "class", "project-stars")
		h.element("dt", "Forks", "class", "sr-only")
		h.element("dd", strconv.Itoa(project.Forks), "class", "project-forks")
		if project.LastUpdated != nil {
			h.element("dt", "Updated", "class", "sr-only")
			h.open("dd", "class", "project-updated")
			h.element("time", project.LastUpdated.Format("Jan 2, 2006"), "datetime", project.LastUpdated.Format(time.RFC3339))
			h.close("dd")
		}
		h.close("dl")

		h.open("div", "class", "project-links flex gap-4 mt-4")
		h.externalLink(project.RepositoryURL, "project-repository text-sm text-gray-700 hover:underline")
		h.text("Source")
		h.close("a")
		h.externalLink(project.LiveURL, "project-live text-sm text-blue-600 hover:underline")
		h.text("Live demo")
		h.close("a")
		h.close("div")
		h.close("article")
		return h.err
	})
}
