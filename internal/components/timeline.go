package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"sagar88.com.np/internal/models"
)

// CareerTimeline renders the experience panel followed by the education
// panel. Each panel keeps its own list order.
func CareerTimeline(timeline models.Timeline) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("section", "id", "timeline", "class", "career-timeline max-w-6xl mx-auto p-4 bg-gray-100 dark:bg-gray-900 rounded-lg shadow")
		h.element("h2", "Timeline", "class", "text-3xl font-bold mb-6 text-center")
		h.open("div", "class", "grid grid-cols-1 md:grid-cols-2 gap-8")
		h.component(timelinePanel("experience", "Experience", timeline.Experience))
		h.component(timelinePanel("education", "Education", timeline.Education))
		h.close("div")
		h.close("section")
		return h.err
	})
}

func timelinePanel(id, heading string, entries []models.TimelineEntry) templ.Component {
	nodes := Projection(entries, models.TimelineEntry.Key, TimelineEntryView)
	list := List(ListOptions{Tag: "ol", ItemTag: "li", Class: "timeline-entries", ItemClass: "timeline-item mb-8 relative"}, nodes)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "class", "timeline-panel", "data-panel", id)
		h.element("h3", heading, "class", "text-2xl font-bold mb-4")
		h.component(list)
		h.close("div")
		return h.err
	})
}

// TimelineEntryView renders one entry. Title, organization and date always
// render; location, description and skills only when present.
func TimelineEntryView(entry models.TimelineEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "class", "timeline-card ml-6 p-4 bg-white dark:bg-gray-800 rounded-lg shadow-md")
		h.element("h4", entry.Title, "class", "timeline-title text-lg font-medium")
		h.element("p", entry.Organization, "class", "timeline-organization text-sm text-gray-600 dark:text-gray-400")
		h.element("p", entry.Date, "class", "timeline-date text-sm text-gray-500")
		if entry.Location != "" {
			h.element("p", entry.Location, "class", "timeline-location text-sm text-gray-500")
		}
		if entry.Description != "" {
			h.element("p", entry.Description, "class", "timeline-description mt-2 text-sm text-gray-700 dark:text-gray-300")
		}
		if len(entry.Skills) > 0 {
			h.badges("timeline-skills mt-2 flex flex-wrap gap-2", "timeline-skill px-2 py-1 text-xs font-medium rounded-full bg-gray-100 text-gray-800", entry.Skills)
		}
		h.close("div")
		return h.err
	})
}
