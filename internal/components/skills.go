package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"sagar88.com.np/internal/icons"
	"sagar88.com.np/internal/models"
)

// SkillGrid renders the technologies grid. The column count is left to
// the stylesheet.
func SkillGrid(skills []models.Skill) templ.Component {
	nodes := Projection(skills, models.Skill.Key, SkillCell)
	grid := List(ListOptions{
		Tag:       "ul",
		ItemTag:   "li",
		Class:     "skill-grid grid grid-cols-2 sm:grid-cols-3 md:grid-cols-4 lg:grid-cols-5 gap-4",
		ItemClass: "skill-cell flex flex-col items-center p-4 rounded-lg bg-gray-100 dark:bg-gray-700 transition-all duration-300 hover:scale-105",
	}, nodes)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("section", "id", "skills", "class", "skill-section bg-white dark:bg-gray-800 p-6 rounded-xl shadow-lg")
		h.element("h2", "Technologies", "class", "text-2xl font-bold mb-6 text-center")
		h.component(grid)
		h.close("section")
		return h.err
	})
}

// SkillCell renders an icon with its label beneath. Tags outside the
// registry render the icons.Fallback glyph.
func SkillCell(skill models.Skill) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "class", "skill-icon text-gray-600 dark:text-gray-300 mb-2")
		h.glyph(icons.LucideNameOrFallback(skill.Icon), 24, "icon")
		h.close("div")
		h.element("span", skill.Label, "class", "skill-label text-sm font-medium text-center")
		return h.err
	})
}
