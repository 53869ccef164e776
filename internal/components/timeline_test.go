package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sagar88.com.np/internal/models"
)

func TestTimelineEntryView_RequiredFields(t *testing.T) {
	entry := models.TimelineEntry{
		Kind:         models.KindEducation,
		Title:        "BSc",
		Organization: "Uni",
		Date:         "Graduation: 2023",
	}
	doc := renderDoc(t, TimelineEntryView(entry))

	assert.Equal(t, "BSc", doc.Find(".timeline-title").Text())
	assert.Equal(t, "Uni", doc.Find(".timeline-organization").Text())
	assert.Equal(t, "Graduation: 2023", doc.Find(".timeline-date").Text())
	assert.Equal(t, 0, doc.Find(".timeline-location").Length())
	assert.Equal(t, 0, doc.Find(".timeline-description").Length())
	assert.Equal(t, 0, doc.Find(".timeline-skills").Length())
}

func TestTimelineEntryView_ConditionalLocation(t *testing.T) {
	for _, location := range []string{"Remote", "  Kathmandu, Nepal <HQ> ", "x"} {
		entry := models.TimelineEntry{Title: "Dev", Organization: "Co", Date: "2024", Location: location}
		doc := renderDoc(t, TimelineEntryView(entry))

		found := doc.Find(".timeline-location")
		require.Equal(t, 1, found.Length())
		assert.Equal(t, location, found.Text())
	}
}

func TestTimelineEntryView_SkillsOnlyWhenNonEmpty(t *testing.T) {
	entry := models.TimelineEntry{Title: "Dev", Organization: "Co", Date: "2024", Skills: []string{}}
	doc := renderDoc(t, TimelineEntryView(entry))
	assert.Equal(t, 0, doc.Find(".timeline-skills").Length())

	entry.Skills = []string{"Flutter", "Dart", "Bluetooth"}
	entry.Description = "Built apps."
	doc = renderDoc(t, TimelineEntryView(entry))
	assert.Equal(t, []string{"Flutter", "Dart", "Bluetooth"}, texts(doc.Find(".timeline-skill")))
	assert.Equal(t, "Built apps.", doc.Find(".timeline-description").Text())
}

func TestCareerTimeline_ExperienceBeforeEducation(t *testing.T) {
	timeline := models.Timeline{
		Experience: []models.TimelineEntry{{Kind: models.KindExperience, Title: "Dev", Organization: "Co", Date: "2024"}},
		Education:  []models.TimelineEntry{},
	}
	doc := renderDoc(t, CareerTimeline(timeline))

	panels := doc.Find(".timeline-panel")
	require.Equal(t, 2, panels.Length())
	assert.Equal(t, []string{"experience", "education"}, attrs(panels, "data-panel"))
	assert.Equal(t, 1, panels.Eq(0).Find("li.timeline-item").Length())
	assert.Equal(t, 1, panels.Eq(1).Find("ol.timeline-entries").Length())
	assert.Equal(t, 0, panels.Eq(1).Find("li.timeline-item").Length())
	assert.Equal(t, "experience/Co/Dev", panels.Eq(0).Find("li.timeline-item").AttrOr("data-key", ""))
}
