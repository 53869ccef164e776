package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sagar88.com.np/internal/content"
	"sagar88.com.np/internal/logging"
)

func newTestService(t *testing.T) *PortfolioService {
	t.Helper()
	loader := content.NewLoader(logging.Discard())
	loader.Now = func() time.Time { return time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC) }
	snapshot, err := loader.Load("")
	require.NoError(t, err)
	return NewPortfolioService(snapshot)
}

func TestGetProjectByKey(t *testing.T) {
	svc := newTestService(t)

	project, err := svc.GetProjectByKey("distributed nursery store")
	require.NoError(t, err)
	assert.Equal(t, "Distributed Nursery Store", project.Title)

	project, err = svc.GetProjectByKey("missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.Nil(t, project)
}

func TestAccessors(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "Sagar Subedi", svc.GetProfile().Name)
	assert.Len(t, svc.GetProjects(), 2)
	assert.Len(t, svc.GetSkills(), 20)
	assert.Len(t, svc.GetTimeline().Experience, 3)
	assert.Len(t, svc.GetTimeline().Education, 2)
}

func TestPageData(t *testing.T) {
	svc := newTestService(t)
	data := svc.PageData()

	assert.Equal(t, svc.GetProfile(), data.Profile)
	assert.Equal(t, svc.GetProjects(), data.Projects)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), data.LoadedAt)
}
