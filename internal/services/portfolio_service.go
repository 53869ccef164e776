package services

import (
	"errors"
	"fmt"
	"strings"

	"sagar88.com.np/internal/components"
	"sagar88.com.np/internal/content"
	"sagar88.com.np/internal/models"
)

// ErrProjectNotFound is returned when no project matches a key
var ErrProjectNotFound = errors.New("project not found")

// PortfolioService gives read-only access to the loaded content
type PortfolioService struct {
	snapshot *content.Snapshot
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(snapshot *content.Snapshot) *PortfolioService {
	return &PortfolioService{snapshot: snapshot}
}

// GetProfile returns the profile record
func (s *PortfolioService) GetProfile() models.Profile {
	return s.snapshot.Profile
}

// GetProjects returns all projects in content order
func (s *PortfolioService) GetProjects() []models.Project {
	return s.snapshot.Projects
}

// GetProjectByKey returns the project whose title matches key, ignoring case
func (s *PortfolioService) GetProjectByKey(key string) (*models.Project, error) {
	for i := range s.snapshot.Projects {
		if strings.EqualFold(s.snapshot.Projects[i].Key(), key) {
			return &s.snapshot.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, key)
}

// GetSkills returns all skills in content order
func (s *PortfolioService) GetSkills() []models.Skill {
	return s.snapshot.Skills
}

// GetTimeline returns both timeline panels
func (s *PortfolioService) GetTimeline() models.Timeline {
	return s.snapshot.Timeline
}

// PageData assembles the input of the page components
func (s *PortfolioService) PageData() components.PageData {
	return components.PageData{
		Profile:  s.snapshot.Profile,
		Projects: s.snapshot.Projects,
		Skills:   s.snapshot.Skills,
		Timeline: s.snapshot.Timeline,
		LoadedAt: s.snapshot.LoadedAt,
	}
}
