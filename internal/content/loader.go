// Package content ingests the portfolio content file into an immutable
// snapshot of validated records.
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"sagar88.com.np/internal/icons"
	"sagar88.com.np/internal/metrics"
	"sagar88.com.np/internal/models"
)

//go:embed defaults/portfolio.yaml
var defaultContent []byte

// Section names used in RecordError and metrics labels.
const (
	SectionProjects = "projects"
	SectionSkills   = "skills"
	SectionTimeline = "timeline"
)

// Format selects the content file decoder.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Snapshot is the validated content the components render from.
type Snapshot struct {
	Profile  models.Profile
	Projects []models.Project
	Skills   []models.Skill
	Timeline models.Timeline

	// LoadedAt is captured once, at ingestion.
	LoadedAt time.Time
	Rejected []*RecordError
}

// Err joins every rejected record, or returns nil.
func (s *Snapshot) Err() error {
	errs := make([]error, 0, len(s.Rejected))
	for _, rec := range s.Rejected {
		errs = append(errs, rec)
	}
	return errors.Join(errs...)
}

// Loader decodes and validates content files.
type Loader struct {
	Now      func() time.Time
	Validate *validator.Validate
	Logger   *slog.Logger
}

// NewLoader creates a Loader using the wall clock.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		Now:      time.Now,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		Logger:   logger,
	}
}

// Load reads the content file at path. An empty path loads the embedded
// default content.
func (l *Loader) Load(path string) (*Snapshot, error) {
	if path == "" {
		return l.Parse(defaultContent, FormatYAML)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	snapshot, err := l.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return snapshot, nil
}

// Parse decodes data and validates every record. Malformed list records
// are dropped and reported in Snapshot.Rejected; a malformed profile fails
// the whole parse.
func (l *Loader) Parse(data []byte, format Format) (*Snapshot, error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse content YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse content JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}

	profile, err := l.profile(doc.Profile)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Profile:  profile,
		Projects: make([]models.Project, 0, len(doc.Projects)),
		Skills:   make([]models.Skill, 0, len(doc.Skills)),
		Timeline: models.Timeline{
			Experience: []models.TimelineEntry{},
			Education:  []models.TimelineEntry{},
		},
		LoadedAt: l.now(),
	}

	l.projects(snapshot, doc.Projects)
	l.skills(snapshot, doc.Skills)
	l.timeline(snapshot, doc.Timeline)

	for _, rec := range snapshot.Rejected {
		l.logger().Warn("content record rejected",
			slog.String("section", rec.Section),
			slog.Int("index", rec.Index),
			slog.String("key", rec.Key),
			slog.Any("error", rec.Err))
		metrics.ContentRejectedTotal.WithLabelValues(rec.Section).Inc()
	}
	metrics.ContentRecords.WithLabelValues(SectionProjects).Set(float64(len(snapshot.Projects)))
	metrics.ContentRecords.WithLabelValues(SectionSkills).Set(float64(len(snapshot.Skills)))
	metrics.ContentRecords.WithLabelValues(SectionTimeline).Set(float64(len(snapshot.Timeline.Experience) + len(snapshot.Timeline.Education)))

	return snapshot, nil
}

func (l *Loader) profile(doc profileDoc) (models.Profile, error) {
	if err := l.validator().Struct(doc); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	social := make(map[string]string, len(doc.Social))
	sources := make(map[icons.Platform]string, len(doc.Social))
	for _, key := range slices.Sorted(maps.Keys(doc.Social)) {
		url := doc.Social[key]
		platform, ok := icons.LookupPlatform(key)
		if !ok {
			l.logger().Warn("unknown social platform will not be shown", slog.String("platform", key))
			social[key] = url
			continue
		}
		if prev, dup := sources[platform]; dup {
			return models.Profile{}, fmt.Errorf("%w: social keys %q and %q both name %s: %w",
				ErrInvalidProfile, prev, key, platform, ErrDuplicateKey)
		}
		sources[platform] = key
		social[string(platform)] = url
	}

	return models.Profile{
		Name:   doc.Name,
		Handle: doc.Handle,
		Bio:    append([]string(nil), doc.Bio...),
		Avatar: models.Avatar{URL: doc.Avatar.URL, Alt: doc.Avatar.Alt},
		Social: social,
	}, nil
}

func (l *Loader) projects(s *Snapshot, docs []projectDoc) {
	seen := make(map[string]struct{}, len(docs))
	for i, doc := range docs {
		if err := l.validator().Struct(doc); err != nil {
			s.reject(SectionProjects, i, doc.Title, err)
			continue
		}
		if _, dup := seen[doc.Title]; dup {
			s.reject(SectionProjects, i, doc.Title, ErrDuplicateKey)
			continue
		}
		seen[doc.Title] = struct{}{}

		project := models.Project{
			Title:         doc.Title,
			Description:   doc.Description,
			Technologies:  append([]string{}, doc.Technologies...),
			RepositoryURL: doc.RepositoryURL,
			LiveURL:       doc.LiveURL,
			Stars:         doc.Stars,
			Forks:         doc.Forks,
		}
		if doc.LastUpdated != nil {
			updated := doc.LastUpdated.UTC()
			project.LastUpdated = &updated
		}
		s.Projects = append(s.Projects, project)
	}
}

func (l *Loader) skills(s *Snapshot, docs []skillDoc) {
	seen := make(map[string]struct{}, len(docs))
	for i, doc := range docs {
		if err := l.validator().Struct(doc); err != nil {
			s.reject(SectionSkills, i, doc.Label, err)
			continue
		}
		tag, err := icons.ParseTag(doc.Icon)
		if err != nil {
			s.reject(SectionSkills, i, doc.Label, err)
			continue
		}
		if _, dup := seen[doc.Label]; dup {
			s.reject(SectionSkills, i, doc.Label, ErrDuplicateKey)
			continue
		}
		seen[doc.Label] = struct{}{}
		s.Skills = append(s.Skills, models.Skill{Icon: tag, Label: doc.Label})
	}
}

func (l *Loader) timeline(s *Snapshot, docs []timelineDoc) {
	for i, doc := range docs {
		if err := l.validator().Struct(doc); err != nil {
			s.reject(SectionTimeline, i, doc.Title, err)
			continue
		}
		entry := models.TimelineEntry{
			Kind:         models.TimelineKind(doc.Kind),
			Title:        doc.Title,
			Organization: doc.Organization,
			Date:         doc.Date,
			Location:     strings.TrimSpace(doc.Location),
			Description:  strings.TrimSpace(doc.Description),
		}
		if len(doc.Skills) > 0 {
			entry.Skills = append([]string(nil), doc.Skills...)
		}
		switch entry.Kind {
		case models.KindExperience:
			s.Timeline.Experience = append(s.Timeline.Experience, entry)
		case models.KindEducation:
			s.Timeline.Education = append(s.Timeline.Education, entry)
		}
	}
}

func (s *Snapshot) reject(section string, index int, key string, err error) {
	s.Rejected = append(s.Rejected, &RecordError{Section: section, Index: index, Key: key, Err: err})
}

func (l *Loader) now() time.Time {
	if l.Now == nil {
		return time.Now().UTC()
	}
	return l.Now().UTC()
}

func (l *Loader) validator() *validator.Validate {
	if l.Validate == nil {
		l.Validate = validator.New(validator.WithRequiredStructEnabled())
	}
	return l.Validate
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}
