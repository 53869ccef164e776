package icons

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTag is returned when a tag name is not part of the registry.
var ErrUnknownTag = errors.New("unknown icon tag")

// Tag identifies a skill icon.
type Tag int

const (
	TagUnspecified Tag = iota
	TagCode
	TagFileJSON
	TagAtom
	TagZap
	TagPalette
	TagGlobe
	TagBarChart
	TagServer
	TagFileCode
	TagDatabase
	TagTable
	TagGitBranch
	TagGitHub
	TagGitCommit
	TagContainer
	TagTerminal
	TagRocket
	TagBot
	TagLink
	TagWifi
	TagAppWindow
	TagPhone
	TagFilm

	tagCount
)

// tagNames holds the content-file spelling of each tag.
var tagNames = [tagCount]string{
	TagUnspecified: "unspecified",
	TagCode:        "code",
	TagFileJSON:    "file-json",
	TagAtom:        "atom",
	TagZap:         "zap",
	TagPalette:     "palette",
	TagGlobe:       "globe",
	TagBarChart:    "bar-chart",
	TagServer:      "server",
	TagFileCode:    "file-code",
	TagDatabase:    "database",
	TagTable:       "table",
	TagGitBranch:   "git-branch",
	TagGitHub:      "github",
	TagGitCommit:   "git-commit",
	TagContainer:   "container",
	TagTerminal:    "terminal",
	TagRocket:      "rocket",
	TagBot:         "bot",
	TagLink:        "link",
	TagWifi:        "wifi",
	TagAppWindow:   "app-window",
	TagPhone:       "phone",
	TagFilm:        "film",
}

// Tags returns every registered tag in declaration order, excluding
// TagUnspecified.
func Tags() []Tag {
	tags := make([]Tag, 0, tagCount-1)
	for t := TagUnspecified + 1; t < tagCount; t++ {
		tags = append(tags, t)
	}
	return tags
}

// Valid reports whether t is a registered tag.
func (t Tag) Valid() bool {
	return t > TagUnspecified && t < tagCount
}

func (t Tag) String() string {
	if t < 0 || t >= tagCount {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// ParseTag resolves a content-file tag name. Matching ignores case and
// surrounding whitespace.
func ParseTag(name string) (Tag, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for t := TagUnspecified + 1; t < tagCount; t++ {
		if tagNames[t] == normalized {
			return t, nil
		}
	}
	return TagUnspecified, fmt.Errorf("%w: %q", ErrUnknownTag, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, t)
	}
	return []byte(tagNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := ParseTag(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
