package icons

import _ "embed"

const lucideSymbolPrefix = "lucide-"

//go:embed lucide_sprite.svg
var lucideSprite string

// Fallback is the glyph rendered for tags outside the registry.
const Fallback = "circle-help"

var lucideTagNames = [tagCount]string{
	TagCode:      "code",
	TagFileJSON:  "file-json",
	TagAtom:      "atom",
	TagZap:       "zap",
	TagPalette:   "palette",
	TagGlobe:     "globe",
	TagBarChart:  "chart-bar",
	TagServer:    "server",
	TagFileCode:  "file-code",
	TagDatabase:  "database",
	TagTable:     "table",
	TagGitBranch: "git-branch",
	TagGitHub:    "github",
	TagGitCommit: "git-commit-horizontal",
	TagContainer: "container",
	TagTerminal:  "terminal",
	TagRocket:    "rocket",
	TagBot:       "bot",
	TagLink:      "link",
	TagWifi:      "wifi",
	TagAppWindow: "app-window",
	TagPhone:     "phone",
	TagFilm:      "film",
}

// LucideName returns the Lucide icon name for a tag.
func LucideName(t Tag) (string, bool) {
	if !t.Valid() {
		return "", false
	}
	name := lucideTagNames[t]
	return name, name != ""
}

// LucideNameOrFallback provides a stable glyph name even when the tag is
// unknown.
func LucideNameOrFallback(t Tag) string {
	if name, ok := LucideName(t); ok {
		return name
	}
	return Fallback
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup holding a symbol for every
// glyph the registry can emit.
func LucideSprite() string {
	return lucideSprite
}
