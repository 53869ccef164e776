package icons

import "strings"

// Platform identifies a social network shown on the profile card.
type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformGitHub   Platform = "github"
	PlatformLinkedIn Platform = "linkedin"
)

// platforms fixes the order social links appear in.
var platforms = []Platform{PlatformTwitter, PlatformGitHub, PlatformLinkedIn}

var lucidePlatformNames = map[Platform]string{
	PlatformTwitter:  "twitter",
	PlatformGitHub:   "github",
	PlatformLinkedIn: "linkedin",
}

var platformLabels = map[Platform]string{
	PlatformTwitter:  "Twitter",
	PlatformGitHub:   "GitHub",
	PlatformLinkedIn: "LinkedIn",
}

// Platforms returns the known platforms in display order.
func Platforms() []Platform {
	result := make([]Platform, len(platforms))
	copy(result, platforms)
	return result
}

// LookupPlatform resolves a social link key. Matching ignores case.
func LookupPlatform(key string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(key)))
	_, ok := lucidePlatformNames[p]
	return p, ok
}

// Glyph returns the Lucide icon name for the platform.
func (p Platform) Glyph() string {
	if name, ok := lucidePlatformNames[p]; ok {
		return name
	}
	return Fallback
}

// Label returns the human-readable platform name.
func (p Platform) Label() string {
	if label, ok := platformLabels[p]; ok {
		return label
	}
	return string(p)
}
