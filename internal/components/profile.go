package components

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/a-h/templ"

	"sagar88.com.np/internal/icons"
	"sagar88.com.np/internal/logging"
	"sagar88.com.np/internal/models"
)

var socialLinkClasses = map[icons.Platform]string{
	icons.PlatformTwitter:  "social-link text-blue-400 hover:text-blue-500 transition-colors duration-300",
	icons.PlatformGitHub:   "social-link text-gray-700 dark:text-gray-300 hover:text-gray-900 dark:hover:text-white transition-colors duration-300",
	icons.PlatformLinkedIn: "social-link text-blue-700 hover:text-blue-800 transition-colors duration-300",
}

// ProfileSummary renders the about-me card. Social links appear in the
// fixed platform order; keys that are not a known platform are skipped and
// logged at warn level on the context logger.
func ProfileSummary(profile models.Profile) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("section", "id", "profile", "class", "profile-summary bg-white dark:bg-gray-800 rounded-xl shadow-lg overflow-hidden transition-all duration-300 hover:shadow-xl")
		h.open("div", "class", "p-6 flex flex-col sm:flex-row items-center sm:items-start gap-6")
		h.open("img", "src", profile.Avatar.URL, "alt", profile.Avatar.Alt, "class", "profile-avatar rounded-full shadow-md h-32 w-32 object-cover ring-4 ring-blue-500")
		h.open("div", "class", "flex-1 text-center sm:text-left")
		h.element("h1", profile.Name, "class", "profile-name text-2xl font-bold mb-1")
		h.element("p", profile.Handle, "class", "profile-handle text-blue-600 dark:text-blue-400 mb-4")
		for _, paragraph := range profile.Bio {
			h.element("p", paragraph, "class", "profile-bio text-gray-700 dark:text-gray-300 mb-4 leading-relaxed")
		}
		h.open("nav", "class", "profile-social flex justify-center sm:justify-start gap-4")
		for _, platform := range icons.Platforms() {
			url, ok := profile.Social[string(platform)]
			if !ok || url == "" {
				continue
			}
			h.externalLink(url, socialLinkClasses[platform], "aria-label", platform.Label(), "data-platform", string(platform))
			h.glyph(platform.Glyph(), 24, "icon w-6 h-6")
			h.close("a")
		}
		h.close("nav")
		warnUnknownPlatforms(ctx, profile.Social)
		h.close("div")
		h.close("div")
		h.close("section")
		return h.err
	})
}

func warnUnknownPlatforms(ctx context.Context, social map[string]string) {
	for _, key := range slices.Sorted(maps.Keys(social)) {
		if _, ok := icons.LookupPlatform(key); ok {
			continue
		}
		logging.FromContext(ctx).Warn("social link omitted: unknown platform", slog.String("platform", key))
	}
}
