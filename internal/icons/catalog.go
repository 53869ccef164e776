package icons

import "strings"

// CatalogMarkdown renders the tag registry as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Tag | Lucide glyph |\n")
	builder.WriteString("| --- | --- |\n")
	for _, t := range Tags() {
		builder.WriteString("| ")
		builder.WriteString(t.String())
		builder.WriteString(" | ")
		builder.WriteString(LucideNameOrFallback(t))
		builder.WriteString(" |\n")
	}
	builder.WriteString("\n## Social platforms\n\n")
	builder.WriteString("| Platform | Lucide glyph |\n")
	builder.WriteString("| --- | --- |\n")
	for _, p := range Platforms() {
		builder.WriteString("| ")
		builder.WriteString(p.Label())
		builder.WriteString(" | ")
		builder.WriteString(p.Glyph())
		builder.WriteString(" |\n")
	}
	return builder.String()
}
