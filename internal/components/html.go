// Package components renders the portfolio sections as templ components.
//
// Every component is a pure function of its input records. Nothing reads
// the clock, the environment, or shared mutable state while rendering, so
// the same input always renders the same bytes.
package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"sagar88.com.np/internal/icons"
)

// htmlWriter accumulates the first write error so component bodies read
// top to bottom like markup.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// open writes a start tag. attrs alternate name, value; values are escaped.
func (h *htmlWriter) open(tag string, attrs ...string) {
	h.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.raw(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

// element writes <tag attrs>text</tag>.
func (h *htmlWriter) element(tag, text string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// glyph writes an SVG reference to a symbol of the sprite Page inlines.
func (h *htmlWriter) glyph(name string, size int, class string) {
	px := strconv.Itoa(size)
	h.open("svg", "class", class, "width", px, "height", px, "aria-hidden", "true", "data-icon", name)
	h.open("use", "href", "#"+icons.LucideSymbolID(name))
	h.close("use")
	h.close("svg")
}

// href sanitises an outbound URL. Unsafe schemes become a non-functional
// anchor rather than an error.
func href(url string) string {
	return string(templ.URL(url))
}

// externalLink opens an anchor that navigates in a new browsing context.
func (h *htmlWriter) externalLink(url, class string, attrs ...string) {
	base := []string{"href", href(url), "target", "_blank", "rel", "noopener noreferrer", "class", class}
	h.open("a", append(base, attrs...)...)
}

// badges writes one badge per tag, preserving order.
func (h *htmlWriter) badges(listClass, badgeClass string, tags []string) {
	h.open("ul", "class", listClass)
	for _, tag := range tags {
		h.element("li", tag, "class", badgeClass)
	}
	h.close("ul")
}
