package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"sagar88.com.np/internal/components"
	"sagar88.com.np/internal/logging"
	"sagar88.com.np/internal/metrics"
	"sagar88.com.np/internal/services"
)

// PageHandler serves the HTML page and its sections
type PageHandler struct {
	portfolioService *services.PortfolioService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.PortfolioService) *PageHandler {
	return &PageHandler{portfolioService: ps}
}

// Index handles GET / - renders the full page
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, "page", components.Page(h.portfolioService.PageData()))
}

// Section handles GET /sections/{name} - renders one section as a fragment
func (h *PageHandler) Section(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	section, ok := components.FindSection(h.portfolioService.PageData(), name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	renderHTML(w, r, section.Name, section.View)
}

// renderHTML buffers the component so a render error can still produce a 500
func renderHTML(w http.ResponseWriter, r *http.Request, name string, c templ.Component) {
	var buf bytes.Buffer
	start := time.Now()
	err := c.Render(r.Context(), &buf)
	metrics.RecordSectionRender(name, time.Since(start))
	if err != nil {
		logging.FromContext(r.Context()).Error("render failed", slog.String("section", name), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).Warn("write response failed", slog.Any("error", err))
	}
}
