package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"sagar88.com.np/internal/logging"
	"sagar88.com.np/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	portfolioService *services.PortfolioService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.PortfolioService) *ProjectHandler {
	return &ProjectHandler{portfolioService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.portfolioService.GetProjects()
	respondJSON(w, r, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{key}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	key, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid project key")
		return
	}

	project, err := h.portfolioService.GetProjectByKey(key)
	if err != nil {
		if !errors.Is(err, services.ErrProjectNotFound) {
			logging.FromContext(r.Context()).Error("project lookup failed", slog.Any("error", err))
		}
		respondError(w, r, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, r, http.StatusOK, project)
}
