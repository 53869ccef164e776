package handlers

import (
	"net/http"

	"sagar88.com.np/internal/services"
)

// ContentHandler serves the profile, skills and timeline as JSON
type ContentHandler struct {
	portfolioService *services.PortfolioService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(ps *services.PortfolioService) *ContentHandler {
	return &ContentHandler{portfolioService: ps}
}

// GetProfile handles GET /api/profile
func (h *ContentHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.portfolioService.GetProfile())
}

// ListSkills handles GET /api/skills
func (h *ContentHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.portfolioService.GetSkills())
}

// GetTimeline handles GET /api/timeline
func (h *ContentHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.portfolioService.GetTimeline())
}
