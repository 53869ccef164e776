package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"sagar88.com.np/internal/config"
	"sagar88.com.np/internal/logging"
	"sagar88.com.np/internal/metrics"
	"sagar88.com.np/internal/middleware"
	"sagar88.com.np/internal/requestid"
	"sagar88.com.np/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(requestid.Middleware)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RateLimit(middleware.NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitIdle)))

	// Initialize services
	portfolioService := services.NewPortfolioService(cfg.Content)

	// Initialize handlers
	pageHandler := NewPageHandler(portfolioService)
	projectHandler := NewProjectHandler(portfolioService)
	contentHandler := NewContentHandler(portfolioService)

	// Pages
	r.Get("/", pageHandler.Index)
	r.Get("/sections/{name}", pageHandler.Section)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/profile", contentHandler.GetProfile)
		r.Get("/skills", contentHandler.ListSkills)
		r.Get("/timeline", contentHandler.GetTimeline)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{key}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if cfg.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	// Static files
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		fileServer := http.FileServer(http.Dir(cfg.StaticDir))
		r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	} else {
		logger.Warn("static directory not found, /static disabled", slog.String("dir", filepath.Clean(cfg.StaticDir)))
	}

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.FromContext(r.Context()).Error("error encoding JSON", slog.Any("error", err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}
