package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sagar88.com.np/internal/config"
	"sagar88.com.np/internal/content"
	"sagar88.com.np/internal/logging"
	"sagar88.com.np/internal/models"
)

func newTestRouter(t *testing.T, mutate ...func(*config.Config)) http.Handler {
	t.Helper()

	loader := content.NewLoader(logging.Discard())
	loader.Now = func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) }
	snapshot, err := loader.Load("")
	require.NoError(t, err)

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "site.css"), []byte("body{}"), 0o644))

	cfg := &config.Config{
		ServerAddr:      ":0",
		StaticDir:       static,
		MetricsEnabled:  true,
		ShutdownTimeout: time.Second,
		Content:         snapshot,
	}
	for _, m := range mutate {
		m(cfg)
	}
	return SetupRoutes(cfg, logging.Discard())
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndex(t *testing.T) {
	rec := get(t, newTestRouter(t), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Sagar Subedi", strings.TrimSpace(doc.Find("h1.profile-name").Text()))
	assert.Equal(t, 2, doc.Find("article.project-card").Length())
	assert.Equal(t, 20, doc.Find("li.skill-cell").Length())
	assert.Equal(t, 5, doc.Find("li.timeline-item").Length())
}

func TestSection(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/sections/skills")
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("section#skills").Length())
	assert.Equal(t, 0, doc.Find("section#profile").Length())

	rec = get(t, router, "/sections/blog")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectsAPI(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, "Litcord", projects[0].Title)

	rec = get(t, router, "/api/projects/Distributed%20Nursery%20Store")
	require.Equal(t, http.StatusOK, rec.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	assert.Equal(t, "Distributed Nursery Store", project.Title)

	rec = get(t, router, "/api/projects/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rec.Body.String())
}

func TestContentAPI(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/profile")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Sagar Subedi", profile.Name)
	assert.Len(t, profile.Bio, 3)

	rec = get(t, router, "/api/skills")
	require.Equal(t, http.StatusOK, rec.Code)
	var skills []models.Skill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &skills))
	assert.Len(t, skills, 20)

	rec = get(t, router, "/api/timeline")
	require.Equal(t, http.StatusOK, rec.Code)
	var timeline models.Timeline
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &timeline))
	assert.Len(t, timeline.Experience, 3)
	assert.Len(t, timeline.Education, 2)

	rec = get(t, router, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	get(t, router, "/")

	rec := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portfolio_http_requests_total")

	disabled := newTestRouter(t, func(c *config.Config) { c.MetricsEnabled = false })
	assert.Equal(t, http.StatusNotFound, get(t, disabled, "/metrics").Code)
}

func TestStaticFiles(t *testing.T) {
	rec := get(t, newTestRouter(t), "/static/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	missing := newTestRouter(t, func(c *config.Config) { c.StaticDir = filepath.Join(t.TempDir(), "nope") })
	assert.Equal(t, http.StatusNotFound, get(t, missing, "/static/site.css").Code)
}

func TestRateLimited(t *testing.T) {
	router := newTestRouter(t, func(c *config.Config) {
		c.RateLimitRPS = 0.001
		c.RateLimitBurst = 1
	})

	assert.Equal(t, http.StatusOK, get(t, router, "/api/health").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(t, router, "/api/health").Code)
}

func TestRateLimited_PerClient(t *testing.T) {
	router := newTestRouter(t, func(c *config.Config) {
		c.RateLimitRPS = 0.001
		c.RateLimitBurst = 1
	})

	from := func(addr string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.RemoteAddr = addr
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, from("10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, from("10.0.0.1:5001"))
	assert.Equal(t, http.StatusOK, from("192.168.9.9:443"))
}
