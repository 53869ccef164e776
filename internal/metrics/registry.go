// Package metrics provides the Prometheus collectors for the site.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route pattern, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// SectionRenderDuration measures how long each page section takes to render
	SectionRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_section_render_duration_seconds",
			Help:    "Section render duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"section"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

var (
	// ContentRecords reports how many records of each section were accepted
	ContentRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "portfolio_content_records",
			Help: "Number of accepted content records per section",
		},
		[]string{"section"},
	)

	// ContentRejectedTotal counts records rejected during content ingestion
	ContentRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_content_rejected_records_total",
			Help: "Total number of content records rejected during ingestion",
		},
		[]string{"section"},
	)
)

// RecordHTTPRequest records one finished HTTP request.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordSectionRender records the render time of one page section.
func RecordSectionRender(section string, duration time.Duration) {
	SectionRenderDuration.WithLabelValues(section).Observe(duration.Seconds())
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
