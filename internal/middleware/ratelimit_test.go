package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sagar88.com.np/internal/metrics"
)

func requestFrom(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func statuses(h http.Handler, remoteAddr string, n int) []int {
	codes := make([]int, 0, n)
	for i := 0; i < n; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom(remoteAddr))
		codes = append(codes, rec.Code)
	}
	return codes
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(NewClientLimiter(0.001, 2, time.Minute))(http.HandlerFunc(ok))
	before := testutil.ToFloat64(metrics.RateLimitedTotal)

	handler.ServeHTTP(httptest.NewRecorder(), requestFrom("10.0.0.1:5000"))
	handler.ServeHTTP(httptest.NewRecorder(), requestFrom("10.0.0.1:5000"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom("10.0.0.1:5000"))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RateLimitedTotal))
}

func TestRateLimit_ClientsHaveIndependentBuckets(t *testing.T) {
	handler := RateLimit(NewClientLimiter(0.01, 2, time.Minute))(http.HandlerFunc(ok))

	assert.Equal(t, []int{200, 200, 429}, statuses(handler, "10.0.0.1:5000", 3))
	assert.Equal(t, []int{200, 200, 429}, statuses(handler, "192.168.9.9:443", 3))
	// a new source port is the same client
	assert.Equal(t, []int{429}, statuses(handler, "10.0.0.1:6000", 1))
}

func TestRateLimit_DisabledWhenNil(t *testing.T) {
	assert.Nil(t, NewClientLimiter(0, 10, time.Minute))
	handler := RateLimit(nil)(http.HandlerFunc(ok))
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestClientLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	limiter := NewClientLimiter(0.001, 1, time.Minute)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	now = now.Add(30 * time.Second)
	assert.True(t, limiter.Allow("10.0.0.2"))
	require.Equal(t, 2, limiter.Len())

	now = now.Add(45 * time.Second)
	assert.False(t, limiter.Allow("10.0.0.2"))
	assert.Equal(t, 1, limiter.Len(), "10.0.0.1 idle for 75s should be evicted")

	// an evicted client starts with a full bucket
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestClientIP(t *testing.T) {
	cases := map[string]string{
		"192.168.1.1:8080":   "192.168.1.1",
		"[2001:db8::1]:8080": "2001:db8::1",
		"127.0.0.1":          "127.0.0.1",
	}
	for addr, want := range cases {
		assert.Equal(t, want, clientIP(requestFrom(addr)), addr)
	}
}
