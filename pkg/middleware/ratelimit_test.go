package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func rateLimited(cfg RateLimitConfig) http.Handler {
	return RateLimit(cfg, discard())(http.HandlerFunc(ok))
}

func hit(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_WithinBurst(t *testing.T) {
	h := rateLimited(RateLimitConfig{RPS: 1, Burst: 5})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "192.168.1.1:12345").Code, "request %d", i+1)
	}
}

func TestRateLimit_ExceedingBurst(t *testing.T) {
	h := rateLimited(RateLimitConfig{RPS: 0.5, Burst: 2})

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1001").Code)

	rec := hit(h, "10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
	assert.Contains(t, rec.Body.String(), "too many requests")
}

func TestRateLimit_ClientsAreIndependent(t *testing.T) {
	h := rateLimited(RateLimitConfig{RPS: 1, Burst: 1})

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1000").Code)
}

func TestRateLimit_IgnoresForwardedHeaders(t *testing.T) {
	h := rateLimited(RateLimitConfig{RPS: 1, Burst: 1})

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1000").Code)

	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	req.RemoteAddr = "10.0.0.1:1000"
	req.Header.Set("X-Forwarded-For", "203.0.113.50")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_CustomErrorWriter(t *testing.T) {
	var gotStatus int
	var gotCode string
	h := rateLimited(RateLimitConfig{RPS: 1, Burst: 1, OnLimit: func(w http.ResponseWriter, status int, code, _ string) {
		gotStatus, gotCode = status, code
		w.WriteHeader(status)
	}})

	hit(h, "10.0.0.1:1000")
	rec := hit(h, "10.0.0.1:1000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, http.StatusTooManyRequests, gotStatus)
	assert.Equal(t, "RATE_LIMITED", gotCode)
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	h := rateLimited(RateLimitConfig{})

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1000").Code)
	}
}

func TestVisitorStore_SweepsIdleClients(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := newVisitorStore(RateLimitConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute})
	s.now = func() time.Time { return now }

	s.get("10.0.0.1")
	s.get("10.0.0.2")
	assert.Equal(t, 2, s.len())

	now = now.Add(30 * time.Second)
	s.get("10.0.0.2")

	now = now.Add(45 * time.Second)
	s.get("10.0.0.3")
	assert.Equal(t, 2, s.len(), "10.0.0.1 idle for 75s is evicted")
}

func TestRemoteHost(t *testing.T) {
	assert.Equal(t, "10.0.0.1", remoteHost("10.0.0.1:8080"))
	assert.Equal(t, "::1", remoteHost("[::1]:8080"))
	assert.Equal(t, "unix", remoteHost("unix"))
}
