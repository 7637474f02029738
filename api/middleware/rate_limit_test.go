package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimiter struct {
	counts map[string]int64
	err    error
}

func (f *fakeLimiter) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeLimiter) RateLimitKey(scope string) string {
	return "rl:" + scope
}

func limitedHandler(store rateLimiterStore, limit int) http.Handler {
	policy := NewRateLimitPolicy("Admin", time.Minute, limit)
	return RateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hit(h http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/seed-data", nil)
	req.RemoteAddr = ip + ":5555"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBlocksAfterLimitPerIP(t *testing.T) {
	store := &fakeLimiter{counts: map[string]int64{}}
	h := limitedHandler(store, 2)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1"))

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2"), "other clients keep their own budget")
	assert.Equal(t, int64(3), store.counts["rl:admin:ip:10.0.0.1"])
}

func TestRateLimitStoreFailureIsDependencyError(t *testing.T) {
	store := &fakeLimiter{counts: map[string]int64{}, err: errors.New("redis down")}
	require.Equal(t, http.StatusServiceUnavailable, hit(limitedHandler(store, 2), "10.0.0.1"))
}

func TestRateLimitDisabledWithoutStoreOrLimit(t *testing.T) {
	assert.Equal(t, http.StatusOK, hit(limitedHandler(nil, 1), "10.0.0.1"))

	store := &fakeLimiter{counts: map[string]int64{}}
	h := limitedHandler(store, 0)
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1"))
	}
	assert.Empty(t, store.counts)
}

func TestClientIPPrefersForwardedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", clientIP(req))

	req.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(req))
}
