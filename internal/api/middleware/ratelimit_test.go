package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/swamyslabs/storefront/internal/api/middleware"
	"github.com/swamyslabs/storefront/internal/config"
	"github.com/swamyslabs/storefront/internal/testutils"
)

func TestRateLimiter_FailOpen(t *testing.T) {
	// Point the client at nothing so every redis call errors. A redis outage
	// must not block form submissions.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	limiter := middleware.NewRateLimiter(client, &config.RateConfig{
		MaxAttempts: 1,
		WindowSize:  15 * time.Second,
	})

	called := false
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := testutils.CreateTestRequest(http.MethodPost, "/api/request-callback", nil)
	req.RemoteAddr = "203.0.113.7:51000"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}
