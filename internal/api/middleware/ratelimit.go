package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/swamyslabs/storefront/internal/config"
	"github.com/swamyslabs/storefront/internal/utils/response"
)

// RateLimiter throttles form submissions per client IP with a sliding
// window held in a redis sorted set. The forms are unauthenticated, so the
// remote address is the only identity available.
type RateLimiter struct {
	client *redis.Client
	cfg    *config.RateConfig
}

func NewRateLimiter(client *redis.Client, cfg *config.RateConfig) *RateLimiter {
	return &RateLimiter{client: client, cfg: cfg}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		allowed, retryAfter, err := rl.check(r)
		if err != nil {
			// rather let a submission through than block on a redis outage
			logger.Warn("Rate limit check failed, allowing request", "error", err.Error())
			next.ServeHTTP(w, r)

			return
		}

		if !allowed {
			logger.Warn("Rate limit exceeded", "retry_after_seconds", retryAfter)
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			response.Error(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")

			return
		}

		next.ServeHTTP(w, r)

	})
}

func (rl *RateLimiter) check(r *http.Request) (bool, int, error) {

	ctx := r.Context()

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	key := "relay_attempts:" + host

	now := time.Now().Unix()

	// only attempts inside the window are counted
	windowStart := now - int64(rl.cfg.WindowSize.Seconds())

	pipe := rl.client.Pipeline()

	// member carries a uuid suffix so same-second attempts stay distinct
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: fmt.Sprintf("%d:%s", now, uuid.NewString())})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, rl.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	attempts := count.Val()

	if attempts > rl.cfg.MaxAttempts {

		oldest, err := rl.client.ZRange(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return false, int(rl.cfg.WindowSize.Seconds()), nil
		}

		var oldestTime int64

		if _, err := fmt.Sscanf(oldest[0], "%d", &oldestTime); err != nil {
			return false, int(rl.cfg.WindowSize.Seconds()), nil
		}

		retryAfter := int64(rl.cfg.WindowSize.Seconds()) - (now - oldestTime)
		if retryAfter < 0 {
			retryAfter = 0
		}

		return false, int(retryAfter), nil
	}

	return true, 0, nil
}
