package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"

	"github.com/swamyslabs/storefront/internal/config"
)

// NewHandler builds the /health endpoint: redis reachability plus a static
// check that the mailer is actually configured.
func NewHandler(cfg *config.Config) (http.Handler, error) {

	h, err := health.New(health.WithComponent(health.Component{
		Name:    "storefront-relay",
		Version: "1.0.0",
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create health container: %w", err)
	}

	redisDSN := fmt.Sprintf("redis://%s/%d", cfg.RedisConnect.Addr, cfg.RedisConnect.DB)

	err = h.Register(health.Config{
		Name:      "redis",
		Timeout:   2 * time.Second,
		SkipOnErr: true,
		Check: healthRedis.New(healthRedis.Config{
			DSN: redisDSN,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register redis health check: %w", err)
	}

	err = h.Register(health.Config{
		Name:    "mailer",
		Timeout: time.Second,
		Check: func(ctx context.Context) error {
			if cfg.Mailer.APIKey == "" || cfg.Mailer.InboxEmail == "" {
				return errors.New("mailer is not configured")
			}

			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register mailer health check: %w", err)
	}

	return h.Handler(), nil
}
