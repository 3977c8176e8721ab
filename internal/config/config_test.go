package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Creates a temporary YAML config file in a temporary directory.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to write temporary config file")

	return configPath
}

func TestLoadConfigFromPath(t *testing.T) {
	validYAML := `
env: "test"
http_server:
  address: ":8081"
mailer:
  SENDGRID_API_KEY: "sg_test_123"
  MAIL_FROM_EMAIL: "noreply@example.com"
  MAIL_FROM_NAME: "Test Storefront"
  MAIL_INBOX_EMAIL: "sales@example.com"
redis:
  REDIS_ADDR: "redishost:6380"
  REDIS_USER: "redisuser"
  REDIS_PASSWORD: "redispassword"
  REDIS_DB: 1
rateConfig:
  MAX_ATTEMPTS: 10
  WINDOW_SIZE: "30s"
cartStorage:
  CART_STORAGE_PATH: "/tmp/cart.json"
  CART_STORAGE_KEY: "cart"
cors:
  CORS_ALLOWED_ORIGINS: ["https://example.com"]
`
	resetEnv := func() {
		os.Unsetenv("CONFIG_PATH")
		os.Unsetenv("ENV")
		os.Unsetenv("REDIS_ADDR")
		os.Unsetenv("SENDGRID_API_KEY")
	}

	// Verifies values from YAML are loaded correctly
	t.Run("Load from file", func(t *testing.T) {
		resetEnv()

		configPath := createTempConfigFile(t, validYAML)

		cfg, err := LoadConfigFromPath(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, ":8081", cfg.HTTPServer.Addr)
		assert.Equal(t, "sg_test_123", cfg.Mailer.APIKey)
		assert.Equal(t, "sales@example.com", cfg.Mailer.InboxEmail)
		assert.Equal(t, "redisuser", cfg.RedisConnect.Username)
		assert.Equal(t, int64(10), cfg.RateConfig.MaxAttempts)
		assert.Equal(t, 30*time.Second, cfg.RateConfig.WindowSize)
		assert.Equal(t, "/tmp/cart.json", cfg.CartStorage.Path)
		assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowedOrigins)
	})

	// Verifies envs override the YAML values
	t.Run("Environment variable override", func(t *testing.T) {
		resetEnv()

		configPath := createTempConfigFile(t, validYAML)

		t.Setenv("ENV", "production")
		t.Setenv("REDIS_ADDR", "prod-redis:6379")
		t.Setenv("SENDGRID_API_KEY", "sg_prod_456")

		cfg, err := LoadConfigFromPath(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "prod-redis:6379", cfg.RedisConnect.Addr)
		assert.Equal(t, "sg_prod_456", cfg.Mailer.APIKey)
	})

	t.Run("Defaults applied when section omitted", func(t *testing.T) {
		resetEnv()

		minimalYAML := `
env: "test-defaults"
mailer:
  SENDGRID_API_KEY: "sg_test_123"
  MAIL_FROM_EMAIL: "noreply@example.com"
  MAIL_INBOX_EMAIL: "sales@example.com"
`
		configPath := createTempConfigFile(t, minimalYAML)

		cfg, err := LoadConfigFromPath(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, ":5000", cfg.HTTPServer.Addr)
		assert.Equal(t, "Swamy Slabs", cfg.Mailer.FromName)
		assert.Equal(t, int64(5), cfg.RateConfig.MaxAttempts)
		assert.Equal(t, 15*time.Second, cfg.RateConfig.WindowSize)
		assert.Equal(t, "cart.json", cfg.CartStorage.Path)
		assert.Equal(t, "cart", cfg.CartStorage.Key)
	})
}
