package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
		assert.Equal(t, 500*time.Millisecond, cfg.Catalog.FetchDelay)
		assert.Equal(t, 100, cfg.Catalog.CacheSize)
		assert.Equal(t, 5*time.Minute, cfg.Catalog.CacheTTL)
		assert.Equal(t, 5, cfg.Catalog.CircuitBreakerFailureThreshold)
		assert.Equal(t, 1500*time.Millisecond, cfg.Orders.SubmitDelay)
		assert.Equal(t, "es", cfg.Orders.Locale)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		_ = os.Setenv("CATALOG_FETCH_DELAY", "0s")
		_ = os.Setenv("CATALOG_CACHE_SIZE", "50")
		_ = os.Setenv("CATALOG_CACHE_TTL", "10m")
		_ = os.Setenv("ORDER_SUBMIT_DELAY", "2s")
		_ = os.Setenv("LOCALE", "en")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
		assert.Equal(t, time.Duration(0), cfg.Catalog.FetchDelay)
		assert.Equal(t, 50, cfg.Catalog.CacheSize)
		assert.Equal(t, 10*time.Minute, cfg.Catalog.CacheTTL)
		assert.Equal(t, 2*time.Second, cfg.Orders.SubmitDelay)
		assert.Equal(t, "en", cfg.Orders.Locale)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CATALOG_CACHE_SIZE", "invalid")
		_ = os.Setenv("LOG_PRETTY", "invalid")
		_ = os.Setenv("ORDER_SUBMIT_DELAY", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Catalog.CacheSize)
		assert.False(t, cfg.Log.Pretty)
		assert.Equal(t, 1500*time.Millisecond, cfg.Orders.SubmitDelay)
	})
}
