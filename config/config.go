// Package config provides configuration management for the storefront core.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Log     LogConfig
	Catalog CatalogConfig
	Orders  OrdersConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CatalogConfig holds catalog data-source and cache configuration.
type CatalogConfig struct {
	// FetchDelay simulates the latency of a backend catalog call.
	FetchDelay time.Duration
	CacheSize  int
	CacheTTL   time.Duration
	// CircuitBreaker configuration for the repository wrapper.
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// OrdersConfig holds order-form configuration.
type OrdersConfig struct {
	// SubmitDelay simulates the latency of a backend order submission.
	SubmitDelay time.Duration
	// Locale selects the language of user-facing messages.
	Locale string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Catalog: CatalogConfig{
			FetchDelay:                     getEnvDuration("CATALOG_FETCH_DELAY", 500*time.Millisecond),
			CacheSize:                      getEnvInt("CATALOG_CACHE_SIZE", 100),
			CacheTTL:                       getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Orders: OrdersConfig{
			SubmitDelay: getEnvDuration("ORDER_SUBMIT_DELAY", 1500*time.Millisecond),
			Locale:      getEnv("LOCALE", "es"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
