package http

import (
	"log"
	"time"
)

// Config configures the HTTP transport behavior.
type Config struct {
	// BaseURL is the base URL for all requests (e.g., "https://furnilytics-api.fly.dev").
	BaseURL string

	// APIKey is the optional Furnilytics API key. When empty, requests are
	// sent anonymously and only public resources are accessible. When set,
	// it is attached to every request as the X-API-Key header.
	APIKey string

	// UserAgent is sent as the User-Agent header on every request.
	UserAgent string

	// Timeout is the maximum time to wait for a single request to complete
	// (default: 20s).
	Timeout time.Duration

	// Connection pool configuration
	MaxIdleConns        int           // Maximum idle connections across all hosts (default: 10)
	MaxIdleConnsPerHost int           // Maximum idle connections per host (default: 10)
	MaxConnsPerHost     int           // Maximum total connections per host (default: 20)
	IdleConnTimeout     time.Duration // How long idle connections stay open (default: 90s)

	// Retry configuration
	Retry RetryConfig

	// RateLimit enables a client-side token bucket when > 0, expressed in
	// requests per second. Burst defaults to 1 when RateLimit is set.
	RateLimit float64
	Burst     int

	// Hooks for request/response interception
	BeforeRequest BeforeRequestHook // Called before each request attempt
	AfterResponse AfterResponseHook // Called after each received response
	OnRetry       OnRetryHook       // Called before each retry delay

	// Logger for debug output (optional).
	// If set, the transport logs request/response details.
	// API keys are sanitized in logs.
	Logger *log.Logger
}

// setDefaults fills in default values for zero-valued fields.
func (c *Config) setDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 20 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "furnilytics-go"
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 10
	}
	if c.MaxIdleConnsPerHost == 0 {
		c.MaxIdleConnsPerHost = 10
	}
	if c.MaxConnsPerHost == 0 {
		c.MaxConnsPerHost = 20
	}
	if c.IdleConnTimeout == 0 {
		c.IdleConnTimeout = 90 * time.Second
	}
	if c.Burst == 0 {
		c.Burst = 1
	}

	c.Retry.setDefaults()
}
