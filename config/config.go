// Package config resolves the Furnilytics client configuration from the
// environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://furnilytics-api.fly.dev"

// DefaultTimeout is the per-request timeout.
const DefaultTimeout = 20 * time.Second

// Config holds the resolved client configuration.
type Config struct {
	// APIKey is optional; public datasets work without it.
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Load resolves configuration in priority order:
//  1. Process environment variables
//  2. A .env file in the working directory (best effort)
//  3. Built-in defaults
//
// Recognized variables: FURNILYTICS_API_KEY, FURNILYTICS_BASE_URL,
// FURNILYTICS_TIMEOUT (seconds). An unparseable timeout falls back to the
// default rather than failing the load.
func Load() Config {
	// godotenv never overrides variables already present in the process
	// environment, which gives us the priority order above for free. A
	// missing .env file is not an error.
	_ = godotenv.Load()

	cfg := Config{
		APIKey:  os.Getenv("FURNILYTICS_API_KEY"),
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}

	if base := os.Getenv("FURNILYTICS_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	if raw := os.Getenv("FURNILYTICS_TIMEOUT"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}
