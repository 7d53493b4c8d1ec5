package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FURNILYTICS_API_KEY", "")
	t.Setenv("FURNILYTICS_BASE_URL", "")
	t.Setenv("FURNILYTICS_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FURNILYTICS_API_KEY", "fk-env-key")
	t.Setenv("FURNILYTICS_BASE_URL", "https://staging.furnilytics.dev")
	t.Setenv("FURNILYTICS_TIMEOUT", "45")

	cfg := Load()

	assert.Equal(t, "fk-env-key", cfg.APIKey)
	assert.Equal(t, "https://staging.furnilytics.dev", cfg.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	for _, raw := range []string{"abc", "-3", "0", "1.5"} {
		t.Setenv("FURNILYTICS_TIMEOUT", raw)

		cfg := Load()
		assert.Equal(t, DefaultTimeout, cfg.Timeout, "timeout %q", raw)
	}
}
