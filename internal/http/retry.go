package http

import (
	"math"
	"math/rand"
	"time"
)

// RetryConfig configures the retry behavior for HTTP requests.
//
// The defaults (4 attempts, 600ms base delay, 2.0 multiplier) reproduce the
// retry schedule of the original Furnilytics clients: roughly 0.6s, 1.2s,
// 2.4s between attempts. Keep them in sync with the server's expectations.
type RetryConfig struct {
	MaxAttempts   int           // Maximum total attempts, including the first (default: 4)
	BaseDelay     time.Duration // Delay before the first retry (default: 600ms)
	MaxDelay      time.Duration // Maximum delay between retries (default: 30s)
	Multiplier    float64       // Backoff multiplier (default: 2.0)
	JitterPercent float64       // Jitter as a fraction of the delay (default: 0.1 = 10%)
}

// setDefaults fills in default values for zero-valued fields.
func (r *RetryConfig) setDefaults() {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 4
	}
	if r.BaseDelay == 0 {
		r.BaseDelay = 600 * time.Millisecond
	}
	if r.MaxDelay == 0 {
		r.MaxDelay = 30 * time.Second
	}
	if r.Multiplier == 0 {
		r.Multiplier = 2.0
	}
	if r.JitterPercent == 0 {
		r.JitterPercent = 0.1
	}
}

// retryableStatus reports whether a status code is considered transient.
//
// Transient statuses:
//   - 429 Too Many Requests
//   - 500 Internal Server Error
//   - 502 Bad Gateway
//   - 503 Service Unavailable
//   - 504 Gateway Timeout
//
// Everything else — including network errors, which have no status — is
// terminal for the retry loop. The transport only issues GETs, so every
// retry is safe to replay.
func retryableStatus(status int) bool {
	switch status {
	case 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}

// calculateBackoff computes the delay before the next retry attempt using
// exponential backoff with jitter.
//
// Formula: delay = min(baseDelay * multiplier^attempt, maxDelay)
// Jitter: delay *= (1 ± jitterPercent)
func calculateBackoff(cfg *RetryConfig, attempt int) time.Duration {
	if cfg.BaseDelay == 0 || cfg.Multiplier == 0 {
		return 0
	}

	delay := float64(cfg.BaseDelay) * math.Pow(cfg.Multiplier, float64(attempt))

	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}

	if cfg.JitterPercent > 0 {
		// rand.Float64() returns [0.0, 1.0); map it to [-jitter, +jitter].
		jitter := (rand.Float64()*2 - 1) * cfg.JitterPercent
		delay = delay * (1 + jitter)

		if delay < 0 {
			delay = 0
		}
		if delay > float64(cfg.MaxDelay) {
			delay = float64(cfg.MaxDelay)
		}
	}

	return time.Duration(delay)
}
