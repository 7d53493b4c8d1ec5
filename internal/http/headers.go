package http

import (
	"net/http"
)

// Meta is a diagnostic snapshot of a single request/response exchange.
// It travels with every Response and every classified error instead of
// living in a shared "last response" slot, so a client can be used from
// multiple goroutines without external locking.
type Meta struct {
	Method    string `json:"method"`
	URL       string `json:"url"`
	RequestID string `json:"request_id"`
	Status    int    `json:"status"`
	Attempts  int    `json:"attempts"` // total attempts made, including the first

	// Selected response headers, kept verbatim. RateLimitReset mixes two
	// server conventions (epoch timestamp vs. seconds-to-wait) and is
	// deliberately left unparsed.
	ETag           string `json:"etag,omitempty"`
	CacheControl   string `json:"cache_control,omitempty"`
	RetryAfter     string `json:"retry_after,omitempty"`
	RateLimitReset string `json:"rate_limit_reset,omitempty"`
}

// ResetHint returns the rate-limit reset hint for a 429 response:
// X-RateLimit-Reset when present, otherwise Retry-After, otherwise "".
// The value is opaque; units are server-defined.
func (m Meta) ResetHint() string {
	if m.RateLimitReset != "" {
		return m.RateLimitReset
	}
	return m.RetryAfter
}

// parseMeta extracts the diagnostic snapshot from response headers.
func parseMeta(method, url, requestID string, status, attempts int, headers http.Header) Meta {
	return Meta{
		Method:         method,
		URL:            url,
		RequestID:      requestID,
		Status:         status,
		Attempts:       attempts,
		ETag:           headers.Get("ETag"),
		CacheControl:   headers.Get("Cache-Control"),
		RetryAfter:     headers.Get("Retry-After"),
		RateLimitReset: headers.Get("X-RateLimit-Reset"),
	}
}

// sanitizeAPIKey masks sensitive parts of an API key for logging.
// Shows first 3 characters and last 4 characters, masks the rest.
func sanitizeAPIKey(key string) string {
	if key == "" {
		return ""
	}

	keyLen := len(key)

	if keyLen <= 6 {
		return "***"
	}

	if keyLen <= 10 {
		return key[:2] + "***" + key[keyLen-2:]
	}

	return key[:3] + "***" + key[keyLen-4:]
}
