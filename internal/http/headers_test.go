package http

import (
	"net/http"
	"testing"
)

func TestParseMeta(t *testing.T) {
	headers := http.Header{}
	headers.Set("ETag", `"v42"`)
	headers.Set("Cache-Control", "no-store")
	headers.Set("Retry-After", "15")
	headers.Set("X-RateLimit-Reset", "1700000000")

	meta := parseMeta("GET", "https://example.com/datasets", "req-1", 200, 2, headers)

	if meta.Method != "GET" || meta.URL != "https://example.com/datasets" {
		t.Errorf("method/url = %q %q", meta.Method, meta.URL)
	}
	if meta.RequestID != "req-1" {
		t.Errorf("RequestID = %q", meta.RequestID)
	}
	if meta.Status != 200 || meta.Attempts != 2 {
		t.Errorf("status/attempts = %d/%d", meta.Status, meta.Attempts)
	}
	if meta.ETag != `"v42"` || meta.CacheControl != "no-store" {
		t.Errorf("etag/cache-control = %q %q", meta.ETag, meta.CacheControl)
	}
	if meta.RetryAfter != "15" || meta.RateLimitReset != "1700000000" {
		t.Errorf("retry-after/reset = %q %q", meta.RetryAfter, meta.RateLimitReset)
	}
}

func TestMetaResetHint(t *testing.T) {
	tests := []struct {
		name  string
		reset string
		retry string
		want  string
	}{
		{"prefers X-RateLimit-Reset", "1700000000", "30", "1700000000"},
		{"falls back to Retry-After", "", "30", "30"},
		{"absent", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Meta{RateLimitReset: tt.reset, RetryAfter: tt.retry}
			if got := m.ResetHint(); got != tt.want {
				t.Errorf("ResetHint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"short", "***"},
		{"eightchr", "ei***hr"},
		{"fk-1234567890abcdef", "fk-***cdef"},
	}

	for _, tt := range tests {
		if got := sanitizeAPIKey(tt.key); got != tt.want {
			t.Errorf("sanitizeAPIKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
