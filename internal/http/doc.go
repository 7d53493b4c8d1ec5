// Package http provides the HTTP transport for the Furnilytics API client.
//
// This package implements connection pooling, retry logic with exponential
// backoff, response metadata capture, timeout management, context
// propagation, and logging hooks.
//
// Key features:
//   - Connection pooling (configurable idle connections and per-host limits)
//   - Retry logic with exponential backoff and jitter (429, 500, 502, 503, 504)
//   - Response metadata capture (ETag, Cache-Control, Retry-After, X-RateLimit-Reset)
//   - Optional client-side token-bucket rate limiting
//   - Context propagation and cancellation support
//   - API key sanitization in logs
//   - Request/response hooks for interception
//
// The transport never converts an HTTP error status into a Go error: the
// final response is always returned so the caller can classify it. Only
// network-level failures produce an error.
//
// Example usage:
//
//	client := http.NewClient(http.Config{
//	    BaseURL: "https://furnilytics-api.fly.dev",
//	    APIKey:  os.Getenv("FURNILYTICS_API_KEY"),
//	})
//
//	resp, err := client.Get(ctx, "datasets", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
package http
