package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Client is the retrying GET transport used by the Furnilytics client.
// All fields are set at construction time and never mutated, so a Client
// is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	config     Config
}

// NewClient creates a new transport with the given configuration.
// Default values are applied to zero-valued config fields.
func NewClient(cfg Config) *Client {
	cfg.setDefaults()

	transport := &http.Transport{
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		limiter: limiter,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		config:  cfg,
	}
}

// Get issues a GET request for path with optional query parameters and
// returns the final response, retrying transient statuses along the way.
//
// The request is enriched with:
//   - User-Agent and Accept: application/json headers
//   - X-API-Key header (only when an API key is configured)
//   - X-Request-ID header (fresh UUID per call, shared across retries)
//
// Retry behavior:
//   - Retries on 429, 500, 502, 503, 504 up to Retry.MaxAttempts total attempts
//   - Does NOT retry network errors or context cancellation
//   - A still-failing final status is returned as a Response, not an error
//
// Hooks run in this order on each attempt: BeforeRequest, the HTTP request
// itself, AfterResponse, then OnRetry before the backoff delay if a retry
// is due.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	fullURL := c.baseURL + "/" + strings.Trim(path, "/")
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	requestID := uuid.NewString()

	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit wait: %w", err)
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}

		req.Header.Set("User-Agent", c.config.UserAgent)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", requestID)
		if c.config.APIKey != "" {
			req.Header.Set("X-API-Key", c.config.APIKey)
		}

		if c.config.BeforeRequest != nil {
			if err := c.config.BeforeRequest(req); err != nil {
				return nil, err
			}
		}

		if c.config.Logger != nil {
			c.logRequest(req, attempt)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Network-level failure: no status to classify, nothing to retry.
			return nil, fmt.Errorf("GET %s: %w", fullURL, err)
		}

		if c.config.AfterResponse != nil {
			c.config.AfterResponse(req, resp)
		}

		if c.config.Logger != nil {
			c.logResponse(resp, attempt)
		}

		if retryableStatus(resp.StatusCode) && attempt < c.config.Retry.MaxAttempts-1 {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			delay := calculateBackoff(&c.config.Retry, attempt)

			if c.config.OnRetry != nil {
				if hookErr := c.config.OnRetry(req, attempt+1, delay); hookErr != nil {
					return nil, hookErr
				}
			}

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}

		return &Response{
			Status: resp.StatusCode,
			Header: resp.Header,
			Body:   body,
			Meta:   parseMeta(http.MethodGet, fullURL, requestID, resp.StatusCode, attempt+1, resp.Header),
		}, nil
	}
}

// logRequest logs the outgoing request with a sanitized API key.
func (c *Client) logRequest(req *http.Request, attempt int) {
	key := req.Header.Get("X-API-Key")
	if key != "" {
		key = sanitizeAPIKey(key)
	} else {
		key = "anonymous"
	}

	c.config.Logger.Printf("[HTTP] Request (attempt %d): GET %s [key=%s]",
		attempt+1, req.URL.Path, key)
}

// logResponse logs the response status and rate-limit reset hint if present.
func (c *Client) logResponse(resp *http.Response, attempt int) {
	reset := resp.Header.Get("X-RateLimit-Reset")
	if reset == "" {
		reset = resp.Header.Get("Retry-After")
	}
	if reset != "" {
		reset = " [reset=" + reset + "]"
	}

	c.config.Logger.Printf("[HTTP] Response (attempt %d): %d %s%s",
		attempt+1, resp.StatusCode, resp.Status, reset)
}
