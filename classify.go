package furnilytics

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	transport "github.com/furnilytics/furnilytics-go/internal/http"
)

// classify turns the transport's final response into exactly one outcome:
// the decoded JSON value, or one *Error.
//
// The status cascade runs in precedence order over the closed ErrorKind
// set: 401, 403, 404, 429, other 4xx, 5xx. Anything else (2xx in practice)
// succeeds only when the body decoded as JSON. Adding a status mapping is a
// one-case change.
func classify(resp *transport.Response) (any, *Error) {
	// Decode once, regardless of status. Error bodies are frequently JSON
	// too and feed the failure messages below.
	var parsed any
	isJSON := json.Unmarshal(resp.Body, &parsed) == nil

	detail := func(def string) string {
		return detailMessage(parsed, isJSON, def)
	}

	fail := func(kind ErrorKind, msg string) (any, *Error) {
		return nil, &Error{
			Kind:       kind,
			Message:    msg,
			StatusCode: resp.Status,
			Meta:       resp.Meta,
		}
	}

	switch {
	case resp.Status == 401:
		return fail(ErrKindAuth, detail("Invalid or missing API key."))
	case resp.Status == 403:
		return fail(ErrKindAuth, detail("Forbidden."))
	case resp.Status == 404:
		return fail(ErrKindNotFound, detail("Resource not found."))
	case resp.Status == 429:
		_, e := fail(ErrKindRateLimit, detail("Rate limit exceeded."))
		e.ResetAt = resp.Meta.ResetHint()
		return nil, e
	case resp.Status >= 400 && resp.Status < 500:
		return fail(ErrKindClient, detail(fmt.Sprintf("Client error (%d).", resp.Status)))
	case resp.Status >= 500 && resp.Status < 600:
		return fail(ErrKindServer, detail(fmt.Sprintf("Server error (%d).", resp.Status)))
	}

	if !isJSON {
		snippet := strings.TrimSpace(string(bodySnippet(resp.Body)))
		if snippet != "" {
			return fail(ErrKindProtocol, fmt.Sprintf("Invalid JSON response (HTTP %d): %s", resp.Status, snippet))
		}
		return fail(ErrKindProtocol, fmt.Sprintf("Invalid JSON response (HTTP %d).", resp.Status))
	}

	return parsed, nil
}

// bodySnippet returns at most the first 200 bytes of raw for error messages.
func bodySnippet(raw []byte) []byte {
	if len(raw) > 200 {
		return raw[:200]
	}
	return raw
}

// detailMessage normalizes an API error body into a friendly string.
//
// Accepted shapes, in order:
//   - {"detail": "..."}
//   - {"detail": {"msg": "..."}}
//   - {"detail": {...}}        -> compact JSON of the detail object
//   - {"message": "..."}
//   - "..."                    -> the bare string body itself
//
// Whitespace-only strings do not count. Anything else falls back to def.
func detailMessage(parsed any, isJSON bool, def string) string {
	if !isJSON {
		return def
	}

	switch body := parsed.(type) {
	case map[string]any:
		switch d := body["detail"].(type) {
		case string:
			if strings.TrimSpace(d) != "" {
				return d
			}
		case map[string]any:
			if msg, ok := d["msg"].(string); ok && strings.TrimSpace(msg) != "" {
				return msg
			}
			// Last resort: compact rendering of the whole detail object.
			if raw, err := json.Marshal(d); err == nil {
				return string(raw)
			}
		}
		if m, ok := body["message"].(string); ok && strings.TrimSpace(m) != "" {
			return m
		}
	case string:
		if strings.TrimSpace(body) != "" {
			return body
		}
	}

	return def
}
