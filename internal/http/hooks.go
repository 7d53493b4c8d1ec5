package http

import (
	"net/http"
	"time"
)

// BeforeRequestHook is called before each HTTP request attempt, including
// retries. If the hook returns an error, the request is aborted and the
// error is returned to the caller. The request can be modified in place.
type BeforeRequestHook func(req *http.Request) error

// AfterResponseHook is called after each response is received, including
// responses that will be retried. The response body must not be consumed.
// A returned error is ignored.
type AfterResponseHook func(req *http.Request, resp *http.Response) error

// OnRetryHook is called before each retry delay. It receives the upcoming
// attempt number (1-indexed) and the delay about to be applied. If the hook
// returns an error, the retry is aborted and the error is returned.
type OnRetryHook func(req *http.Request, attempt int, delay time.Duration) error

// Response is the transport's result envelope: the final response body,
// status, and the diagnostic metadata snapshot for the exchange.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
	Meta   Meta
}
