package furnilytics

import (
	"errors"
	"fmt"

	transport "github.com/furnilytics/furnilytics-go/internal/http"
)

// ErrorKind identifies one variant of the closed API error taxonomy.
// Every failed call produces exactly one *Error with exactly one kind.
type ErrorKind int

const (
	// ErrKindTransport covers network-level failures: DNS, connection
	// refused, timeout. No HTTP response was available to classify.
	ErrKindTransport ErrorKind = iota

	// ErrKindAuth covers 401 (missing/invalid credentials) and 403
	// (forbidden access to a restricted resource).
	ErrKindAuth

	// ErrKindNotFound covers 404.
	ErrKindNotFound

	// ErrKindRateLimit covers 429. ResetAt carries the server's reset hint.
	ErrKindRateLimit

	// ErrKindClient covers any other 4xx.
	ErrKindClient

	// ErrKindServer covers any 5xx.
	ErrKindServer

	// ErrKindProtocol covers 2xx responses whose body is not valid JSON or
	// whose JSON shape is not one of the accepted forms.
	ErrKindProtocol
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindTransport:
		return "transport"
	case ErrKindAuth:
		return "auth"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindRateLimit:
		return "rate_limit"
	case ErrKindClient:
		return "client"
	case ErrKindServer:
		return "server"
	case ErrKindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the client for failed API
// calls. Use errors.As plus Kind (or the Is* helpers) to branch on the
// failure class.
type Error struct {
	Kind    ErrorKind
	Message string

	// StatusCode is the HTTP status that produced the error, 0 for
	// transport failures.
	StatusCode int

	// ResetAt is the opaque rate-limit reset hint for ErrKindRateLimit:
	// X-RateLimit-Reset when present, otherwise Retry-After. It may be an
	// epoch timestamp or a seconds-to-wait value; the client never parses
	// its units.
	ResetAt string

	// Meta is the diagnostic snapshot for the exchange that failed.
	// Zero-valued for transport failures where no response arrived.
	Meta Meta

	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("furnilytics: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// kindOf extracts the ErrorKind from err, reporting ok=false when err is
// not a furnilytics *Error.
func kindOf(err error) (ErrorKind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsAuth reports whether err is an authentication or authorization failure.
func IsAuth(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrKindAuth
}

// IsNotFound reports whether err means the target resource does not exist.
func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrKindNotFound
}

// IsRateLimited reports whether err is a rate-limit rejection.
func IsRateLimited(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrKindRateLimit
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrKindTransport
}

// transportError wraps a network-level failure from the transport layer.
func transportError(err error) *Error {
	return &Error{
		Kind:    ErrKindTransport,
		Message: err.Error(),
		cause:   err,
	}
}

// Meta is the diagnostic snapshot of a single request/response exchange.
// It is returned alongside values and attached to errors instead of being
// stored in a shared mutable slot.
type Meta = transport.Meta
