package furnilytics

import (
	"context"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	transport "github.com/furnilytics/furnilytics-go/internal/http"
	"github.com/furnilytics/furnilytics-go/internal/version"
)

// DefaultBaseURL is the production Furnilytics API endpoint.
const DefaultBaseURL = "https://furnilytics-api.fly.dev"

// Client is a Furnilytics API client. Its configuration is fixed at
// construction time and it holds no mutable state, so it is safe for
// concurrent use.
//
// An API key is optional: public datasets work anonymously, paid/pro
// datasets require one.
type Client struct {
	transport *transport.Client
}

// Option configures a Client.
type Option func(*options)

type options struct {
	apiKey    string
	baseURL   string
	timeout   time.Duration
	userAgent string
	rateLimit float64
	burst     int
	logger    *log.Logger
}

// WithAPIKey sets the API key explicitly. When not set, the client falls
// back to the FURNILYTICS_API_KEY environment variable.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithBaseURL overrides the API base URL (default: DefaultBaseURL).
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTimeout sets the per-request timeout (default: 20s).
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithRateLimit enables a client-side token bucket in requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) {
		o.rateLimit = rps
		o.burst = burst
	}
}

// WithLogger enables debug logging of requests and responses. API keys are
// sanitized before they reach the log.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a Furnilytics client.
func New(opts ...Option) *Client {
	o := options{
		baseURL:   DefaultBaseURL,
		userAgent: "furnilytics-go/" + version.Version(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.apiKey == "" {
		o.apiKey = os.Getenv("FURNILYTICS_API_KEY")
	}

	return &Client{
		transport: transport.NewClient(transport.Config{
			BaseURL:   o.baseURL,
			APIKey:    o.apiKey,
			UserAgent: o.userAgent,
			Timeout:   o.timeout,
			RateLimit: o.rateLimit,
			Burst:     o.burst,
			Logger:    o.logger,
		}),
	}
}

// GetJSON issues a GET against path and returns the decoded JSON value and
// the diagnostic snapshot for the exchange. Most callers want the typed
// methods below; this is the raw escape hatch.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values) (any, Meta, error) {
	resp, err := c.transport.Get(ctx, path, params)
	if err != nil {
		return nil, Meta{}, transportError(err)
	}

	value, apiErr := classify(resp)
	if apiErr != nil {
		return nil, resp.Meta, apiErr
	}
	return value, resp.Meta, nil
}

// Health returns the API liveness payload from /health.
func (c *Client) Health(ctx context.Context) (map[string]any, Meta, error) {
	value, meta, err := c.GetJSON(ctx, "health", nil)
	if err != nil {
		return nil, meta, err
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, meta, &Error{
			Kind:       ErrKindProtocol,
			Message:    "Unexpected response shape",
			StatusCode: meta.Status,
			Meta:       meta,
		}
	}
	return obj, meta, nil
}

// Datasets returns the dataset catalog from /datasets as a table. Each row
// carries at least id, visibility, topic and subtopic.
func (c *Client) Datasets(ctx context.Context) (*Table, error) {
	return c.getTable(ctx, "datasets", nil)
}

// Metadata returns the metadata listing from /metadata as a table.
func (c *Client) Metadata(ctx context.Context) (*Table, error) {
	return c.getTable(ctx, "metadata", nil)
}

// DatasetMeta is the descriptor returned by /metadata/{id}. Meta and Schema
// are endpoint-defined documents and are kept as raw JSON.
type DatasetMeta struct {
	ID     string          `json:"id"`
	Meta   json.RawMessage `json:"meta"`
	Schema json.RawMessage `json:"schema"`
}

// MetadataOne returns the descriptor for a single dataset id.
func (c *Client) MetadataOne(ctx context.Context, datasetID string) (*DatasetMeta, error) {
	value, meta, err := c.GetJSON(ctx, "metadata/"+escapeID(datasetID), nil)
	if err != nil {
		return nil, err
	}

	// Round-trip through JSON to pick up the typed fields.
	raw, mErr := json.Marshal(value)
	if mErr != nil {
		return nil, &Error{Kind: ErrKindProtocol, Message: "Unexpected response shape", StatusCode: meta.Status, Meta: meta}
	}
	var dm DatasetMeta
	if uErr := json.Unmarshal(raw, &dm); uErr != nil {
		return nil, &Error{Kind: ErrKindProtocol, Message: "Unexpected response shape", StatusCode: meta.Status, Meta: meta}
	}
	return &dm, nil
}

// DataOptions are the optional server-side filters for Data.
type DataOptions struct {
	// Frm and To bound the date range, formatted YYYY-MM-DD. Empty values
	// are omitted from the request.
	Frm string
	To  string

	// Limit caps the number of rows (server ceiling ~20000). The value is
	// passed through unmodified — zero and negative limits are sent as-is
	// and rejected or ignored by the server, not the client.
	Limit *int
}

// Limit is a convenience for building a DataOptions.Limit pointer.
func Limit(n int) *int { return &n }

// Data returns data rows for one dataset id from /data/{id}.
func (c *Client) Data(ctx context.Context, datasetID string, opts DataOptions) (*Table, error) {
	params := url.Values{}
	if opts.Frm != "" {
		params.Set("frm", opts.Frm)
	}
	if opts.To != "" {
		params.Set("to", opts.To)
	}
	if opts.Limit != nil {
		params.Set("limit", strconv.Itoa(*opts.Limit))
	}

	return c.getTable(ctx, "data/"+escapeID(datasetID), params)
}

// getTable fetches path and normalizes the payload into a row table.
func (c *Client) getTable(ctx context.Context, path string, params url.Values) (*Table, error) {
	value, meta, err := c.GetJSON(ctx, path, params)
	if err != nil {
		return nil, err
	}

	rows, rErr := rowsFrom(value, meta)
	if rErr != nil {
		return nil, rErr
	}

	t := NewTable(rows)
	t.Meta = meta
	return t, nil
}

// rowsFrom applies the shape-normalization rule: a bare array is the row
// collection; an object with a "data" key wraps the row collection; any
// other shape is a protocol fault.
func rowsFrom(value any, meta Meta) ([]map[string]any, *Error) {
	shapeErr := &Error{
		Kind:       ErrKindProtocol,
		Message:    "Unexpected response shape",
		StatusCode: meta.Status,
		Meta:       meta,
	}

	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case map[string]any:
		wrapped, ok := v["data"]
		if !ok {
			return nil, shapeErr
		}
		items, ok = wrapped.([]any)
		if !ok {
			return nil, shapeErr
		}
	default:
		return nil, shapeErr
	}

	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, shapeErr
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// escapeID trims stray slashes from a dataset id and escapes each path
// segment. Dataset ids contain slashes by design
// (e.g. "macro_economics/prices/eu_hicp_energy"), so the separators are
// preserved and only the segments are escaped.
func escapeID(id string) string {
	segments := strings.Split(strings.Trim(id, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
