package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ovis-hpc/maestro/v1/metricschema"
	"github.com/ovis-hpc/maestro/v1/observability"
)

// Registry provides an interface for interacting with a Maestro schema
// registry. Every call is a single synchronous HTTP round trip.
type Registry interface {
	// Add uploads a schema definition and returns its registry id.
	Add(ctx context.Context, sch *metricschema.Schema) (string, error)

	// Get retrieves a schema definition by its id.
	Get(ctx context.Context, id string) (*metricschema.Schema, error)

	// Delete removes a schema by id and verifies the server's
	// acknowledgment names the same id.
	Delete(ctx context.Context, id string) error

	// ListNames lists all schema names known to the registry.
	ListNames(ctx context.Context) ([]string, error)

	// ListDigests lists all schema content digests known to the registry.
	ListDigests(ctx context.Context) ([]metricschema.Digest, error)

	// ListIDs lists schema ids by name or by digest. Exactly one of the
	// two selectors must be supplied.
	ListIDs(ctx context.Context, name string, digest *metricschema.Digest) ([]string, error)

	// ListVersions is an alias for ListIDs kept for parity with other
	// registry clients.
	ListVersions(ctx context.Context, name string, digest *metricschema.Digest) ([]string, error)
}

// Client is the default implementation of Registry that communicates
// with the schema registry over HTTP/HTTPS.
//
// The URL list and CA certificate are immutable after construction. The
// URL cursor is guarded by a mutex, so a single Client is safe for
// concurrent use.
type Client struct {
	urls    []string
	maxResp int
	exec    Executor

	// cursor over urls; advanced on connect-level failures only
	mu  sync.Mutex
	idx int

	observer observability.Observer
}

// NewClient creates a new schema registry client.
// Returns the concrete *Client type.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	exec, err := newHTTPExecutor(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		urls:    cfg.URLs,
		maxResp: cfg.MaxResponseSize,
		exec:    exec,
	}, nil
}

// WithExecutor replaces the HTTP executor. Intended for tests and for
// callers that need custom transport behavior. Returns the client for
// chaining.
func (c *Client) WithExecutor(exec Executor) *Client {
	c.exec = exec
	return c
}

// WithObserver attaches an observer that is notified after every
// operation. Returns the client for chaining.
func (c *Client) WithObserver(obs observability.Observer) *Client {
	c.observer = obs
	return c
}

func (c *Client) newResponseBuffer() *buffer {
	if c.maxResp > 0 {
		return newBufferLimit(c.maxResp)
	}
	return newBuffer()
}

// request performs one registry call, trying each configured URL at most
// once. The cursor advances past URLs that fail at the connect level, so
// later calls start from the last known-good server. Completed requests
// with a bad status, sink failures, and context cancellation are
// terminal.
func (c *Client) request(ctx context.Context, method, path string, body []byte) (*buffer, error) {
	n := len(c.urls)
	var lastErr error
	for try := 0; try < n; try++ {
		c.mu.Lock()
		base := c.urls[c.idx]
		c.mu.Unlock()

		b := c.newResponseBuffer()
		err := c.exec.Do(ctx, method, base+path, body, b)
		if err == nil {
			return b, nil
		}
		lastErr = err

		var se *statusError
		if !IsTransport(err) || errors.As(err, &se) || ctx.Err() != nil {
			return nil, err
		}

		c.mu.Lock()
		c.idx = (c.idx + 1) % n
		c.mu.Unlock()
	}
	return nil, lastErr
}

// Add encodes the schema, POSTs it to the registry, and returns the id
// assigned by the server. A response that is not an object carrying a
// string "id" fails with ErrInvalidResponse.
func (c *Client) Add(ctx context.Context, sch *metricschema.Schema) (id string, err error) {
	start := time.Now()
	defer func() { c.observeOperation("add", sch.Name(), time.Since(start), err, 0) }()

	body, err := EncodeSchema(sch)
	if err != nil {
		return "", err
	}
	// Additions post to the registry base; the /schemas resource is
	// implicit.
	b, err := c.request(ctx, http.MethodPost, "", body)
	if err != nil {
		return "", err
	}

	var resp struct {
		ID *string `json:"id"`
	}
	if uerr := json.Unmarshal(b.Bytes(), &resp); uerr != nil || resp.ID == nil {
		return "", fmt.Errorf("add schema %q: response lacks a string id: %w",
			sch.Name(), ErrInvalidResponse)
	}
	return *resp.ID, nil
}

// Get retrieves the schema stored under id and decodes it.
func (c *Client) Get(ctx context.Context, id string) (sch *metricschema.Schema, err error) {
	start := time.Now()
	defer func() { c.observeOperation("get", id, time.Since(start), err, 0) }()

	b, err := c.request(ctx, http.MethodGet, "/schemas/ids/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return DecodeSchema(b.Bytes())
}

// Delete removes the schema stored under id. The server acknowledges
// with a JSON array whose first element is the deleted id; any mismatch
// or different shape fails with ErrInvalidResponse.
func (c *Client) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { c.observeOperation("delete", id, time.Since(start), err, 0) }()

	b, err := c.request(ctx, http.MethodDelete, "/schemas/ids/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	var ack []json.RawMessage
	if uerr := json.Unmarshal(b.Bytes(), &ack); uerr != nil || len(ack) == 0 {
		return fmt.Errorf("delete %q: acknowledgment is not a non-empty array: %w",
			id, ErrInvalidResponse)
	}
	var got string
	if uerr := json.Unmarshal(ack[0], &got); uerr != nil {
		return fmt.Errorf("delete %q: acknowledgment element is not a string: %w",
			id, ErrInvalidResponse)
	}
	if got != id {
		return fmt.Errorf("delete %q: server acknowledged %q instead: %w",
			id, got, ErrInvalidResponse)
	}
	return nil
}

// ListNames lists all schema names known to the registry.
func (c *Client) ListNames(ctx context.Context) (names []string, err error) {
	start := time.Now()
	defer func() { c.observeOperation("list_names", "", time.Since(start), err, int64(len(names))) }()

	b, err := c.request(ctx, http.MethodGet, "/names", nil)
	if err != nil {
		return nil, err
	}
	return decodeStringArray(b.Bytes())
}

// ListDigests lists all schema content digests known to the registry.
func (c *Client) ListDigests(ctx context.Context) (digests []metricschema.Digest, err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("list_digests", "", time.Since(start), err, int64(len(digests)))
	}()

	b, err := c.request(ctx, http.MethodGet, "/digests", nil)
	if err != nil {
		return nil, err
	}
	strs, err := decodeStringArray(b.Bytes())
	if err != nil {
		return nil, err
	}
	digests = make([]metricschema.Digest, len(strs))
	for i, s := range strs {
		d, derr := metricschema.ParseDigest(s)
		if derr != nil {
			return nil, fmt.Errorf("digest %d: %v: %w", i, derr, ErrInvalidFormat)
		}
		digests[i] = d
	}
	return digests, nil
}

// ListIDs lists the schema ids registered under a name or under a
// content digest. Exactly one selector must be supplied; anything else
// fails with ErrInvalidArgument. A JSON null response means the name or
// digest is unknown and fails with ErrNotFound.
func (c *Client) ListIDs(ctx context.Context, name string, digest *metricschema.Digest) (ids []string, err error) {
	start := time.Now()

	var path, resource string
	switch {
	case name != "" && digest != nil:
		return nil, fmt.Errorf("list ids: name and digest are mutually exclusive: %w",
			ErrInvalidArgument)
	case name != "":
		path = "/names/" + url.PathEscape(name) + "/versions"
		resource = name
	case digest != nil:
		resource = digest.String()
		path = "/digests/" + resource + "/versions"
	default:
		return nil, fmt.Errorf("list ids: name or digest is required: %w", ErrInvalidArgument)
	}

	defer func() { c.observeOperation("list_ids", resource, time.Since(start), err, int64(len(ids))) }()

	b, err := c.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if isJSONNull(b.Bytes()) {
		return nil, fmt.Errorf("list ids %q: %w", resource, ErrNotFound)
	}
	return decodeStringArray(b.Bytes())
}

// ListVersions is an alias for ListIDs.
func (c *Client) ListVersions(ctx context.Context, name string, digest *metricschema.Digest) ([]string, error) {
	return c.ListIDs(ctx, name, digest)
}
