package registry

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Executor performs a single HTTP round trip and streams the response
// body into sink. It is the transport boundary of the client: everything
// above it only sees bytes in, bytes out, or an error.
//
// Implementations must write response bytes to sink as they arrive and
// return any sink write error unchanged.
type Executor interface {
	Do(ctx context.Context, method, url string, body []byte, sink io.Writer) error
}

// statusError is a completed HTTP exchange with a non-2xx status. It
// wraps ErrTransport but is terminal: the request reached a live server,
// so the client does not fail over to another URL for it.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("registry: server returned status %d: %s", e.code, e.body)
}

func (e *statusError) Unwrap() error {
	return ErrTransport
}

type httpExecutor struct {
	client *http.Client
}

func newHTTPExecutor(cfg Config) (*httpExecutor, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.CACert != "" {
		pem, err := os.ReadFile(cfg.CACert)
		if err != nil {
			return nil, fmt.Errorf("registry: reading CA cert %q: %w", cfg.CACert, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("registry: no certificates found in %q", cfg.CACert)
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool}
	}
	return &httpExecutor{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}, nil
}

func (e *httpExecutor) Do(ctx context.Context, method, url string, body []byte, sink io.Writer) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return fmt.Errorf("registry: building request: %v: %w", err, ErrTransport)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("registry: %s %s: %v: %w", method, url, err, ErrTransport)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{code: resp.StatusCode, body: string(msg)}
	}

	if _, err := io.Copy(sink, resp.Body); err != nil {
		// Sink errors (e.g. a buffer limit) propagate unchanged.
		return err
	}
	return nil
}
