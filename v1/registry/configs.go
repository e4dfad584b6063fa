package registry

import (
	"fmt"
	"strings"
	"time"
)

// Config holds configuration for the schema registry client.
type Config struct {
	// URLs is the ordered list of registry base URLs
	// (e.g. "https://head1:8080"). More than one entry provides
	// availability: on a connect failure the client retries the call
	// against the next URL in round-robin order.
	URLs []string

	// CACert is an optional path to a CA certificate (PEM) used to
	// verify the registry's TLS certificate. Useful for self-signed
	// deployments. Leave empty to use the system roots.
	CACert string

	// Timeout for HTTP requests.
	// Default: 10 seconds.
	Timeout time.Duration

	// MaxResponseSize caps the buffered response body in bytes.
	// Default: 0 (unlimited).
	MaxResponseSize int
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if len(c.URLs) == 0 {
		return fmt.Errorf("registry: at least one URL is required: %w", ErrInvalidArgument)
	}
	for _, u := range c.URLs {
		if u == "" {
			return fmt.Errorf("registry: empty URL: %w", ErrInvalidArgument)
		}
	}
	return nil
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Timeout == 0 {
		out.Timeout = 10 * time.Second
	}
	// Trailing slashes would double up with the resource paths.
	urls := make([]string, len(out.URLs))
	for i, u := range out.URLs {
		urls[i] = strings.TrimRight(u, "/")
	}
	out.URLs = urls
	return out
}
