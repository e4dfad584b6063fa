package registry

import (
	"time"

	"github.com/ovis-hpc/maestro/v1/observability"
)

// observeOperation notifies the observer about a completed operation if
// one is configured. The client itself never logs; observers are the
// only diagnostics channel.
//
// Notes:
//   - resource: the schema id, name, or digest the operation addressed
//   - size: result entry count for list operations, 0 otherwise
func (c *Client) observeOperation(operation, resource string, duration time.Duration, err error, size int64) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "schema_registry",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
		Size:      size,
	})
}
