package observability

import "time"

// Observer is a unified interface for observing operations performed by
// the maestro client packages without coupling them to a specific
// metrics, tracing, or logging implementation.
//
// This interface is optional - packages work fine without an observer.
type Observer interface {
	// ObserveOperation is called when an operation completes.
	ObserveOperation(ctx OperationContext)
}

// OperationContext contains all information about a completed operation.
type OperationContext struct {
	// Component identifies which package performed the operation.
	// Example: "schema_registry"
	Component string

	// Operation describes what was performed.
	// Examples: "add", "get", "delete", "list_names", "list_digests",
	// "list_ids"
	Operation string

	// Resource identifies the primary resource being operated on, such
	// as a schema id, name, or digest string (optional).
	Resource string

	// Duration is how long the operation took from start to completion.
	Duration time.Duration

	// Error is the error returned by the operation, if any.
	Error error

	// Size represents the size of data involved in the operation
	// (optional). For registry operations this is the response body size
	// in bytes or the number of result entries.
	Size int64

	// Metadata provides additional operation-specific information
	// (optional).
	Metadata map[string]interface{}
}
