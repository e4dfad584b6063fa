package registry

import (
	"errors"

	"github.com/ovis-hpc/maestro/v1/vtype"
)

// Common registry client errors
var (
	// ErrInvalidType is returned when a schema contains a type tag that
	// is not representable on the wire.
	ErrInvalidType = vtype.ErrInvalidType

	// ErrInvalidFormat is returned for malformed JSON shapes: missing
	// required keys, wrong-typed values, or a record-array referencing a
	// record type that has not been defined yet.
	ErrInvalidFormat = errors.New("registry: invalid format")

	// ErrInvalidResponse is returned when the server reply is well-formed
	// JSON but semantically wrong, e.g. a delete acknowledgment naming a
	// different schema id.
	ErrInvalidResponse = errors.New("registry: invalid response")

	// ErrInvalidArgument is returned when the caller supplied an
	// ambiguous or missing required parameter.
	ErrInvalidArgument = errors.New("registry: invalid argument")

	// ErrNotFound is returned when the server explicitly reports that
	// the requested resource does not exist.
	ErrNotFound = errors.New("registry: not found")

	// ErrOutOfMemory is returned when a response buffer cannot grow past
	// its configured limit.
	ErrOutOfMemory = errors.New("registry: out of memory")

	// ErrTransport wraps opaque HTTP executor failures, including
	// connect and TLS errors and unexpected HTTP status codes.
	ErrTransport = errors.New("registry: transport error")
)

// IsNotFound checks if the error is a "resource does not exist" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidFormat checks if the error is a malformed-wire-form error.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsInvalidResponse checks if the error is a semantically-wrong-response
// error.
func IsInvalidResponse(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}

// IsTransport checks if the error originated in the HTTP transport.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
