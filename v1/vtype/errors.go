package vtype

import "errors"

// ErrInvalidType is returned when a wire name does not resolve to a known
// value type, or when a type tag is not representable on the wire.
var ErrInvalidType = errors.New("vtype: invalid type")

// IsInvalidType checks if the error is an invalid-type error.
func IsInvalidType(err error) bool {
	return errors.Is(err, ErrInvalidType)
}
