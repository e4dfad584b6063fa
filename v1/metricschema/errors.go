package metricschema

import "errors"

// Common schema builder errors
var (
	// ErrDuplicateName is returned when a field name collides with an
	// existing field in the same schema or record.
	ErrDuplicateName = errors.New("metricschema: duplicate field name")

	// ErrInvalidArgument is returned for empty names, nil records, and
	// non-positive lengths.
	ErrInvalidArgument = errors.New("metricschema: invalid argument")

	// ErrInvalidDigest is returned when parsing a digest string of the
	// wrong length or with non-hex characters.
	ErrInvalidDigest = errors.New("metricschema: invalid digest string")
)

// IsDuplicateName checks if the error is a duplicate-field-name error.
func IsDuplicateName(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}
