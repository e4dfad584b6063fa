package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeStringArray parses a JSON array of strings, the shape shared by
// the name, digest, and id list responses. Anything that is not an array
// of strings fails with ErrInvalidFormat. The result is allocated once
// at its final length.
func decodeStringArray(data []byte) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("result list: %v: %w", err, ErrInvalidFormat)
	}
	if raw == nil {
		// JSON null unmarshals into a nil slice without error.
		return nil, fmt.Errorf("result list: not an array: %w", ErrInvalidFormat)
	}
	out := make([]string, len(raw))
	for i, el := range raw {
		if err := json.Unmarshal(el, &out[i]); err != nil {
			return nil, fmt.Errorf("result list element %d: not a string: %w",
				i, ErrInvalidFormat)
		}
	}
	return out, nil
}

// isJSONNull reports whether data is the JSON null literal.
func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
