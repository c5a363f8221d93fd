// Package jsonx decodes the optional JSON text columns of the users table.
package jsonx

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Optional is the outcome of decoding a nullable JSON column.
// Value always holds something usable: the decoded value when the
// column parsed, the caller's default otherwise.
type Optional[T any] struct {
	Value   T
	Present bool
	Err     error
}

// Get returns the decoded value or the default.
func (o Optional[T]) Get() T {
	return o.Value
}

// DecodeOptional parses raw into T. Nil or blank input yields def with
// Present unset. A parse failure yields def together with the error so the
// caller can report it; it is never a reason to fail the request.
func DecodeOptional[T any](raw *string, def T) Optional[T] {
	if raw == nil {
		return Optional[T]{Value: def}
	}
	if trimmed := strings.TrimSpace(*raw); trimmed == "" || trimmed == "null" {
		return Optional[T]{Value: def}
	}

	var value T
	if err := json.Unmarshal([]byte(*raw), &value); err != nil {
		return Optional[T]{Value: def, Err: fmt.Errorf("decode json column: %w", err)}
	}

	return Optional[T]{Value: value, Present: true}
}

// Encode marshals v into the column representation. Nil is returned for
// values the caller considers empty, so the column is stored as NULL.
func Encode(v any, empty bool) (*string, error) {
	if empty {
		return nil, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json column: %w", err)
	}

	s := string(data)
	return &s, nil
}
