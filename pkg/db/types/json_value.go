package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONValue stores an arbitrary JSON document verbatim. Settings carry
// whatever the caller submits (scalar or structure); the value is never
// interpreted server-side except where a reader parses it itself.
type JSONValue json.RawMessage

// NewJSONValue marshals any Go value into a JSONValue.
func NewJSONValue(v any) (JSONValue, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding json value: %w", err)
	}
	return JSONValue(raw), nil
}

// Value serializes the raw document for storage.
func (v JSONValue) Value() (driver.Value, error) {
	if len(v) == 0 {
		return "null", nil
	}
	return string(v), nil
}

// Scan restores the raw document from a text or blob column.
func (v *JSONValue) Scan(src any) error {
	switch val := src.(type) {
	case nil:
		*v = nil
		return nil
	case []byte:
		*v = append((*v)[:0], val...)
		return nil
	case string:
		*v = JSONValue(val)
		return nil
	default:
		return fmt.Errorf("unsupported json value source %T", src)
	}
}

func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

func (v *JSONValue) UnmarshalJSON(data []byte) error {
	if v == nil {
		return fmt.Errorf("json value: unmarshal into nil pointer")
	}
	*v = append((*v)[:0], data...)
	return nil
}
