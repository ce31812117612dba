package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one member of a JSON object, kept in document order.
type Field struct {
	Key   string
	Value json.RawMessage
}

// DecodeObject decodes a JSON object into its members in document order.
// encoding/json loses key order when decoding into a map, and team order
// is part of the roster data contract.
func DecodeObject(data []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode value for %q: %w", key, err)
		}
		fields = append(fields, Field{Key: key, Value: raw})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

// IsObject reports whether data holds a JSON object.
func IsObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// IsArray reports whether data holds a JSON array.
func IsArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// UnmarshalNumber decodes data into v keeping numbers as json.Number.
func UnmarshalNumber(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
