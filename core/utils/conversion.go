package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// truthyTokens are the string spellings accepted as true by ToFlag.
var truthyTokens = map[string]struct{}{
	"true": {},
	"1":    {},
	"si":   {},
	"sí":   {},
}

// Bounds of int as float64. float64(math.MaxInt) rounds up to 1<<63, so the
// upper bound is exclusive.
const (
	minIntFloat = -(1 << 63)
	maxIntFloat = 1 << 63
)

// ToInt converts a decoded JSON value to int using explicit type switching.
// Floats are accepted only when they carry no fractional part, strings are
// trimmed before parsing. Anything else is reported as an error.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case uint32:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		if v < minIntFloat || v >= maxIntFloat {
			return 0, fmt.Errorf("%v is out of range", v)
		}
		return int(v), nil
	case json.Number:
		i, err := v.Int64()
		if err == nil {
			return int(i), nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q is out of range", v.String())
		}
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", v.String())
		}
		return ToInt(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", v)
		}
		return i, nil
	case []byte:
		return ToInt(string(v))
	case nil:
		return 0, fmt.Errorf("value is null")
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// ToString converts various types to string.
// A nil value converts to the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToFlag converts various types to bool.
// Strings are matched case-insensitively against a fixed truthy set
// ("true", "1", "si", "sí"); numbers are true when non-zero.
func ToFlag(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		_, ok := truthyTokens[strings.ToLower(strings.TrimSpace(v))]
		return ok
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return false
	}
}
