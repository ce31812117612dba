package reconcile

import (
	"encoding/json"
	"fmt"

	"roster-manager/core/utils"
)

// RawEntry is one element of a flattened diff, before normalization.
type RawEntry struct {
	Index int
	// Fields is nil when the element was not a JSON object.
	Fields map[string]any
	// Kind describes the JSON kind of a non-object element.
	Kind string
}

// ParseDiff flattens a diff payload into ordered raw entries.
// A list is taken as-is; a mapping of team code to list sets the team of each
// entry from its key, overriding any team field the entry carries.
func ParseDiff(data []byte) ([]RawEntry, error) {
	switch {
	case utils.IsArray(data):
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to parse diff: %w", err)
		}
		return flatten(items, "")

	case utils.IsObject(data):
		fields, err := utils.DecodeObject(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse diff: %w", err)
		}

		var out []RawEntry
		for _, f := range fields {
			if !utils.IsArray(f.Value) {
				return nil, &UnsupportedDiffShapeError{Index: -1, Detail: fmt.Sprintf("team %s is not a list of entries", f.Key)}
			}
			var items []json.RawMessage
			if err := json.Unmarshal(f.Value, &items); err != nil {
				return nil, fmt.Errorf("failed to parse diff for team %s: %w", f.Key, err)
			}
			entries, err := flatten(items, f.Key)
			if err != nil {
				return nil, err
			}
			for i := range entries {
				entries[i].Index = len(out) + i
			}
			out = append(out, entries...)
		}
		return out, nil

	default:
		var probe any
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("failed to parse diff: %w", err)
		}
		return nil, &UnsupportedDiffShapeError{Index: -1, Detail: fmt.Sprintf("expected a list or a mapping, got %s", kindOf(probe))}
	}
}

func flatten(items []json.RawMessage, team string) ([]RawEntry, error) {
	out := make([]RawEntry, 0, len(items))
	for i, item := range items {
		var v any
		if err := utils.UnmarshalNumber(item, &v); err != nil {
			return nil, fmt.Errorf("failed to parse diff entry %d: %w", i, err)
		}

		entry := RawEntry{Index: i}
		if fields, ok := v.(map[string]any); ok {
			if team != "" {
				fields["equipo"] = team
			}
			entry.Fields = fields
		} else {
			entry.Kind = kindOf(v)
		}
		out = append(out, entry)
	}
	return out, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
