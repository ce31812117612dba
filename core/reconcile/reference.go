package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"roster-manager/core/utils"
)

// Identity is a canonical (id, display name) pair.
type Identity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ParseReference reads a reference directory payload. Each element is either
// an [id, last, first] tuple or an object with "id" and "full_name" (or
// "first_name" and "last_name").
func ParseReference(data []byte) ([]Identity, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse reference directory: %w", err)
	}

	out := make([]Identity, 0, len(items))
	for i, item := range items {
		identity, err := parseIdentity(item)
		if err != nil {
			return nil, fmt.Errorf("reference entry %d: %w", i, err)
		}
		out = append(out, identity)
	}
	return out, nil
}

func parseIdentity(item json.RawMessage) (Identity, error) {
	if utils.IsArray(item) {
		var tuple []any
		if err := utils.UnmarshalNumber(item, &tuple); err != nil {
			return Identity{}, err
		}
		if len(tuple) < 3 {
			return Identity{}, fmt.Errorf("expected [id, last, first], got %d fields", len(tuple))
		}
		id, err := utils.ToInt(tuple[0])
		if err != nil {
			return Identity{}, err
		}
		return Identity{ID: id, Name: fullName(utils.ToString(tuple[2]), utils.ToString(tuple[1]))}, nil
	}

	var obj struct {
		ID        json.Number `json:"id"`
		FullName  string      `json:"full_name"`
		FirstName string      `json:"first_name"`
		LastName  string      `json:"last_name"`
	}
	if err := json.Unmarshal(item, &obj); err != nil {
		return Identity{}, err
	}
	id, err := utils.ToInt(obj.ID)
	if err != nil {
		return Identity{}, err
	}
	name := strings.TrimSpace(obj.FullName)
	if name == "" {
		name = fullName(obj.FirstName, obj.LastName)
	}
	return Identity{ID: id, Name: name}, nil
}

func fullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// FileReferenceSource reads the reference directory from a local JSON file.
type FileReferenceSource struct {
	Path string
}

// Name implements ReferenceSource.
func (s *FileReferenceSource) Name() string {
	return "file:" + s.Path
}

// LoadReference implements ReferenceSource.
func (s *FileReferenceSource) LoadReference(_ context.Context) ([]Identity, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}
	return ParseReference(data)
}
