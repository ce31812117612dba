package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"roster-manager/core/utils"

	"github.com/goccy/go-yaml"
)

// TeamInfo is one known team.
type TeamInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	ExternalID int    `json:"external_id"`
}

// Registry is the read-only, ordered list of known teams.
type Registry struct {
	teams []TeamInfo
	index map[string]int
}

// registryEntry accepts both the Spanish and English key spellings.
type registryEntry struct {
	ID     json.Number `json:"id" yaml:"id"`
	Nombre string      `json:"nombre" yaml:"nombre"`
	Name   string      `json:"name" yaml:"name"`
}

func (e registryEntry) info(code string) (TeamInfo, error) {
	info := TeamInfo{Code: code, Name: e.Nombre}
	if info.Name == "" {
		info.Name = e.Name
	}
	if e.ID != "" {
		id, err := utils.ToInt(e.ID)
		if err != nil {
			return TeamInfo{}, fmt.Errorf("team %s: invalid id: %w", code, err)
		}
		info.ExternalID = id
	}
	return info, nil
}

// NewRegistry builds a registry from teams in the given order.
// A repeated code replaces the earlier entry in place.
func NewRegistry(teams []TeamInfo) *Registry {
	r := &Registry{index: make(map[string]int)}
	for _, t := range teams {
		if idx, ok := r.index[t.Code]; ok {
			r.teams[idx] = t
			continue
		}
		r.index[t.Code] = len(r.teams)
		r.teams = append(r.teams, t)
	}
	return r
}

// LoadRegistry reads a registry file. Files ending in .yaml or .yml are parsed
// as YAML; anything else as JSON.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read team registry: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseRegistryYAML(data)
	default:
		return ParseRegistryJSON(data)
	}
}

// ParseRegistryJSON parses {"CODE": {"id": 1, "nombre": "..."}, ...}.
func ParseRegistryJSON(data []byte) (*Registry, error) {
	fields, err := utils.DecodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse team registry: %w", err)
	}

	teams := make([]TeamInfo, 0, len(fields))
	for _, f := range fields {
		var entry registryEntry
		if err := json.Unmarshal(f.Value, &entry); err != nil {
			return nil, fmt.Errorf("team %s: %w", f.Key, err)
		}
		info, err := entry.info(f.Key)
		if err != nil {
			return nil, err
		}
		teams = append(teams, info)
	}
	return NewRegistry(teams), nil
}

// ParseRegistryYAML parses the same mapping written as YAML.
func ParseRegistryYAML(data []byte) (*Registry, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse team registry: %w", err)
	}

	teams := make([]TeamInfo, 0, len(doc))
	for _, item := range doc {
		code := utils.ToString(item.Key)

		// Round-trip each value through YAML to bind it to the entry struct.
		raw, err := yaml.Marshal(item.Value)
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", code, err)
		}
		var entry struct {
			ID     any    `yaml:"id"`
			Nombre string `yaml:"nombre"`
			Name   string `yaml:"name"`
		}
		if err := yaml.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("team %s: %w", code, err)
		}

		info, err := registryEntry{
			ID:     json.Number(utils.ToString(entry.ID)),
			Nombre: entry.Nombre,
			Name:   entry.Name,
		}.info(code)
		if err != nil {
			return nil, err
		}
		teams = append(teams, info)
	}
	return NewRegistry(teams), nil
}

// Len returns the number of teams.
func (r *Registry) Len() int {
	return len(r.teams)
}

// Teams returns the teams in registry order.
func (r *Registry) Teams() []TeamInfo {
	out := make([]TeamInfo, len(r.teams))
	copy(out, r.teams)
	return out
}

// Lookup returns the entry for code.
func (r *Registry) Lookup(code string) (TeamInfo, bool) {
	idx, ok := r.index[code]
	if !ok {
		return TeamInfo{}, false
	}
	return r.teams[idx], true
}

// DisplayName returns the registry name for code, or "" when unknown.
// It satisfies Namer.
func (r *Registry) DisplayName(code string) string {
	if r == nil {
		return ""
	}
	info, _ := r.Lookup(code)
	return info.Name
}
