package roster

import (
	"bytes"
	"encoding/json"
	"fmt"

	"roster-manager/core/utils"
)

// Namer resolves the display name for a team code that has to be created.
// An empty result falls back to the code itself.
type Namer func(code string) string

// Removal describes a player taken out of a team.
type Removal struct {
	Team   string
	Player Player
}

// Directory is the ordered roster store.
type Directory struct {
	order []string
	teams map[string]*Team
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{teams: make(map[string]*Team)}
}

// Len returns the number of teams.
func (d *Directory) Len() int {
	return len(d.order)
}

// PlayerCount returns the number of player entries across all teams.
func (d *Directory) PlayerCount() int {
	total := 0
	for _, code := range d.order {
		total += len(d.teams[code].Players)
	}
	return total
}

// Codes returns the team codes in iteration order.
func (d *Directory) Codes() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Teams returns the teams in iteration order.
func (d *Directory) Teams() []*Team {
	out := make([]*Team, 0, len(d.order))
	for _, code := range d.order {
		out = append(out, d.teams[code])
	}
	return out
}

// Team returns the team stored under code.
func (d *Directory) Team(code string) (*Team, bool) {
	t, ok := d.teams[code]
	return t, ok
}

// Put stores team under its code. An existing team keeps its position.
func (d *Directory) Put(team *Team) {
	if team.Players == nil {
		team.Players = []Player{}
	}
	if _, exists := d.teams[team.Code]; !exists {
		d.order = append(d.order, team.Code)
	}
	d.teams[team.Code] = team
}

// Find returns the codes of every team listing id, in iteration order.
func (d *Directory) Find(id int) []string {
	var codes []string
	for _, code := range d.order {
		if d.teams[code].Has(id) {
			codes = append(codes, code)
		}
	}
	return codes
}

// RemoveByID removes the first occurrence of id, scanning teams in iteration order.
func (d *Directory) RemoveByID(id int) (Removal, bool) {
	for _, code := range d.order {
		team := d.teams[code]
		if idx := team.IndexOf(id); idx >= 0 {
			removed := team.Players[idx]
			team.Players = append(team.Players[:idx], team.Players[idx+1:]...)
			return Removal{Team: code, Player: removed}, true
		}
	}
	return Removal{}, false
}

// RemoveAllByID removes every occurrence of id. Removals are returned in scan order.
func (d *Directory) RemoveAllByID(id int) []Removal {
	var removals []Removal
	for _, code := range d.order {
		team := d.teams[code]
		kept := team.Players[:0]
		for _, p := range team.Players {
			if p.ID == id {
				removals = append(removals, Removal{Team: code, Player: p})
				continue
			}
			kept = append(kept, p)
		}
		team.Players = kept
	}
	return removals
}

// Insert appends player to the team under code, creating the team when missing.
// It returns false without changes when the id is already listed in that team.
func (d *Directory) Insert(code string, player Player, namer Namer) bool {
	team, ok := d.teams[code]
	if !ok {
		name := ""
		if namer != nil {
			name = namer(code)
		}
		if name == "" {
			name = code
		}
		team = &Team{Code: code, Name: name, Players: []Player{}}
		d.Put(team)
	}

	if team.Has(player.ID) {
		return false
	}
	team.Players = append(team.Players, player)
	return true
}

// Clone returns a deep copy of the directory.
func (d *Directory) Clone() *Directory {
	out := NewDirectory()
	for _, code := range d.order {
		out.Put(d.teams[code].clone())
	}
	return out
}

// MarshalJSON writes the directory as an object keyed by team code, in iteration order.
func (d *Directory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(code)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.teams[code])
		if err != nil {
			return nil, fmt.Errorf("failed to encode team %s: %w", code, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a directory object, keeping the team order of the document.
func (d *Directory) UnmarshalJSON(data []byte) error {
	fields, err := utils.DecodeObject(data)
	if err != nil {
		return err
	}

	*d = *NewDirectory()
	for _, f := range fields {
		var team Team
		if err := json.Unmarshal(f.Value, &team); err != nil {
			return fmt.Errorf("failed to decode team %s: %w", f.Key, err)
		}
		team.Code = f.Key
		if team.Name == "" {
			team.Name = f.Key
		}
		d.Put(&team)
	}
	return nil
}
