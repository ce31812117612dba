package reconcile

import (
	"strings"

	"roster-manager/core/roster"
	"roster-manager/core/utils"
)

// Alternate key spellings accepted in diff entries, in lookup order.
var (
	teamKeys     = []string{"equipo", "team"}
	teamNameKeys = []string{"nombre_equipo", "team_name"}
	idKeys       = []string{"id"}
	nameKeys     = []string{"nombre", "name"}
	numberKeys   = []string{"dorsal", "number"}
	positionKeys = []string{"posicion", "position"}
	rookieKeys   = []string{"novato", "rookie"}
)

// Entry is a normalized diff entry.
type Entry struct {
	// Index is the position of the entry in the flattened diff.
	Index int `json:"index"`
	// Team is the target team code.
	Team string `json:"team"`
	// TeamName is an optional display name for the target team.
	TeamName string `json:"team_name,omitempty"`
	// ID is the player identity.
	ID int `json:"id"`
	// Name is the display name; only meaningful when HasName is set.
	Name    string `json:"name,omitempty"`
	HasName bool   `json:"has_name"`
	// Number is nil when the entry carries no jersey.
	Number *roster.Jersey `json:"number,omitempty"`
	// Position is empty when the entry carries none.
	Position string `json:"position,omitempty"`
	// Rookie is informational and never changes move semantics.
	Rookie bool `json:"rookie"`
}

// Normalize converts one raw diff entry into an Entry.
// The team must be present and non-empty, the id integer-convertible.
func Normalize(raw map[string]any, index int) (Entry, error) {
	team := strings.TrimSpace(utils.ToString(lookup(raw, teamKeys)))
	if team == "" {
		return Entry{}, &MissingTeamError{Index: index}
	}

	rawID := lookup(raw, idKeys)
	id, err := utils.ToInt(rawID)
	if err != nil {
		return Entry{}, &InvalidIdentityError{Index: index, Value: rawID, Err: err}
	}

	entry := Entry{
		Index:    index,
		Team:     team,
		TeamName: strings.TrimSpace(utils.ToString(lookup(raw, teamNameKeys))),
		ID:       id,
		Number:   roster.JerseyFromValue(lookup(raw, numberKeys)),
		Position: strings.TrimSpace(utils.ToString(lookup(raw, positionKeys))),
		Rookie:   utils.ToFlag(lookup(raw, rookieKeys)),
	}

	if name := lookup(raw, nameKeys); name != nil {
		entry.Name = strings.TrimSpace(utils.ToString(name))
		entry.HasName = true
	}

	return entry, nil
}

// Player builds the record to insert, carrying forward attributes the entry
// omits from the removed prior record (if any).
func (e Entry) Player(prior *roster.Player) roster.Player {
	p := roster.Player{ID: e.ID, Name: e.Name, Number: e.Number, Position: e.Position}
	if prior == nil {
		return p
	}
	if !e.HasName {
		p.Name = prior.Name
	}
	if p.Number == nil {
		p.Number = prior.Number
	}
	if p.Position == "" {
		p.Position = prior.Position
	}
	return p
}

// lookup returns the first value under keys that is neither null nor a blank string.
func lookup(raw map[string]any, keys []string) any {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}
