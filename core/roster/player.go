package roster

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"roster-manager/core/utils"
)

// Player is a single roster entry. Identity is the ID; the name is a mutable label.
type Player struct {
	ID       int     `json:"id"`
	Name     string  `json:"nombre"`
	Number   *Jersey `json:"dorsal,omitempty"`
	Position string  `json:"posicion,omitempty"`
}

// UnmarshalJSON accepts ids written as numbers or numeric strings.
func (p *Player) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       json.Number `json:"id"`
		Name     string      `json:"nombre"`
		Number   *Jersey     `json:"dorsal"`
		Position string      `json:"posicion"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := utils.ToInt(raw.ID)
	if err != nil {
		return fmt.Errorf("invalid player id: %w", err)
	}

	*p = Player{ID: id, Name: raw.Name, Number: raw.Number, Position: raw.Position}
	return nil
}

// Jersey is a shirt number. Numeric values are kept as integers; anything
// else (or a numeric text with leading zeros such as "00") keeps its text.
type Jersey struct {
	value   int
	text    string
	numeric bool
}

// NewJersey returns a numeric jersey.
func NewJersey(n int) *Jersey {
	return &Jersey{value: n, text: strconv.Itoa(n), numeric: true}
}

// ParseJersey builds a jersey from text. Empty text yields nil.
func ParseJersey(s string) *Jersey {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		return NewJersey(n)
	}
	return &Jersey{text: s}
}

// JerseyFromValue converts a decoded JSON value into a jersey.
func JerseyFromValue(v any) *Jersey {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return ParseJersey(val)
	case json.Number:
		if n, err := utils.ToInt(val); err == nil {
			return NewJersey(n)
		}
		return ParseJersey(val.String())
	default:
		if n, err := utils.ToInt(val); err == nil {
			return NewJersey(n)
		}
		return ParseJersey(utils.ToString(val))
	}
}

// Int returns the numeric value and whether the jersey is numeric.
func (j *Jersey) Int() (int, bool) {
	if j == nil {
		return 0, false
	}
	return j.value, j.numeric
}

func (j *Jersey) String() string {
	if j == nil {
		return ""
	}
	return j.text
}

func (j Jersey) MarshalJSON() ([]byte, error) {
	if j.numeric {
		return []byte(strconv.Itoa(j.value)), nil
	}
	return json.Marshal(j.text)
}

func (j *Jersey) UnmarshalJSON(data []byte) error {
	var v any
	if err := utils.UnmarshalNumber(data, &v); err != nil {
		return err
	}
	parsed := JerseyFromValue(v)
	if parsed == nil {
		*j = Jersey{}
		return nil
	}
	*j = *parsed
	return nil
}

// Team is a roster record keyed by its code in the Directory.
type Team struct {
	Code    string   `json:"-"`
	Name    string   `json:"nombre_completo"`
	Players []Player `json:"jugadores"`
}

// IndexOf returns the position of the player with id, or -1.
func (t *Team) IndexOf(id int) int {
	for i, p := range t.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Has reports whether id is listed in the team.
func (t *Team) Has(id int) bool {
	return t.IndexOf(id) >= 0
}

func (t *Team) clone() *Team {
	players := make([]Player, len(t.Players))
	for i, p := range t.Players {
		players[i] = p
		if p.Number != nil {
			n := *p.Number
			players[i].Number = &n
		}
	}
	return &Team{Code: t.Code, Name: t.Name, Players: players}
}
