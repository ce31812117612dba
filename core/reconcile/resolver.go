package reconcile

import (
	"strings"
	"unicode"

	"roster-manager/core/roster"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Reference is the reference directory: lowercase full name to canonical identity,
// kept in first-insertion order.
type Reference struct {
	keys   []string
	table  map[string]Identity
	folded map[string]string
}

// NewReference builds a reference table. A later entry with the same
// lowercase name replaces the value but keeps the first entry's position.
func NewReference(entries []Identity) *Reference {
	r := &Reference{
		table:  make(map[string]Identity, len(entries)),
		folded: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if key == "" {
			continue
		}
		if _, exists := r.table[key]; !exists {
			r.keys = append(r.keys, key)
		}
		r.table[key] = Identity{ID: e.ID, Name: strings.TrimSpace(e.Name)}

		if f := foldName(key); f != "" {
			if _, exists := r.folded[f]; !exists {
				r.folded[f] = key
			}
		}
	}
	return r
}

// Len returns the number of distinct reference names.
func (r *Reference) Len() int {
	return len(r.keys)
}

// Exact looks name up case-insensitively.
func (r *Reference) Exact(name string) (Identity, bool) {
	id, ok := r.table[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// Best returns the highest scoring reference identity for name. The first
// candidate in reference order wins ties. ok is false for an empty reference.
func (r *Reference) Best(name string) (best Identity, score float64, ok bool) {
	score = -1
	for _, key := range r.keys {
		s := TokenSortRatio(name, key)
		if s > score {
			best, score, ok = r.table[key], s, true
		}
	}
	if !ok {
		return Identity{}, 0, false
	}
	return best, score, true
}

// Lookup matches a scraped name: accent-folded exact match first, then the
// first reference name starting with the name's first two tokens.
func (r *Reference) Lookup(name string) (Identity, bool) {
	f := foldName(name)
	if f == "" {
		return Identity{}, false
	}
	if key, ok := r.folded[f]; ok {
		return r.table[key], true
	}

	tokens := strings.Fields(f)
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	prefix := strings.Join(tokens, " ")
	for _, key := range r.keys {
		if strings.HasPrefix(foldName(key), prefix) {
			return r.table[key], true
		}
	}
	return Identity{}, false
}

// foldName lowercases s and strips diacritics ("Jokić" -> "jokic").
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Correction records a player rewritten by Resolve.
type Correction struct {
	Team    string  `json:"team"`
	OldID   int     `json:"old_id"`
	OldName string  `json:"old_name"`
	NewID   int     `json:"new_id"`
	NewName string  `json:"new_name"`
	Score   float64 `json:"score"`
	Fuzzy   bool    `json:"fuzzy"`
}

// ResolveResult is the outcome of a resolve pass.
type ResolveResult struct {
	// Corrections counts id rewrites from exact matches plus every accepted fuzzy match.
	Corrections int `json:"corrections"`
	// Exact counts players found by exact lookup.
	Exact int `json:"exact"`
	// Fuzzy counts players accepted by fuzzy scoring.
	Fuzzy int `json:"fuzzy"`
	// Unmatched lists names left unresolved, in directory order.
	Unmatched []string `json:"unmatched"`
	// Changes lists every rewritten player.
	Changes []Correction `json:"changes"`
}

// Resolve rewrites player ids and names in dir against the reference.
// An exact case-insensitive match always applies; otherwise the best fuzzy
// candidate applies when it scores at least MatchThreshold.
func Resolve(dir *roster.Directory, ref *Reference) *ResolveResult {
	result := &ResolveResult{}

	for _, team := range dir.Teams() {
		for i := range team.Players {
			p := &team.Players[i]
			name := strings.TrimSpace(p.Name)

			if identity, ok := ref.Exact(name); ok {
				result.Exact++
				if p.ID != identity.ID {
					result.Corrections++
				}
				if p.ID != identity.ID || p.Name != identity.Name {
					result.Changes = append(result.Changes, Correction{
						Team: team.Code, OldID: p.ID, OldName: p.Name,
						NewID: identity.ID, NewName: identity.Name, Score: 100,
					})
				}
				p.ID, p.Name = identity.ID, identity.Name
				continue
			}

			identity, score, ok := ref.Best(name)
			if !ok || score < MatchThreshold {
				result.Unmatched = append(result.Unmatched, name)
				continue
			}

			result.Fuzzy++
			result.Corrections++
			result.Changes = append(result.Changes, Correction{
				Team: team.Code, OldID: p.ID, OldName: p.Name,
				NewID: identity.ID, NewName: identity.Name, Score: score, Fuzzy: true,
			})
			p.ID, p.Name = identity.ID, identity.Name
		}
	}
	return result
}
