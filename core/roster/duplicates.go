package roster

import (
	"fmt"
	"strings"
)

// Duplicate is a player id listed under more than one team.
type Duplicate struct {
	ID    int      `json:"id"`
	Teams []string `json:"teams"`
}

// Duplicates is the ordered result of FindDuplicates.
type Duplicates []Duplicate

// FindDuplicates returns every id with more than one occurrence in the directory.
// Ids appear in first-seen scan order; team codes follow team iteration order.
// The directory is not modified.
func FindDuplicates(d *Directory) Duplicates {
	var seen []int
	occurrences := make(map[int][]string)

	for _, team := range d.Teams() {
		for _, p := range team.Players {
			if _, ok := occurrences[p.ID]; !ok {
				seen = append(seen, p.ID)
			}
			occurrences[p.ID] = append(occurrences[p.ID], team.Code)
		}
	}

	var out Duplicates
	for _, id := range seen {
		if teams := occurrences[id]; len(teams) > 1 {
			out = append(out, Duplicate{ID: id, Teams: teams})
		}
	}
	return out
}

// Map returns the duplicates keyed by id.
func (ds Duplicates) Map() map[int][]string {
	out := make(map[int][]string, len(ds))
	for _, dup := range ds {
		out[dup.ID] = dup.Teams
	}
	return out
}

// Lines renders one "id: A, B" line per duplicate.
func (ds Duplicates) Lines() []string {
	lines := make([]string, len(ds))
	for i, dup := range ds {
		lines[i] = dup.String()
	}
	return lines
}

func (ds Duplicates) String() string {
	return strings.Join(ds.Lines(), "\n")
}

func (d Duplicate) String() string {
	return fmt.Sprintf("%d: %s", d.ID, strings.Join(d.Teams, ", "))
}
