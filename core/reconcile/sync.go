package reconcile

import (
	"context"

	"roster-manager/core/roster"
)

// DroppedPlayer is a remote row skipped because an earlier team already claimed its id.
type DroppedPlayer struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Team   string `json:"team"`
	KeptIn string `json:"kept_in"`
}

// FetchFailure records a team whose fetch returned an error.
type FetchFailure struct {
	Team  string `json:"team"`
	Error string `json:"error"`
}

// SyncResult reports a synchronization pass.
type SyncResult struct {
	// Season is the season that was requested.
	Season string `json:"season"`
	// Refreshed lists teams rebuilt from remote rows.
	Refreshed []string `json:"refreshed"`
	// Preserved lists teams copied from the prior directory because the fetch yielded nothing.
	Preserved []string `json:"preserved"`
	// Emptied lists teams with neither remote rows nor prior data.
	Emptied []string `json:"emptied"`
	// Dropped lists remote rows skipped by the first-team-wins rule, in processing order.
	Dropped []DroppedPlayer `json:"dropped"`
	// FetchFailures lists teams whose fetch errored.
	FetchFailures []FetchFailure `json:"fetch_failures"`
}

// DuplicateIDs returns the ids of the dropped rows.
func (r *SyncResult) DuplicateIDs() []int {
	ids := make([]int, len(r.Dropped))
	for i, d := range r.Dropped {
		ids[i] = d.ID
	}
	return ids
}

// Synchronize builds a replacement directory from remote rosters, processing
// teams in registry order.
//
// A team with remote rows gets exactly those rows, minus ids already claimed
// earlier in the pass. A team whose fetch yields nothing (or fails) keeps its
// prior record unchanged and claims its ids. A team with neither is created
// empty under its registry name. Fetch errors never propagate.
func Synchronize(ctx context.Context, reg *roster.Registry, prior *roster.Directory, fetcher RosterFetcher, season string) (*roster.Directory, *SyncResult) {
	if prior == nil {
		prior = roster.NewDirectory()
	}
	prior = prior.Clone()

	out := roster.NewDirectory()
	result := &SyncResult{Season: season}
	claimed := make(map[int]string)

	for _, info := range reg.Teams() {
		rows, err := fetcher.FetchRoster(ctx, info, season)
		if err != nil {
			result.FetchFailures = append(result.FetchFailures, FetchFailure{Team: info.Code, Error: err.Error()})
			rows = nil
		}

		if len(rows) == 0 {
			if existing, ok := prior.Team(info.Code); ok {
				for _, p := range existing.Players {
					if _, taken := claimed[p.ID]; !taken {
						claimed[p.ID] = info.Code
					}
				}
				out.Put(existing)
				result.Preserved = append(result.Preserved, info.Code)
				continue
			}
			out.Put(&roster.Team{Code: info.Code, Name: teamName(info), Players: []roster.Player{}})
			result.Emptied = append(result.Emptied, info.Code)
			continue
		}

		players := make([]roster.Player, 0, len(rows))
		for _, row := range rows {
			if keptIn, taken := claimed[row.ID]; taken {
				result.Dropped = append(result.Dropped, DroppedPlayer{ID: row.ID, Name: row.Name, Team: info.Code, KeptIn: keptIn})
				continue
			}
			claimed[row.ID] = info.Code
			players = append(players, roster.Player{
				ID:       row.ID,
				Name:     row.Name,
				Number:   roster.ParseJersey(row.Number),
				Position: row.Position,
			})
		}

		out.Put(&roster.Team{Code: info.Code, Name: teamName(info), Players: players})
		result.Refreshed = append(result.Refreshed, info.Code)
	}

	return out, result
}

func teamName(info roster.TeamInfo) string {
	if info.Name != "" {
		return info.Name
	}
	return info.Code
}
