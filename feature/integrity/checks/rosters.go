package checks

import (
	"strings"

	"roster-manager/core/roster"
)

// RosterReport summarizes the consistency of the roster directory.
type RosterReport struct {
	Matched    bool              `json:"matched"`
	Teams      int               `json:"teams"`
	Players    int               `json:"players"`
	Duplicates roster.Duplicates `json:"duplicates"`
	// UnknownTeams are in the directory but not in the registry.
	UnknownTeams []string `json:"unknown_teams"`
	// MissingTeams are in the registry but not in the directory.
	MissingTeams []string `json:"missing_teams"`
	EmptyTeams   []string `json:"empty_teams"`
	// NamelessPlayers are ids with an empty name, left by moves of unknown players.
	NamelessPlayers []int `json:"nameless_players"`
}

// CheckRosters inspects dir against the registry. It never modifies dir.
func CheckRosters(dir *roster.Directory, registry *roster.Registry) *RosterReport {
	report := &RosterReport{
		Teams:           dir.Len(),
		Players:         dir.PlayerCount(),
		Duplicates:      roster.FindDuplicates(dir),
		UnknownTeams:    []string{},
		MissingTeams:    []string{},
		EmptyTeams:      []string{},
		NamelessPlayers: []int{},
	}

	for _, team := range dir.Teams() {
		if registry != nil && registry.Len() > 0 {
			if _, ok := registry.Lookup(team.Code); !ok {
				report.UnknownTeams = append(report.UnknownTeams, team.Code)
			}
		}
		if len(team.Players) == 0 {
			report.EmptyTeams = append(report.EmptyTeams, team.Code)
		}
		for _, p := range team.Players {
			if strings.TrimSpace(p.Name) == "" {
				report.NamelessPlayers = append(report.NamelessPlayers, p.ID)
			}
		}
	}

	if registry != nil {
		for _, info := range registry.Teams() {
			if _, ok := dir.Team(info.Code); !ok {
				report.MissingTeams = append(report.MissingTeams, info.Code)
			}
		}
	}

	report.Matched = len(report.Duplicates) == 0 &&
		len(report.UnknownTeams) == 0 &&
		len(report.MissingTeams) == 0 &&
		len(report.NamelessPlayers) == 0
	return report
}
