package checks

import (
	"testing"

	"roster-manager/core/roster"

	"github.com/stretchr/testify/assert"
)

func TestCheckRosters(t *testing.T) {
	registry := roster.NewRegistry([]roster.TeamInfo{
		{Code: "ATL", Name: "Atlanta Hawks"},
		{Code: "BOS", Name: "Boston Celtics"},
		{Code: "CHA", Name: "Charlotte Hornets"},
	})

	dir := roster.NewDirectory()
	dir.Put(&roster.Team{Code: "ATL", Name: "Atlanta Hawks", Players: []roster.Player{{ID: 1, Name: "A"}, {ID: 2, Name: ""}}})
	dir.Put(&roster.Team{Code: "BOS", Name: "Boston Celtics", Players: []roster.Player{{ID: 1, Name: "A"}}})
	dir.Put(&roster.Team{Code: "SEA", Name: "SEA"})

	report := CheckRosters(dir, registry)

	assert.False(t, report.Matched)
	assert.Equal(t, 3, report.Teams)
	assert.Equal(t, 3, report.Players)
	assert.Equal(t, "1: ATL, BOS", report.Duplicates.String())
	assert.Equal(t, []string{"SEA"}, report.UnknownTeams)
	assert.Equal(t, []string{"CHA"}, report.MissingTeams)
	assert.Equal(t, []string{"SEA"}, report.EmptyTeams)
	assert.Equal(t, []int{2}, report.NamelessPlayers)
}

func TestCheckRosters_Clean(t *testing.T) {
	registry := roster.NewRegistry([]roster.TeamInfo{{Code: "ATL", Name: "Atlanta Hawks"}})
	dir := roster.NewDirectory()
	dir.Put(&roster.Team{Code: "ATL", Name: "Atlanta Hawks", Players: []roster.Player{{ID: 1, Name: "Trae Young"}}})

	report := CheckRosters(dir, registry)
	assert.True(t, report.Matched)
	assert.Empty(t, report.Duplicates)
}
