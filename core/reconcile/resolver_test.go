package reconcile

import (
	"strings"
	"testing"

	"roster-manager/core/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReference_DuplicateKeepsFirstPosition(t *testing.T) {
	ref := NewReference([]Identity{
		{ID: 1, Name: "John Smith"},
		{ID: 2, Name: "Jane Doe"},
		{ID: 3, Name: "JOHN SMITH"},
	})

	assert.Equal(t, 2, ref.Len())
	id, ok := ref.Exact("john smith")
	require.True(t, ok)
	assert.Equal(t, 3, id.ID)
	assert.Equal(t, []string{"john smith", "jane doe"}, ref.keys)
}

func TestReference_BestTieGoesToFirst(t *testing.T) {
	ref := NewReference([]Identity{
		{ID: 1, Name: "abcd"},
		{ID: 2, Name: "abce"},
	})

	best, score, ok := ref.Best("abcx")
	require.True(t, ok)
	assert.Equal(t, 1, best.ID)
	assert.InDelta(t, 75, score, 1e-9)

	_, _, ok = NewReference(nil).Best("x")
	assert.False(t, ok)
}

func TestReference_Lookup(t *testing.T) {
	ref := NewReference([]Identity{
		{ID: 203999, Name: "Nikola Jokić"},
		{ID: 1629029, Name: "Luka Dončić"},
		{ID: 1628983, Name: "Shai Gilgeous-Alexander"},
	})

	tests := []struct {
		name   string
		wantID int
		wantOK bool
	}{
		{"Nikola Jokic", 203999, true},
		{"  LUKA DONCIC ", 1629029, true},
		{"Shai Gilgeous-Alexander Jr.", 1628983, true},
		{"Nobody Here", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ref.Lookup(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id.ID)
		})
	}
}

func TestResolve(t *testing.T) {
	ref := NewReference([]Identity{
		{ID: 100, Name: "LeBron James"},
		{ID: 200, Name: strings.Repeat("a", 20)},
		{ID: 300, Name: strings.Repeat("c", 25)},
	})

	dir := roster.NewDirectory()
	dir.Put(&roster.Team{Code: "LAL", Name: "Lakers", Players: []roster.Player{
		{ID: 1, Name: "lebron james"},
		{ID: 2, Name: strings.Repeat("a", 17) + "bbb"},
		{ID: 3, Name: strings.Repeat("c", 21) + "dddd"},
	}})
	dir.Put(&roster.Team{Code: "BOS", Name: "Celtics", Players: []roster.Player{
		{ID: 100, Name: "LeBron James"},
	}})

	result := Resolve(dir, ref)

	lal, _ := dir.Team("LAL")
	// Exact match, case-insensitive: id and canonical name rewritten.
	assert.Equal(t, roster.Player{ID: 100, Name: "LeBron James"}, lal.Players[0])
	// Score 85: accepted.
	assert.Equal(t, 200, lal.Players[1].ID)
	assert.Equal(t, strings.Repeat("a", 20), lal.Players[1].Name)
	// Score 84: left alone and reported.
	assert.Equal(t, 3, lal.Players[2].ID)

	assert.Equal(t, 2, result.Exact)
	assert.Equal(t, 1, result.Fuzzy)
	assert.Equal(t, 2, result.Corrections)
	assert.Equal(t, []string{strings.Repeat("c", 21) + "dddd"}, result.Unmatched)
	require.Len(t, result.Changes, 2)
	assert.True(t, result.Changes[1].Fuzzy)
	assert.InDelta(t, 85, result.Changes[1].Score, 1e-9)
}
