package reconcile

import (
	"encoding/json"
	"errors"
	"testing"

	"roster-manager/core/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDirectory(t *testing.T, data string) *roster.Directory {
	t.Helper()
	dir, err := roster.Decode([]byte(data))
	require.NoError(t, err)
	return dir
}

const baseRoster = `{
	"LAL": {"nombre_completo": "Los Angeles Lakers", "jugadores": [
		{"id": 1, "nombre": "Alpha", "dorsal": 3, "posicion": "G"},
		{"id": 2, "nombre": "Beta"}
	]},
	"BOS": {"nombre_completo": "Boston Celtics", "jugadores": [
		{"id": 3, "nombre": "Gamma"}
	]}
}`

func registryNames(code string) string {
	return map[string]string{"NYK": "New York Knicks"}[code]
}

func TestApplyDiff_MoveSemantics(t *testing.T) {
	dir := loadDirectory(t, baseRoster)

	result, err := ApplyDiff(dir, registryNames, []byte(`[{"equipo": "BOS", "id": 1, "nombre": "Alpha"}]`), Options{})
	require.NoError(t, err)

	lal, _ := dir.Team("LAL")
	bos, _ := dir.Team("BOS")
	assert.False(t, lal.Has(1))
	assert.Equal(t, []string{"BOS"}, dir.Find(1))

	moved := bos.Players[bos.IndexOf(1)]
	assert.Equal(t, "Alpha", moved.Name)
	assert.Equal(t, "3", moved.Number.String())
	assert.Equal(t, "G", moved.Position)

	require.Len(t, result.Moves, 1)
	assert.Equal(t, []string{"LAL"}, result.Moves[0].From)
	assert.Equal(t, 1, result.Summary.Moves)
	assert.Empty(t, result.Duplicates)
}

func TestApplyDiff_IdempotentInsert(t *testing.T) {
	dir := loadDirectory(t, baseRoster)
	// Seed a defect: id 2 is listed under both teams.
	dir.Insert("BOS", roster.Player{ID: 2, Name: "Beta"}, nil)

	result, err := ApplyDiff(dir, nil, []byte(`[{"equipo": "BOS", "id": 2}]`), Options{})
	require.NoError(t, err)

	bos, _ := dir.Team("BOS")
	assert.Len(t, bos.Players, 2)
	assert.False(t, result.Moves[0].Inserted)
	assert.Equal(t, 1, result.Summary.NoOps)
	assert.Empty(t, result.Duplicates)
}

func TestApplyDiff_CarryForward(t *testing.T) {
	t.Run("Existing player keeps name", func(t *testing.T) {
		dir := loadDirectory(t, baseRoster)

		_, err := ApplyDiff(dir, nil, []byte(`[{"team": "BOS", "id": "2"}]`), Options{})
		require.NoError(t, err)

		bos, _ := dir.Team("BOS")
		assert.Equal(t, "Beta", bos.Players[bos.IndexOf(2)].Name)
	})

	t.Run("Unknown player gets empty name", func(t *testing.T) {
		dir := loadDirectory(t, baseRoster)

		result, err := ApplyDiff(dir, nil, []byte(`[{"team": "BOS", "id": 99}]`), Options{})
		require.NoError(t, err)

		bos, _ := dir.Team("BOS")
		assert.Equal(t, "", bos.Players[bos.IndexOf(99)].Name)
		assert.Equal(t, 1, result.Summary.Additions)
	})
}

func TestApplyDiff_TeamCreation(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		code     string
		wantName string
	}{
		{"Registry name", `[{"equipo": "NYK", "id": 5}]`, "NYK", "New York Knicks"},
		{"Diff team name", `[{"equipo": "SEA", "id": 5, "nombre_equipo": "Seattle SuperSonics"}]`, "SEA", "Seattle SuperSonics"},
		{"Code fallback", `[{"equipo": "XYZ", "id": 5}]`, "XYZ", "XYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := loadDirectory(t, baseRoster)

			result, err := ApplyDiff(dir, registryNames, []byte(tt.payload), Options{})
			require.NoError(t, err)

			team, ok := dir.Team(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, team.Name)
			assert.Equal(t, []string{"LAL", "BOS", tt.code}, dir.Codes())
			assert.True(t, result.Moves[0].TeamCreated)
		})
	}
}

func TestApplyDiff_ShapeTolerance(t *testing.T) {
	mapped := loadDirectory(t, baseRoster)
	listed := loadDirectory(t, baseRoster)

	_, err := ApplyDiff(mapped, nil, []byte(`{"LAL": [{"id": 5, "nombre": "X"}]}`), Options{})
	require.NoError(t, err)
	_, err = ApplyDiff(listed, nil, []byte(`[{"id": 5, "nombre": "X", "equipo": "LAL"}]`), Options{})
	require.NoError(t, err)

	a, err := json.Marshal(mapped)
	require.NoError(t, err)
	b, err := json.Marshal(listed)
	require.NoError(t, err)
	assert.Equal(t, string(b), string(a))
}

func TestApplyDiff_MappingKeyOverridesEntryTeam(t *testing.T) {
	dir := loadDirectory(t, baseRoster)

	_, err := ApplyDiff(dir, nil, []byte(`{"BOS": [{"id": 1, "equipo": "LAL"}]}`), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"BOS"}, dir.Find(1))
}

func TestApplyDiff_FailurePolicy(t *testing.T) {
	payload := []byte(`[
		{"equipo": "BOS", "id": 1},
		{"id": 2},
		{"equipo": "BOS", "id": "two"},
		"not an entry"
	]`)

	t.Run("Abort leaves directory untouched", func(t *testing.T) {
		dir := loadDirectory(t, baseRoster)
		before := dir.Clone()

		result, err := ApplyDiff(dir, nil, payload, Options{})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, ErrMissingTeam))
		assert.Equal(t, before, dir)
	})

	t.Run("Skip records failures", func(t *testing.T) {
		dir := loadDirectory(t, baseRoster)

		result, err := ApplyDiff(dir, nil, payload, Options{SkipInvalid: true})
		require.NoError(t, err)

		require.Len(t, result.Failures, 3)
		assert.Equal(t, 1, result.Failures[0].Index)
		assert.True(t, errors.Is(result.Failures[0].Err, ErrMissingTeam))
		assert.True(t, errors.Is(result.Failures[1].Err, ErrInvalidIdentity))
		assert.True(t, errors.Is(result.Failures[2].Err, ErrUnsupportedDiffShape))
		assert.Equal(t, 4, result.Summary.TotalEntries)
		assert.Equal(t, 1, result.Summary.ValidEntries)
		assert.Equal(t, []string{"BOS"}, dir.Find(1))
	})
}

func TestApplyDiff_UnsupportedShape(t *testing.T) {
	for _, payload := range []string{`"text"`, `42`, `{"LAL": {"id": 1}}`} {
		_, err := ApplyDiff(roster.NewDirectory(), nil, []byte(payload), Options{SkipInvalid: true})
		require.Error(t, err, payload)
		assert.True(t, errors.Is(err, ErrUnsupportedDiffShape), payload)
	}

	_, err := ApplyDiff(roster.NewDirectory(), nil, []byte(`[{`), Options{})
	assert.Error(t, err)
}

func TestApplyDiff_OutOfRangeID(t *testing.T) {
	for _, id := range []string{"99999999999999999999", "1e300"} {
		dir := loadDirectory(t, baseRoster)
		before := dir.Clone()

		_, err := ApplyDiff(dir, nil, []byte(`[{"id": `+id+`, "nombre": "X", "equipo": "LAL"}]`), Options{})
		require.Error(t, err, id)
		assert.True(t, errors.Is(err, ErrInvalidIdentity), id)
		assert.Equal(t, before, dir, id)
	}
}

func TestApplyDiff_RemovalPolicy(t *testing.T) {
	seed := func(t *testing.T) *roster.Directory {
		dir := loadDirectory(t, baseRoster)
		dir.Insert("BOS", roster.Player{ID: 1, Name: "Alpha Copy"}, nil)
		return dir
	}

	t.Run("First match only", func(t *testing.T) {
		dir := seed(t)

		result, err := ApplyDiff(dir, nil, []byte(`[{"equipo": "NYK", "id": 1}]`), Options{})
		require.NoError(t, err)

		assert.Equal(t, []string{"BOS", "NYK"}, dir.Find(1))
		nyk, _ := dir.Team("NYK")
		assert.Equal(t, "Alpha", nyk.Players[0].Name)
		require.Len(t, result.Duplicates, 1)
		assert.Equal(t, "1: BOS, NYK", result.Duplicates[0].String())
	})

	t.Run("All occurrences", func(t *testing.T) {
		dir := seed(t)

		result, err := ApplyDiff(dir, nil, []byte(`[{"equipo": "NYK", "id": 1}]`), Options{RemoveAllOccurrences: true})
		require.NoError(t, err)

		assert.Equal(t, []string{"NYK"}, dir.Find(1))
		assert.Equal(t, []string{"LAL", "BOS"}, result.Moves[0].From)
		nyk, _ := dir.Team("NYK")
		assert.Equal(t, "Alpha", nyk.Players[0].Name)
		assert.Empty(t, result.Duplicates)
	})
}

func TestApplyDiff_RookieForwarded(t *testing.T) {
	dir := loadDirectory(t, baseRoster)

	result, err := ApplyDiff(dir, nil, []byte(`[{"equipo": "LAL", "id": 50, "nombre": "Rook", "novato": "si"}]`), Options{})
	require.NoError(t, err)

	assert.True(t, result.Moves[0].Rookie)
	assert.Equal(t, 1, result.Summary.Rookies)
}
