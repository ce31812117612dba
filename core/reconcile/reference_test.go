package reconcile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	identities, err := ParseReference([]byte(`[
		[2544, "James", "LeBron"],
		[1630224, "", "Jalen"],
		{"id": 203999, "full_name": "Nikola Jokić"},
		{"id": "201939", "first_name": "Stephen", "last_name": "Curry"}
	]`))
	require.NoError(t, err)

	assert.Equal(t, []Identity{
		{ID: 2544, Name: "LeBron James"},
		{ID: 1630224, Name: "Jalen"},
		{ID: 203999, Name: "Nikola Jokić"},
		{ID: 201939, Name: "Stephen Curry"},
	}, identities)
}

func TestParseReference_Errors(t *testing.T) {
	for _, payload := range []string{`{}`, `[[1, "only"]]`, `[["x", "a", "b"]]`, `[{"id": "abc"}]`} {
		_, err := ParseReference([]byte(payload))
		assert.Error(t, err, payload)
	}
}

func TestFileReferenceSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[1, "Doe", "Jane"]]`), 0o644))

	source := &FileReferenceSource{Path: path}
	identities, err := source.LoadReference(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Identity{{ID: 1, Name: "Jane Doe"}}, identities)
	assert.Equal(t, "file:"+path, source.Name())

	_, err = (&FileReferenceSource{Path: path + ".missing"}).LoadReference(context.Background())
	assert.Error(t, err)
}
