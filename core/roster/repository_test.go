package roster

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "players_id.json")
	repo := NewFileRepository(path)

	t.Run("Missing file is empty", func(t *testing.T) {
		dir, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, dir.Len())
	})

	t.Run("Save then load", func(t *testing.T) {
		dir := NewDirectory()
		dir.Insert("GSW", Player{ID: 201939, Name: "Stephen Curry", Number: NewJersey(30)}, func(string) string { return "Golden State Warriors" })
		dir.Insert("DEN", Player{ID: 203999, Name: "Nikola Jokic"}, nil)

		require.NoError(t, repo.Save(ctx, dir))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"GSW", "DEN"}, loaded.Codes())
		gsw, _ := loaded.Team("GSW")
		assert.Equal(t, "Golden State Warriors", gsw.Name)
		assert.Equal(t, "30", gsw.Players[0].Number.String())
	})

	t.Run("Corrupt file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := repo.Load(ctx)
		assert.Error(t, err)
	})
}
