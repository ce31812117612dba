package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"roster-manager/core/cache"
	"roster-manager/core/config"
	"roster-manager/core/database"
	"roster-manager/core/reconcile"
	"roster-manager/core/roster"
	"roster-manager/core/stats"
	"roster-manager/core/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRuntime(cfg config.Config) *runtime {
	return &runtime{cfg: &cfg, logger: zap.NewNop()}
}

func TestRuntime_Repository(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		want    any
		wantErr bool
	}{
		{"default is file", config.Config{Roster: roster.Config{PlayersFile: "players.json"}}, &roster.FileRepository{}, false},
		{"file", config.Config{Roster: roster.Config{Backend: roster.BackendFile}}, &roster.FileRepository{}, false},
		{"storage", config.Config{
			Roster:  roster.Config{Backend: roster.BackendStorage, ObjectName: "rosters.json"},
			Storage: storage.Config{Endpoint: "localhost:9000", Bucket: "rosters"},
		}, &storage.RosterRepository{}, false},
		{"database", config.Config{
			Roster:   roster.Config{Backend: roster.BackendDatabase},
			Database: database.Config{Driver: database.DriverSQLite, Name: ":memory:", AutoMigrate: true},
		}, &database.RosterRepository{}, false},
		{"unknown", config.Config{Roster: roster.Config{Backend: "ftp"}}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := testRuntime(tt.cfg)
			defer rt.Close()

			repo, err := rt.repository()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, repo)
		})
	}
}

func TestRuntime_RegistryMissingFile(t *testing.T) {
	rt := testRuntime(config.Config{Roster: roster.Config{TeamsFile: filepath.Join(t.TempDir(), "teams.json")}})

	reg, err := rt.registry()
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
}

func TestRuntime_RegistryInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")
	require.NoError(t, os.WriteFile(path, []byte("[1, 2]"), 0o644))
	rt := testRuntime(config.Config{Roster: roster.Config{TeamsFile: path}})

	_, err := rt.registry()
	assert.Error(t, err)
}

func TestRuntime_Fetcher(t *testing.T) {
	rt := testRuntime(config.Config{})
	assert.IsType(t, &stats.Client{}, rt.fetcher())

	mr := miniredis.RunT(t)
	rt = testRuntime(config.Config{Cache: cache.Config{URL: "redis://" + mr.Addr() + "/0", Prefix: "test:"}})
	defer rt.Close()
	assert.IsType(t, &cache.CachedFetcher{}, rt.fetcher())
	assert.NotNil(t, rt.cache)

	// an unreachable cache falls back to direct fetches
	rt = testRuntime(config.Config{Cache: cache.Config{URL: "redis://127.0.0.1:1/0"}})
	assert.IsType(t, &stats.Client{}, rt.fetcher())
}

func TestRuntime_ReferenceSource(t *testing.T) {
	rt := testRuntime(config.Config{Roster: roster.Config{ReferenceFile: "ref.json"}})
	assert.IsType(t, &reconcile.FileReferenceSource{}, rt.referenceSource(false))

	rt = testRuntime(config.Config{Stats: stats.Config{Season: "2025-26"}})
	src := rt.referenceSource(true)
	require.IsType(t, &stats.PlayerIndex{}, src)
	assert.True(t, src.(*stats.PlayerIndex).CurrentOnly)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, writeJSON(path, map[string]int{"moves": 2}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"moves": 2}`, string(data))
}
