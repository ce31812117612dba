package storage_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"roster-manager/core/roster"
	"roster-manager/core/storage"
	"roster-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRosterRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes object", func(t *testing.T) {
		client := new(mocks.Client)
		body := `{"LAL": {"nombre_completo": "Los Angeles Lakers", "jugadores": [{"id": 2544, "nombre": "LeBron James"}]}}`
		client.On("GetObject", ctx, "rosters", "players.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(body)), nil)

		repo := storage.NewRosterRepository(client, "rosters", "players.json")
		dir, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"LAL"}, dir.Codes())
		client.AssertExpectations(t)
	})

	t.Run("Missing object is empty", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "rosters", "players.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		dir, err := storage.NewRosterRepository(client, "rosters", "players.json").Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, dir.Len())
	})

	t.Run("Other errors propagate", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "rosters", "players.json", mock.Anything).
			Return(nil, fmt.Errorf("connection refused"))

		_, err := storage.NewRosterRepository(client, "rosters", "players.json").Load(ctx)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestRosterRepository_Save(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)

	var uploaded string
	client.On("PutObject", ctx, "rosters", "players.json", mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
		Run(func(args mock.Arguments) {
			data, _ := io.ReadAll(args.Get(3).(io.Reader))
			uploaded = string(data)
		}).
		Return(minio.UploadInfo{}, nil)

	dir := roster.NewDirectory()
	dir.Insert("MIA", roster.Player{ID: 1, Name: "Jimmy"}, func(string) string { return "Miami Heat" })

	require.NoError(t, storage.NewRosterRepository(client, "rosters", "players.json").Save(ctx, dir))
	assert.Contains(t, uploaded, `"nombre_completo": "Miami Heat"`)
	client.AssertExpectations(t)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, storage.IsNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, storage.IsNotFound(nil))
}
