package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:", AutoMigrate: true})
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "roster_players")
	require.NoError(t, err)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Len(t, columns, 7)
	assert.Equal(t, "varchar(16)", colMap["team_code"])
	assert.Equal(t, "int", colMap["player_id"])
	assert.Equal(t, "varchar(128)", colMap["name"])

	// PRAGMA table_info returns no rows for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
