package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrong@pass:word",
			Name:           "rosters",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "postgres"})
		assert.EqualError(t, err, "unsupported database driver: postgres")
		assert.Nil(t, db)
	})

	t.Run("SQLite with migration", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:", AutoMigrate: true})
		require.NoError(t, err)

		assert.True(t, db.Migrator().HasTable(&TeamRecord{}))
		assert.True(t, db.Migrator().HasTable(&PlayerRecord{}))
	})
}

func TestConfig_IsValidDriver(t *testing.T) {
	tests := []struct {
		driver string
		want   bool
	}{
		{DriverMySQL, true},
		{DriverSQLite, true},
		{"postgres", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Config{Driver: tt.driver}.IsValidDriver(), tt.driver)
	}
}
