// Package database handles database connections, roster persistence and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings, pings, and
// optionally migrates the roster tables.
//
// # Roster persistence
//
// RosterRepository implements roster.Repository over two tables, roster_teams
// and roster_players. Save deletes and reinserts both tables inside a single
// transaction, so a run's result becomes visible all at once.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table. The server
// integrity check compares them with the gorm tags of the models in this package.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	repo := database.NewRosterRepository(db)
//	dir, err := repo.Load(ctx)
package database
