// Package config provides configuration management for the Roster Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section, registered by reflection.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, read-only mode)
//   - Database: SQL connection details for the database roster backend
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Cache: Redis cache for remote roster fetches
//   - Roster: roster file locations and persistence backend
//   - Reconcile: diff failure policy, removal policy, reference cache TTL
//   - Stats: remote stats API endpoint, season and retry policy
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Roster.PlayersFile)
package config
