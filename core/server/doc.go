// Package server holds the HTTP server configuration.
//
// The main application entry point handles server startup; this package only
// defines the settings the start command and the middleware read.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key, and a read-only switch
// that blocks the mutating roster endpoints.
package server
