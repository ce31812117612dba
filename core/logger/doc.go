// Package logger builds the zap logger shared by commands and the HTTP server.
//
// Level "debug" selects zap's development config (ISO8601 timestamps, caller);
// any other level uses the production config at that level. Format "console"
// switches to colored console output, which the CLI commands use.
//
// Two helpers tag loggers with the context of a run:
//
//	l := logger.WithRun(log, "sync")  // run=sync on every entry of a command
//	l := logger.WithRayID(log, c)     // ray_id of the current request
//
// Core packages (roster, reconcile) never log; they return result objects and
// the services log them.
package logger
