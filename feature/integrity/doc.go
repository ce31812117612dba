// Package integrity provides health checks over the roster data and the
// infrastructure it lives in.
//
// # Checks Provided
//
//   - Structure: the roster and image folders exist in the storage bucket.
//   - Assets: every rostered player has a headshot and every team a logo.
//   - Rosters: no id under two teams, registry and directory agree, no nameless players.
//   - Server: the roster tables match the gorm models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/assets : Runs asset check.
//   - GET /integrity/rosters : Runs roster check.
//   - GET /integrity/server : Runs server schema check.
package integrity
