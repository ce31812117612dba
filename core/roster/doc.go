// Package roster holds the canonical roster directory: an ordered mapping of
// team code to team record, each with an ordered list of players.
//
// # Directory
//
// The Directory keeps teams in persisted order (then creation order for teams
// added during a run) and exposes the primitive mutations used by reconciliation:
//
//   - RemoveByID: removes the first occurrence of a player id, scanning teams in order.
//   - RemoveAllByID: removes every occurrence of a player id.
//   - Insert: appends a player to a team, creating the team when missing. The insert
//     is a no-op when the id is already present in that team.
//
// FindDuplicates scans a directory for ids listed under more than one team. It never
// repairs what it finds.
//
// # Registry
//
// The Registry is the read-only list of known teams (code, display name, external id)
// loaded from JSON or YAML. Key order in the source file is preserved.
//
// # Persistence
//
// A Repository loads and saves a whole directory. FileRepository replaces the file
// atomically on save; object storage and SQL repositories live in core/storage and
// core/database.
package roster
