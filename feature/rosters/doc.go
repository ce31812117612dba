// Package rosters exposes roster reconciliation as a service and HTTP API.
//
// Service wraps a roster.Repository and runs the reconcile operations as
// load, mutate, save cycles: ApplyDiff, Sync and Resolve. Every run can be
// a dry run, in which case the report is computed and nothing is saved.
//
// # HTTP Endpoints
//
//   - GET  /rosters : Whole directory.
//   - GET  /rosters/duplicates : Ids listed under more than one team.
//   - GET  /rosters/:team : One team.
//   - POST /rosters/diff : Apply a diff (?dry_run, ?skip_invalid, ?remove_all).
//   - POST /rosters/sync : Synchronize with the stats source (?season, ?dry_run).
//   - POST /rosters/resolve : Resolve identities (?dry_run, ?refresh).
//
// Normalization failures return 422 with the failing entry index.
package rosters
