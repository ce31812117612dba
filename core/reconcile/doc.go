// Package reconcile implements roster reconciliation: applying diff
// transactions to a roster directory, resolving player identities against a
// reference directory, and rebuilding the directory from remote rosters.
//
// # Diff application
//
// A diff is a JSON list of entries or a mapping of team code to entries.
// ApplyDiff runs in two phases:
//
// 1. Plan: every entry is normalized (PlanDiff). Entries missing a team, with a
//    non-integer id, or that are not objects become EntryFailures.
//
// 2. Apply: each valid entry removes the player from its current team and
//    inserts it into the target team (ApplyPlan). Attributes the entry omits are
//    carried forward from the removed record.
//
// Unless Options.SkipInvalid is set, any failure aborts before the directory is
// modified. After applying, the directory is scanned for ids listed under more
// than one team; these are reported, never repaired.
//
// # Identity resolution
//
// Resolve rewrites player ids and names from a Reference. Exact
// case-insensitive matches apply first; otherwise the best TokenSortRatio
// candidate applies when it scores at least MatchThreshold. Reference tables
// are cached per source with a TTL (GetOrBuildReference).
//
// # Synchronization
//
// Synchronize rebuilds the directory from a RosterFetcher, team by team in
// registry order, keeping prior data for teams whose fetch yields nothing.
//
// # Usage Example
//
//	dir, _ := repo.Load(ctx)
//	result, err := reconcile.ApplyDiff(dir, registry.DisplayName, payload, reconcile.Options{})
//	if err != nil {
//	    return err
//	}
//	for _, line := range result.Duplicates.Lines() {
//	    fmt.Println(line)
//	}
package reconcile
