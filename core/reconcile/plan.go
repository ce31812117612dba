package reconcile

import (
	"fmt"

	"roster-manager/core/roster"
)

// PlanDiff normalizes every entry of a flattened diff.
// It never touches a directory; failures are collected rather than returned.
func PlanDiff(raw []RawEntry) *DiffPlan {
	plan := &DiffPlan{}
	plan.Summary.TotalEntries = len(raw)

	for _, r := range raw {
		if r.Fields == nil {
			err := &UnsupportedDiffShapeError{Index: r.Index, Detail: fmt.Sprintf("entry is a %s, not an object", r.Kind)}
			plan.Failures = append(plan.Failures, newEntryFailure(err, r.Index))
			continue
		}

		entry, err := Normalize(r.Fields, r.Index)
		if err != nil {
			plan.Failures = append(plan.Failures, newEntryFailure(err, r.Index))
			continue
		}
		if entry.Rookie {
			plan.Summary.Rookies++
		}
		plan.Entries = append(plan.Entries, entry)
	}

	plan.Summary.ValidEntries = len(plan.Entries)
	plan.Summary.InvalidEntries = len(plan.Failures)
	return plan
}

// ApplyPlan moves every planned entry into the directory: the player is removed
// from where it currently sits, then inserted into the target team with any
// omitted attributes carried forward from the removed record.
//
// names resolves display names for teams that must be created; when it yields
// nothing the entry's own team name is used, then the code.
func ApplyPlan(dir *roster.Directory, names roster.Namer, plan *DiffPlan, opts Options) *DiffResult {
	result := &DiffResult{
		Failures: plan.Failures,
		Summary:  plan.Summary,
	}

	for _, entry := range plan.Entries {
		move := applyEntry(dir, names, entry, opts)
		result.Moves = append(result.Moves, move)

		switch {
		case len(move.From) > 0:
			result.Summary.Moves++
		default:
			result.Summary.Additions++
		}
		if !move.Inserted {
			result.Summary.NoOps++
		}
		if move.TeamCreated {
			result.Summary.TeamsCreated++
		}
	}

	result.Duplicates = roster.FindDuplicates(dir)
	return result
}

func applyEntry(dir *roster.Directory, names roster.Namer, entry Entry, opts Options) Move {
	var (
		prior *roster.Player
		from  []string
	)

	if opts.RemoveAllOccurrences {
		for _, removal := range dir.RemoveAllByID(entry.ID) {
			if prior == nil {
				p := removal.Player
				prior = &p
			}
			from = append(from, removal.Team)
		}
	} else if removal, ok := dir.RemoveByID(entry.ID); ok {
		prior = &removal.Player
		from = []string{removal.Team}
	}

	_, existed := dir.Team(entry.Team)
	player := entry.Player(prior)

	namer := func(code string) string {
		if names != nil {
			if name := names(code); name != "" {
				return name
			}
		}
		return entry.TeamName
	}
	inserted := dir.Insert(entry.Team, player, namer)

	return Move{
		Index:       entry.Index,
		ID:          entry.ID,
		Name:        player.Name,
		From:        from,
		To:          entry.Team,
		Inserted:    inserted,
		TeamCreated: !existed,
		Rookie:      entry.Rookie,
	}
}
