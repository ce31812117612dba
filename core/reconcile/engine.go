package reconcile

import (
	"roster-manager/core/roster"
)

// ApplyDiff parses, plans and applies a diff payload to dir in one call.
//
// Entry failures abort the run before dir is modified, unless opts.SkipInvalid
// is set, in which case they are returned in DiffResult.Failures and the valid
// entries are applied. A payload that is neither a list nor a team mapping is
// always an error.
func ApplyDiff(dir *roster.Directory, names roster.Namer, payload []byte, opts Options) (*DiffResult, error) {
	raw, err := ParseDiff(payload)
	if err != nil {
		return nil, err
	}

	plan := PlanDiff(raw)
	if len(plan.Failures) > 0 && !opts.SkipInvalid {
		return nil, plan.Failures[0].Err
	}

	return ApplyPlan(dir, names, plan, opts), nil
}
