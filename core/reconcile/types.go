package reconcile

import (
	"time"

	"roster-manager/core/roster"
)

// Options controls how a diff is applied.
type Options struct {
	// SkipInvalid records entries that fail normalization and applies the rest.
	// When false, any failing entry aborts the run before the directory is touched.
	SkipInvalid bool

	// RemoveAllOccurrences removes every occurrence of a moved id instead of the
	// first one found in team order.
	RemoveAllOccurrences bool
}

// Config holds reconciliation settings.
type Config struct {
	SkipInvalid          bool          `mapstructure:"skip_invalid" default:"false"`
	RemoveAllOccurrences bool          `mapstructure:"remove_all_occurrences" default:"false"`
	ReferenceCacheTTL    time.Duration `mapstructure:"reference_cache_ttl" default:"10m"`
}

// Options returns the diff options carried by the configuration.
func (c Config) Options() Options {
	return Options{SkipInvalid: c.SkipInvalid, RemoveAllOccurrences: c.RemoveAllOccurrences}
}

// Move is the applied outcome of one diff entry.
type Move struct {
	// Index is the entry position in the flattened diff.
	Index int `json:"index"`
	// ID is the player identity.
	ID int `json:"id"`
	// Name is the name written to the target team.
	Name string `json:"name"`
	// From lists the teams the player was removed from (empty for a new player).
	From []string `json:"from,omitempty"`
	// To is the target team.
	To string `json:"to"`
	// Inserted is false when the target already listed the id.
	Inserted bool `json:"inserted"`
	// TeamCreated is set when the target team did not exist before this entry.
	TeamCreated bool `json:"team_created"`
	// Rookie forwards the entry's informational flag.
	Rookie bool `json:"rookie"`
}

// DiffPlan holds the normalized entries of a diff, ready to apply.
type DiffPlan struct {
	// Entries are the valid entries in diff order.
	Entries []Entry `json:"entries"`

	// Failures are the entries that failed normalization.
	Failures []EntryFailure `json:"failures"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a diff run.
type PlanSummary struct {
	// TotalEntries is the number of entries in the flattened diff.
	TotalEntries int `json:"total_entries"`

	// ValidEntries counts entries that normalized successfully.
	ValidEntries int `json:"valid_entries"`

	// InvalidEntries counts entries that failed normalization.
	InvalidEntries int `json:"invalid_entries"`

	// Moves counts players removed from at least one team and reinserted.
	Moves int `json:"moves"`

	// Additions counts players that were not in the directory before.
	Additions int `json:"additions"`

	// NoOps counts entries whose insert found the id already in the target team.
	NoOps int `json:"no_ops"`

	// TeamsCreated counts teams materialized during the run.
	TeamsCreated int `json:"teams_created"`

	// Rookies counts entries flagged as rookies.
	Rookies int `json:"rookies"`
}

// DiffResult is the outcome of applying a diff to a directory.
type DiffResult struct {
	Moves      []Move            `json:"moves"`
	Failures   []EntryFailure    `json:"failures"`
	Duplicates roster.Duplicates `json:"duplicates"`
	Summary    PlanSummary       `json:"summary"`
}
