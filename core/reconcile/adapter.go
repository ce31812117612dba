package reconcile

import (
	"context"

	"roster-manager/core/roster"
)

// RemotePlayer is one row of an authoritative team roster.
type RemotePlayer struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Position string `json:"position"`
}

// RosterFetcher retrieves the current roster of a team for a season.
// Implementations own transport concerns (timeouts, retries, caching). An empty
// result and an error are both treated as "no data" by Synchronize.
type RosterFetcher interface {
	FetchRoster(ctx context.Context, team roster.TeamInfo, season string) ([]RemotePlayer, error)
}

// ReferenceSource retrieves the reference player directory.
type ReferenceSource interface {
	// Name identifies the source for caching and logging.
	Name() string

	// LoadReference returns the reference identities in source order.
	LoadReference(ctx context.Context) ([]Identity, error)
}
