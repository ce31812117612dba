package stats

import (
	"context"

	"roster-manager/core/reconcile"
)

// PlayerIndex exposes the all-players endpoint as a reference directory.
type PlayerIndex struct {
	Client *Client
	Season string
	// CurrentOnly restricts the index to players active in Season.
	CurrentOnly bool
}

// Name implements reconcile.ReferenceSource.
func (p *PlayerIndex) Name() string {
	suffix := ""
	if p.CurrentOnly {
		suffix = ":current"
	}
	return "stats:" + p.Client.season(p.Season) + suffix
}

// LoadReference implements reconcile.ReferenceSource.
func (p *PlayerIndex) LoadReference(ctx context.Context) ([]reconcile.Identity, error) {
	return p.Client.AllPlayers(ctx, p.Season, p.CurrentOnly)
}

var _ reconcile.ReferenceSource = (*PlayerIndex)(nil)
