package news

import (
	"context"
	"fmt"

	"roster-manager/core/reconcile"
)

// DiffEntry is one line of a generated diff. It carries no team: the pages do
// not state destinations reliably, so the operator fills equipo in before
// applying.
type DiffEntry struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Rookie bool   `json:"rookie,omitempty"`
}

// Report is the outcome of a generation run.
// Missing lists veteran names with no reference match.
type Report struct {
	Entries  []DiffEntry `json:"entries"`
	Missing  []string    `json:"missing"`
	Trades   int         `json:"trades"`
	Signings int         `json:"signings"`
	Rookies  int         `json:"rookies"`
}

// Generator builds a diff of offseason arrivals from news pages.
type Generator struct {
	pages   PageSource
	sources Sources
}

// NewGenerator returns a generator reading sources through pages.
func NewGenerator(pages PageSource, sources Sources) *Generator {
	return &Generator{pages: pages, sources: sources}
}

// Generate scrapes the pages and resolves veteran names against ref.
// Veterans (trades and signings) come first in name order, then draft picks
// in pick order with the ids published on the draft page.
func (g *Generator) Generate(ctx context.Context, ref *reconcile.Reference) (*Report, error) {
	report := &Report{Entries: []DiffEntry{}, Missing: []string{}}

	var trades, signings []string
	if g.sources.TradeURL != "" {
		text, err := g.pages.PageText(ctx, g.sources.TradeURL)
		if err != nil {
			return nil, fmt.Errorf("trade tracker: %w", err)
		}
		trades = ExtractTrades(text)
	}
	if g.sources.FreeAgencyURL != "" {
		text, err := g.pages.PageText(ctx, g.sources.FreeAgencyURL)
		if err != nil {
			return nil, fmt.Errorf("free agency tracker: %w", err)
		}
		signings = ExtractSignings(text)
	}
	report.Trades, report.Signings = len(trades), len(signings)

	veterans := make(map[string]struct{}, len(trades)+len(signings))
	for _, name := range trades {
		veterans[name] = struct{}{}
	}
	for _, name := range signings {
		veterans[name] = struct{}{}
	}

	for _, name := range sortedKeys(veterans) {
		identity, ok := ref.Lookup(name)
		if !ok {
			report.Missing = append(report.Missing, name)
			continue
		}
		report.Entries = append(report.Entries, DiffEntry{ID: identity.ID, Name: name})
	}

	if g.sources.DraftURL != "" {
		text, err := g.pages.PageText(ctx, g.sources.DraftURL)
		if err != nil {
			return nil, fmt.Errorf("draft results: %w", err)
		}
		for _, pick := range ExtractDraft(text) {
			report.Entries = append(report.Entries, DiffEntry{ID: pick.ID, Name: pick.Name, Rookie: true})
			report.Rookies++
		}
	}

	return report, nil
}
