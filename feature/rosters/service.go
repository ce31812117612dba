package rosters

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"roster-manager/core/reconcile"
	"roster-manager/core/roster"

	"go.uber.org/zap"
)

var (
	// ErrTeamNotFound is returned when a team code is not in the directory.
	ErrTeamNotFound = errors.New("team not found")
	// ErrSyncUnavailable is returned by Sync when no remote source is configured.
	ErrSyncUnavailable = errors.New("no remote roster source configured")
	// ErrResolveUnavailable is returned by Resolve when no reference directory is configured.
	ErrResolveUnavailable = errors.New("no reference directory configured")
)

// ApplyReport is the outcome of a diff run.
type ApplyReport struct {
	reconcile.DiffResult
	DryRun bool `json:"dry_run"`
	Saved  bool `json:"saved"`
}

// SyncReport is the outcome of a synchronization run.
type SyncReport struct {
	reconcile.SyncResult
	Duplicates roster.Duplicates `json:"duplicates"`
	Players    int               `json:"players"`
	DryRun     bool              `json:"dry_run"`
	Saved      bool              `json:"saved"`
}

// ResolveReport is the outcome of an identity resolution run.
type ResolveReport struct {
	reconcile.ResolveResult
	Duplicates roster.Duplicates `json:"duplicates"`
	DryRun     bool              `json:"dry_run"`
	Saved      bool              `json:"saved"`
}

// Service runs reconciliation against the persisted roster directory.
// Each run loads the directory, mutates it in memory and saves it back whole.
type Service struct {
	repo      roster.Repository
	registry  *roster.Registry
	settings  reconcile.Config
	fetcher   reconcile.RosterFetcher
	season    string
	reference reconcile.ReferenceSource
	logger    *zap.Logger

	// runs are serialized so concurrent requests never interleave load and save
	mu sync.Mutex
}

// NewService creates a new roster service.
func NewService(repo roster.Repository, registry *roster.Registry, settings reconcile.Config, logger *zap.Logger) *Service {
	if registry == nil {
		registry = roster.NewRegistry(nil)
	}
	return &Service{
		repo:     repo,
		registry: registry,
		settings: settings,
		logger:   logger,
	}
}

// WithFetcher enables Sync using fetcher, with season as the default season.
func (s *Service) WithFetcher(fetcher reconcile.RosterFetcher, season string) *Service {
	s.fetcher = fetcher
	s.season = season
	return s
}

// WithReference enables Resolve against source.
func (s *Service) WithReference(source reconcile.ReferenceSource) *Service {
	s.reference = source
	return s
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

// DefaultOptions returns the configured diff options.
func (s *Service) DefaultOptions() reconcile.Options {
	return s.settings.Options()
}

// Directory loads the current directory.
func (s *Service) Directory(ctx context.Context) (*roster.Directory, error) {
	dir, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rosters: %w", err)
	}
	return dir, nil
}

// Team returns one team of the current directory.
func (s *Service) Team(ctx context.Context, code string) (*roster.Team, error) {
	dir, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}
	team, ok := dir.Team(code)
	if !ok {
		return nil, fmt.Errorf("%s: %w", code, ErrTeamNotFound)
	}
	return team, nil
}

// Duplicates reports ids listed under more than one team.
func (s *Service) Duplicates(ctx context.Context) (roster.Duplicates, error) {
	dir, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}
	return roster.FindDuplicates(dir), nil
}

// ApplyDiff applies a diff payload. Nothing is saved when the payload is
// rejected or dryRun is set.
func (s *Service) ApplyDiff(ctx context.Context, payload []byte, opts reconcile.Options, dryRun bool) (*ApplyReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}

	result, err := reconcile.ApplyDiff(dir, s.registry.DisplayName, payload, opts)
	if err != nil {
		s.logger.Warn("Diff rejected", zap.Error(err))
		return nil, err
	}

	report := &ApplyReport{DiffResult: *result, DryRun: dryRun}
	s.logger.Info("Diff applied",
		zap.Int("entries", result.Summary.TotalEntries),
		zap.Int("moves", result.Summary.Moves),
		zap.Int("additions", result.Summary.Additions),
		zap.Int("no_ops", result.Summary.NoOps),
		zap.Int("teams_created", result.Summary.TeamsCreated),
		zap.Int("failures", len(result.Failures)),
		zap.Bool("dry_run", dryRun),
	)
	s.logDuplicates(result.Duplicates)

	if dryRun {
		return report, nil
	}
	if err := s.repo.Save(ctx, dir); err != nil {
		return nil, fmt.Errorf("failed to save rosters: %w", err)
	}
	report.Saved = true
	return report, nil
}

// Sync rebuilds the directory from the remote source. An empty season uses
// the configured one.
func (s *Service) Sync(ctx context.Context, season string, dryRun bool) (*SyncReport, error) {
	if s.fetcher == nil {
		return nil, ErrSyncUnavailable
	}
	if season == "" {
		season = s.season
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prior, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}

	dir, result := reconcile.Synchronize(ctx, s.registry, prior, s.fetcher, season)
	report := &SyncReport{
		SyncResult: *result,
		Duplicates: roster.FindDuplicates(dir),
		Players:    dir.PlayerCount(),
		DryRun:     dryRun,
	}

	s.logger.Info("Rosters synchronized",
		zap.String("season", season),
		zap.Int("refreshed", len(result.Refreshed)),
		zap.Strings("preserved", result.Preserved),
		zap.Strings("emptied", result.Emptied),
		zap.Int("players", report.Players),
		zap.Bool("dry_run", dryRun),
	)
	for _, f := range result.FetchFailures {
		s.logger.Warn("Roster fetch failed, prior data kept", zap.String("team", f.Team), zap.String("error", f.Error))
	}
	if len(result.Dropped) > 0 {
		s.logger.Warn("Duplicated IDs detected", zap.Ints("ids", result.DuplicateIDs()))
	}
	s.logDuplicates(report.Duplicates)

	if dryRun {
		return report, nil
	}
	if err := s.repo.Save(ctx, dir); err != nil {
		return nil, fmt.Errorf("failed to save rosters: %w", err)
	}
	report.Saved = true
	return report, nil
}

// Resolve rewrites player identities against the reference directory.
// refresh drops the cached reference first.
func (s *Service) Resolve(ctx context.Context, dryRun, refresh bool) (*ResolveReport, error) {
	if s.reference == nil {
		return nil, ErrResolveUnavailable
	}
	if refresh {
		reconcile.InvalidateReference(s.reference)
	}

	ref, err := reconcile.GetOrBuildReference(ctx, s.reference, s.settings.ReferenceCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}

	result := reconcile.Resolve(dir, ref)
	report := &ResolveReport{
		ResolveResult: *result,
		Duplicates:    roster.FindDuplicates(dir),
		DryRun:        dryRun,
	}

	s.logger.Info("Identities resolved",
		zap.String("reference", s.reference.Name()),
		zap.Int("corrections", result.Corrections),
		zap.Int("exact", result.Exact),
		zap.Int("fuzzy", result.Fuzzy),
		zap.Bool("dry_run", dryRun),
	)
	if len(result.Unmatched) > 0 {
		s.logger.Warn("Players not found in reference directory", zap.Strings("names", result.Unmatched))
	}
	s.logDuplicates(report.Duplicates)

	if dryRun {
		return report, nil
	}
	if err := s.repo.Save(ctx, dir); err != nil {
		return nil, fmt.Errorf("failed to save rosters: %w", err)
	}
	report.Saved = true
	return report, nil
}

// Reference returns the cached reference table, building it if needed.
func (s *Service) Reference(ctx context.Context) (*reconcile.Reference, error) {
	if s.reference == nil {
		return nil, ErrResolveUnavailable
	}
	return reconcile.GetOrBuildReference(ctx, s.reference, s.settings.ReferenceCacheTTL)
}

func (s *Service) logDuplicates(dups roster.Duplicates) {
	if len(dups) == 0 {
		return
	}
	s.logger.Warn("Players listed under more than one team", zap.Strings("duplicates", dups.Lines()))
}
