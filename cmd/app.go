package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"roster-manager/core/cache"
	"roster-manager/core/config"
	"roster-manager/core/database"
	"roster-manager/core/logger"
	"roster-manager/core/reconcile"
	"roster-manager/core/roster"
	"roster-manager/core/stats"
	"roster-manager/core/storage"
	"roster-manager/feature/rosters"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the collaborators shared by the commands. Storage, database
// and cache are opened lazily since most commands need only some of them.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger

	store   storage.Client
	db      *gorm.DB
	cache   *cache.Store
	reg     *roster.Registry
	closers []func() error
}

// bootstrap loads the configuration and builds the logger for a command run.
func bootstrap(run string) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &runtime{cfg: cfg, logger: logger.WithRun(l, run)}, nil
}

// Close releases the opened connections and flushes the logger.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			rt.logger.Warn("Failed to close resource", zap.Error(err))
		}
	}
	_ = rt.logger.Sync()
}

func (rt *runtime) storage() (storage.Client, error) {
	if rt.store != nil {
		return rt.store, nil
	}
	client, err := storage.NewClient(rt.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	rt.store = client
	return client, nil
}

func (rt *runtime) database() (*gorm.DB, error) {
	if rt.db != nil {
		return rt.db, nil
	}
	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		rt.closers = append(rt.closers, sqlDB.Close)
	}
	rt.db = db
	return db, nil
}

// optionalDatabase connects when possible and logs a warning otherwise.
func (rt *runtime) optionalDatabase() *gorm.DB {
	db, err := rt.database()
	if err != nil {
		rt.logger.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	return db
}

// repository returns the roster repository of the configured backend.
func (rt *runtime) repository() (roster.Repository, error) {
	switch rt.cfg.Roster.Backend {
	case "", roster.BackendFile:
		return roster.NewFileRepository(rt.cfg.Roster.PlayersFile), nil
	case roster.BackendStorage:
		client, err := rt.storage()
		if err != nil {
			return nil, err
		}
		return storage.NewRosterRepository(client, rt.cfg.Storage.Bucket, rt.cfg.Roster.ObjectName), nil
	case roster.BackendDatabase:
		db, err := rt.database()
		if err != nil {
			return nil, err
		}
		return database.NewRosterRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported roster backend: %s", rt.cfg.Roster.Backend)
	}
}

// registry loads the team registry. A missing file yields an empty registry:
// new teams then fall back to diff-supplied names or their code.
func (rt *runtime) registry() (*roster.Registry, error) {
	if rt.reg != nil {
		return rt.reg, nil
	}
	reg, err := roster.LoadRegistry(rt.cfg.Roster.TeamsFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		rt.logger.Warn("Team registry not found", zap.String("file", rt.cfg.Roster.TeamsFile))
		reg = roster.NewRegistry(nil)
	}
	rt.reg = reg
	return reg, nil
}

// statsClient returns the stats API client.
func (rt *runtime) statsClient() *stats.Client {
	return stats.New(rt.cfg.Stats)
}

// fetcher returns the remote roster fetcher, cached in redis when configured.
func (rt *runtime) fetcher() reconcile.RosterFetcher {
	client := rt.statsClient()
	if !rt.cfg.Cache.Enabled() {
		return client
	}

	store, err := cache.New(rt.cfg.Cache)
	if err != nil {
		rt.logger.Warn("Roster cache unavailable, fetching directly", zap.Error(err))
		return client
	}
	rt.cache = store
	rt.closers = append(rt.closers, store.Close)
	return cache.NewCachedFetcher(client, store, rt.logger)
}

// referenceSource returns the configured reference directory: the local file
// when set, otherwise the stats player index.
func (rt *runtime) referenceSource(currentOnly bool) reconcile.ReferenceSource {
	if path := rt.cfg.Roster.ReferenceFile; path != "" {
		return &reconcile.FileReferenceSource{Path: path}
	}
	return &stats.PlayerIndex{Client: rt.statsClient(), Season: rt.cfg.Stats.Season, CurrentOnly: currentOnly}
}

// rosterService wires the roster service with every configured collaborator.
func (rt *runtime) rosterService() (*rosters.Service, error) {
	repo, err := rt.repository()
	if err != nil {
		return nil, err
	}
	reg, err := rt.registry()
	if err != nil {
		return nil, err
	}

	svc := rosters.NewService(repo, reg, rt.cfg.Reconcile, rt.logger).
		WithFetcher(rt.fetcher(), rt.cfg.Stats.Season).
		WithReference(rt.referenceSource(false))
	return svc, nil
}

// invalidateCache drops cached rosters of season so the next sync refetches them.
func (rt *runtime) invalidateCache(ctx context.Context, season string, teams []roster.TeamInfo) {
	if rt.cache == nil {
		return
	}
	codes := make([]string, len(teams))
	for i, t := range teams {
		codes[i] = t.Code
	}
	if err := rt.cache.Invalidate(ctx, season, codes...); err != nil {
		rt.logger.Warn("Failed to invalidate roster cache", zap.Error(err))
	}
}
