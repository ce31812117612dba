package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"roster-manager/core/reconcile"
	"roster-manager/core/roster"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store is a Redis-backed cache of remote team rosters.
type Store struct {
	client *redis.Client
	cfg    Config
}

// New connects to the Redis server at cfg.URL.
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid cache url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping cache: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{client: client, cfg: cfg}
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Get returns the cached roster of team for season. The second return value is
// false on a cache miss.
func (s *Store) Get(ctx context.Context, team, season string) ([]reconcile.RemotePlayer, bool, error) {
	data, err := s.client.Get(ctx, s.key(team, season)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var players []reconcile.RemotePlayer
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry for %s: %w", team, err)
	}
	return players, true, nil
}

// Put stores the roster of team for season with the configured TTL.
func (s *Store) Put(ctx context.Context, team, season string, players []reconcile.RemotePlayer) error {
	data, err := json.Marshal(players)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(team, season), data, s.cfg.TTL).Err()
}

// Invalidate removes the cached rosters of the given teams for season.
func (s *Store) Invalidate(ctx context.Context, season string, teams ...string) error {
	if len(teams) == 0 {
		return nil
	}
	keys := make([]string, len(teams))
	for i, team := range teams {
		keys[i] = s.key(team, season)
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *Store) key(team, season string) string {
	return s.cfg.Prefix + "roster:" + season + ":" + team
}

// CachedFetcher decorates a RosterFetcher with the Redis cache. Only non-empty
// rosters are stored, so an empty or failed fetch is retried on the next run.
// Cache errors never fail a fetch; they are logged at warn level.
type CachedFetcher struct {
	next   reconcile.RosterFetcher
	store  *Store
	logger *zap.Logger
}

// NewCachedFetcher returns a fetcher that consults store before next.
func NewCachedFetcher(next reconcile.RosterFetcher, store *Store, logger *zap.Logger) *CachedFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedFetcher{next: next, store: store, logger: logger}
}

// FetchRoster implements reconcile.RosterFetcher.
func (f *CachedFetcher) FetchRoster(ctx context.Context, team roster.TeamInfo, season string) ([]reconcile.RemotePlayer, error) {
	players, ok, err := f.store.Get(ctx, team.Code, season)
	if err != nil {
		f.logger.Warn("Roster cache read failed",
			zap.String("team", team.Code),
			zap.String("season", season),
			zap.Error(err),
		)
	} else if ok {
		return players, nil
	}

	players, err = f.next.FetchRoster(ctx, team, season)
	if err != nil || len(players) == 0 {
		return players, err
	}

	if err := f.store.Put(ctx, team.Code, season, players); err != nil {
		f.logger.Warn("Roster cache write failed",
			zap.String("team", team.Code),
			zap.String("season", season),
			zap.Error(err),
		)
	}
	return players, nil
}

var _ reconcile.RosterFetcher = (*CachedFetcher)(nil)
