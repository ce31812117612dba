package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"roster-manager/core/reconcile"
	"roster-manager/core/roster"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchRoster(ctx context.Context, team roster.TeamInfo, season string) ([]reconcile.RemotePlayer, error) {
	args := m.Called(ctx, team.Code, season)
	players, _ := args.Get(0).([]reconcile.RemotePlayer)
	return players, args.Error(1)
}

type CacheSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
	ctx   context.Context
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	s.store = NewWithClient(client, Config{TTL: time.Hour, Prefix: "test:"})
	s.ctx = context.Background()
}

func (s *CacheSuite) TearDownTest() {
	_ = s.store.Close()
}

func (s *CacheSuite) TestPutAndGet() {
	players := []reconcile.RemotePlayer{{ID: 1630224, Name: "Jalen Green", Number: "4", Position: "G"}}
	s.Require().NoError(s.store.Put(s.ctx, "PHX", "2025-26", players))

	got, ok, err := s.store.Get(s.ctx, "PHX", "2025-26")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(players, got)

	s.True(s.mini.Exists("test:roster:2025-26:PHX"))
	s.Equal(time.Hour, s.mini.TTL("test:roster:2025-26:PHX"))
}

func (s *CacheSuite) TestGetMiss() {
	got, ok, err := s.store.Get(s.ctx, "ATL", "2025-26")
	s.NoError(err)
	s.False(ok)
	s.Nil(got)
}

func (s *CacheSuite) TestExpiry() {
	s.Require().NoError(s.store.Put(s.ctx, "PHX", "2025-26", []reconcile.RemotePlayer{{ID: 1}}))
	s.mini.FastForward(2 * time.Hour)

	_, ok, err := s.store.Get(s.ctx, "PHX", "2025-26")
	s.NoError(err)
	s.False(ok)
}

func (s *CacheSuite) TestInvalidate() {
	s.Require().NoError(s.store.Put(s.ctx, "PHX", "2025-26", []reconcile.RemotePlayer{{ID: 1}}))
	s.Require().NoError(s.store.Put(s.ctx, "BOS", "2025-26", []reconcile.RemotePlayer{{ID: 2}}))

	s.Require().NoError(s.store.Invalidate(s.ctx, "2025-26", "PHX"))

	_, ok, _ := s.store.Get(s.ctx, "PHX", "2025-26")
	s.False(ok)
	_, ok, _ = s.store.Get(s.ctx, "BOS", "2025-26")
	s.True(ok)
}

func (s *CacheSuite) TestCachedFetcher_HitSkipsRemote() {
	next := new(mockFetcher)
	players := []reconcile.RemotePlayer{{ID: 7, Name: "Seven"}}
	next.On("FetchRoster", mock.Anything, "PHX", "2025-26").Return(players, nil).Once()

	fetcher := NewCachedFetcher(next, s.store, zap.NewNop())
	team := roster.TeamInfo{Code: "PHX", Name: "Phoenix Suns"}

	first, err := fetcher.FetchRoster(s.ctx, team, "2025-26")
	s.Require().NoError(err)
	second, err := fetcher.FetchRoster(s.ctx, team, "2025-26")
	s.Require().NoError(err)

	s.Equal(players, first)
	s.Equal(players, second)
	next.AssertExpectations(s.T())
}

func (s *CacheSuite) TestCachedFetcher_EmptyAndErrorsNotCached() {
	next := new(mockFetcher)
	next.On("FetchRoster", mock.Anything, "ATL", "2025-26").Return(nil, errors.New("timeout")).Once()
	next.On("FetchRoster", mock.Anything, "ATL", "2025-26").Return([]reconcile.RemotePlayer{}, nil).Once()

	fetcher := NewCachedFetcher(next, s.store, zap.NewNop())
	team := roster.TeamInfo{Code: "ATL"}

	_, err := fetcher.FetchRoster(s.ctx, team, "2025-26")
	s.Error(err)

	players, err := fetcher.FetchRoster(s.ctx, team, "2025-26")
	s.NoError(err)
	s.Empty(players)

	s.False(s.mini.Exists("test:roster:2025-26:ATL"))
	next.AssertExpectations(s.T())
}

func (s *CacheSuite) TestCachedFetcher_CacheDownFallsThrough() {
	next := new(mockFetcher)
	players := []reconcile.RemotePlayer{{ID: 9}}
	next.On("FetchRoster", mock.Anything, "BOS", "2025-26").Return(players, nil).Once()

	down := NewWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}), Config{TTL: time.Hour})
	defer down.Close()

	core, logs := observer.New(zapcore.WarnLevel)

	got, err := NewCachedFetcher(next, down, zap.New(core)).FetchRoster(s.ctx, roster.TeamInfo{Code: "BOS"}, "2025-26")
	s.NoError(err)
	s.Equal(players, got)

	s.Equal(1, logs.FilterMessage("Roster cache read failed").Len())
	s.Equal(1, logs.FilterMessage("Roster cache write failed").Len())
	entry := logs.FilterMessage("Roster cache read failed").All()[0]
	s.Equal("BOS", entry.ContextMap()["team"])
}

func (s *CacheSuite) TestCachedFetcher_NilLogger() {
	next := new(mockFetcher)
	next.On("FetchRoster", mock.Anything, "MIA", "2025-26").Return([]reconcile.RemotePlayer{{ID: 3}}, nil).Once()

	got, err := NewCachedFetcher(next, s.store, nil).FetchRoster(s.ctx, roster.TeamInfo{Code: "MIA"}, "2025-26")
	s.NoError(err)
	s.Len(got, 1)
	s.True(s.mini.Exists("test:roster:2025-26:MIA"))
}
