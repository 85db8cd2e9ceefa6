package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/training-service/internal/events"
	"github.com/spec-kit/training-service/internal/persistence"
	"github.com/spec-kit/training-service/internal/repository"
	"github.com/spec-kit/training-service/internal/stats"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

const statsCacheKey = "dashboard:stats"

// ErrCacheMiss signals that the cache holds no value for the stats key.
var ErrCacheMiss = errors.New("stats cache miss")

// StatsCache stores the aggregated dashboard snapshot between requests.
type StatsCache interface {
	Get(ctx context.Context) (*stats.Stats, error)
	Set(ctx context.Context, s stats.Stats, ttl time.Duration) error
	Del(ctx context.Context) error
}

// DashboardService serves aggregated statistics, caching the snapshot so a
// busy dashboard does not re-scan the trainee table on every request.
type DashboardService struct {
	trainees repository.TraineeRepository
	cache    StatsCache
	ttl      time.Duration
	logger   *zap.Logger
}

// DashboardDependencies bundles collaborators for the dashboard service.
type DashboardDependencies struct {
	TraineeRepo repository.TraineeRepository
	Cache       StatsCache
	CacheTTL    time.Duration
	Logger      *zap.Logger
}

// NewDashboardService constructs the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		trainees: deps.TraineeRepo,
		cache:    deps.Cache,
		ttl:      deps.CacheTTL,
		logger:   logger,
	}
}

// GetStats returns the dashboard snapshot, preferring the cached copy. Cache
// failures degrade to a fresh aggregation rather than an error.
func (s *DashboardService) GetStats(ctx context.Context) (stats.Stats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return *cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("stats cache read failed", zap.Error(err))
		}
	}

	trainees, err := s.trainees.List(ctx)
	if err != nil {
		return stats.Stats{}, apperrors.MapError(err)
	}
	snapshot := stats.Aggregate(trainees)

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot, s.ttl); err != nil {
			s.logger.Warn("stats cache write failed", zap.Error(err))
		}
	}
	return snapshot, nil
}

// Invalidate drops the cached snapshot so the next read re-aggregates.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

// RegisterInvalidation subscribes the cache to every event that changes the
// underlying trainee collection.
func (s *DashboardService) RegisterInvalidation(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	handler := func(ctx context.Context, _ events.Event) error {
		s.Invalidate(ctx)
		return nil
	}
	dispatcher.Subscribe(events.EventTraineeEnrolled, handler)
	dispatcher.Subscribe(events.EventTraineeUpdated, handler)
	dispatcher.Subscribe(events.EventTraineeDeleted, handler)
}

type redisStatsCache struct {
	store *persistence.Redis
}

// NewRedisStatsCache backs the stats cache with Redis. A nil store yields a
// cache that always misses.
func NewRedisStatsCache(store *persistence.Redis) StatsCache {
	return &redisStatsCache{store: store}
}

func (c *redisStatsCache) Get(ctx context.Context) (*stats.Stats, error) {
	if c.store == nil || c.store.Client == nil {
		return nil, ErrCacheMiss
	}
	raw, err := c.store.Client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	var s stats.Stats
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *redisStatsCache) Set(ctx context.Context, s stats.Stats, ttl time.Duration) error {
	if c.store == nil || c.store.Client == nil {
		return nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.store.Client.Set(ctx, statsCacheKey, raw, ttl).Err()
}

func (c *redisStatsCache) Del(ctx context.Context) error {
	if c.store == nil || c.store.Client == nil {
		return nil
	}
	return c.store.Client.Del(ctx, statsCacheKey).Err()
}
