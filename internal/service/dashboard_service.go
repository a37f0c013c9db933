package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
)

type opsStatsReader interface {
	StatsByDate(ctx context.Context, date time.Time) (*models.DailyOpsStats, error)
}

type summaryCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// DashboardService serves the daily operations overview, cached in Redis
// because every terminal display polls it.
type DashboardService struct {
	stats  opsStatsReader
	cache  summaryCache
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService wires the dashboard aggregates.
func NewDashboardService(stats opsStatsReader, cache summaryCache, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DashboardService{
		stats:  stats,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Summary returns today's operations overview, from cache when fresh.
// A cache outage degrades to a direct database read.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	today := atMidnightUTC(s.now())
	key := summaryCacheKey(today)

	if s.cache != nil {
		var cached dto.DashboardSummary
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			cached.FromCache = true
			return &cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	stats, err := s.stats.StatsByDate(ctx, today)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "aggregate daily operations")
	}
	stats.GeneratedAt = s.now().UTC()

	summary := &dto.DashboardSummary{
		Today:    *stats,
		CachedAt: stats.GeneratedAt,
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, summary, s.ttl); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return summary, nil
}

// Invalidate drops today's cached summary, called after engine runs and
// manual edits so displays catch up before the TTL expires.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	key := summaryCacheKey(atMidnightUTC(s.now()))
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

func summaryCacheKey(date time.Time) string {
	return fmt.Sprintf("osams:dashboard:summary:%s", date.Format("2006-01-02"))
}
