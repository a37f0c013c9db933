package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
)

type statsStub struct {
	stats *models.DailyOpsStats
	calls int
}

func (s *statsStub) StatsByDate(ctx context.Context, date time.Time) (*models.DailyOpsStats, error) {
	s.calls++
	clone := *s.stats
	clone.Date = date
	return &clone, nil
}

type cacheStub struct {
	store map[string][]byte
}

func newCacheStub() *cacheStub {
	return &cacheStub{store: map[string][]byte{}}
}

func (c *cacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	payload, ok := c.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (c *cacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = payload
	return nil
}

func (c *cacheStub) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.store, key)
	}
	return nil
}

func TestDashboardSummaryCachesAggregate(t *testing.T) {
	stats := &statsStub{stats: &models.DailyOpsStats{
		TotalFlights:     42,
		ByStatus:         map[string]int{"SCH": 40, "CXX": 2},
		ManuallyModified: 5,
		AutoManaged:      37,
	}}
	cache := newCacheStub()
	svc := NewDashboardService(stats, cache, time.Minute, nil)
	svc.now = func() time.Time { return time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC) }

	first, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, 42, first.Today.TotalFlights)
	assert.Equal(t, 1, stats.calls)

	second, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, 42, second.Today.TotalFlights)
	assert.Equal(t, 1, stats.calls, "second read must come from cache")
}

func TestDashboardInvalidateForcesRefresh(t *testing.T) {
	stats := &statsStub{stats: &models.DailyOpsStats{TotalFlights: 1, ByStatus: map[string]int{}}}
	cache := newCacheStub()
	svc := NewDashboardService(stats, cache, time.Minute, nil)
	svc.now = func() time.Time { return time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC) }

	_, err := svc.Summary(context.Background())
	require.NoError(t, err)
	svc.Invalidate(context.Background())

	_, err = svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.calls)
}

func TestDashboardSummaryWorksWithoutCache(t *testing.T) {
	stats := &statsStub{stats: &models.DailyOpsStats{TotalFlights: 7, ByStatus: map[string]int{}}}
	svc := NewDashboardService(stats, nil, time.Minute, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Today.TotalFlights)
}
