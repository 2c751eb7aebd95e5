package analytics

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestHashIP(t *testing.T) {
	s := openTestStore(t)

	h := s.HashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, s.HashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")
}

func TestRecordAndStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now.Add(-10 * 24 * time.Hour) }
	require.NoError(t, s.Record(ctx, "198.51.100.1", "old", "/"))

	s.now = func() time.Time { return now.Add(-2 * 24 * time.Hour) }
	require.NoError(t, s.Record(ctx, "198.51.100.2", "week", "/"))

	s.now = func() time.Time { return now }
	require.NoError(t, s.Record(ctx, "198.51.100.1", "today", "/"))
	require.NoError(t, s.Record(ctx, "198.51.100.1", "today", "/sections/projects"))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)
	require.NotEmpty(t, stats.TopPaths)
	assert.Equal(t, PathCount{Path: "/", Visits: 3}, stats.TopPaths[0])
	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, "/sections/projects", stats.RecentVisitors[0].Path)
}

func TestCleanup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now.Add(-400 * 24 * time.Hour) }
	require.NoError(t, s.Record(ctx, "192.0.2.1", "", "/"))
	s.now = func() time.Time { return now }
	require.NoError(t, s.Record(ctx, "192.0.2.1", "", "/"))

	removed, err := s.Cleanup(ctx, Retention)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken()
	require.NoError(t, err)
	b, err := RandomToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestCloseWaitsForTrackedVisits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	var failed atomic.Int32
	for i := 0; i < 5; i++ {
		s.Track("192.0.2.1", "ua", "/", func(error) { failed.Add(1) })
	}
	require.NoError(t, s.Close())
	assert.Zero(t, failed.Load())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	stats, err := reopened.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.TotalVisitors)
}
