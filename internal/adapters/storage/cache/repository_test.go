package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/stage-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/stage-service/internal/domain"
	"github.com/jsamuelsen11/stage-service/internal/domain/stage"
	"github.com/jsamuelsen11/stage-service/mocks"
)

func newTestCache(t *testing.T, next *mocks.MockStageRepository) (*Repository, *mr.Miniredis) {
	t.Helper()

	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRepository(next, client, time.Minute, nil), m
}

func sampleStage(id int64, status stage.Status) *stage.Stage {
	d := 7.0
	end := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	return &stage.Stage{
		ID:           id,
		Name:         "Foundation",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      &end,
		Duration:     &d,
		DurationUnit: stage.UnitDays,
		Color:        "#FF0000",
		Status:       status,
	}
}

func TestRepository_SelectByID_ReadThrough(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockStageRepository(t)
	repo, m := newTestCache(t, next)
	ctx := context.Background()

	next.EXPECT().SelectByID(mock.Anything, int64(1), false).Return(sampleStage(1, stage.StatusNew), nil).Once()

	first, err := repo.SelectByID(ctx, 1, true)
	require.NoError(t, err)
	require.True(t, m.Exists("stages:1"))

	second, err := repo.SelectByID(ctx, 1, true)
	require.NoError(t, err)
	require.Equal(t, first.Name, second.Name)
	require.Equal(t, *first.Duration, *second.Duration)
	require.True(t, first.EndDate.Equal(*second.EndDate))
	require.Equal(t, "#FF0000", second.Color)
}

func TestRepository_SelectByID_HidesCachedDeleted(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockStageRepository(t)
	repo, _ := newTestCache(t, next)
	ctx := context.Background()

	next.EXPECT().SelectByID(mock.Anything, int64(5), false).Return(sampleStage(5, stage.StatusDeleted), nil).Once()

	_, err := repo.SelectByID(ctx, 5, true)
	require.ErrorIs(t, err, domain.ErrNotFound)

	got, err := repo.SelectByID(ctx, 5, false)
	require.NoError(t, err)
	require.Equal(t, stage.StatusDeleted, got.Status)
}

func TestRepository_SelectByID_NotFoundNotCached(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockStageRepository(t)
	repo, m := newTestCache(t, next)

	next.EXPECT().SelectByID(mock.Anything, int64(9), false).Return(nil, domain.ErrNotFound).Twice()

	for range 2 {
		_, err := repo.SelectByID(context.Background(), 9, false)
		require.ErrorIs(t, err, domain.ErrNotFound)
	}
	require.False(t, m.Exists("stages:9"))
}

func TestRepository_SelectAll_FiltersCachedList(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockStageRepository(t)
	repo, _ := newTestCache(t, next)
	ctx := context.Background()

	all := []stage.Stage{*sampleStage(1, stage.StatusNew), *sampleStage(2, stage.StatusDeleted)}
	next.EXPECT().SelectAll(mock.Anything, false).Return(all, nil).Once()

	visible, err := repo.SelectAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, int64(1), visible[0].ID)

	everything, err := repo.SelectAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, everything, 2)
}

func TestRepository_WritesInvalidate(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockStageRepository(t)
	repo, m := newTestCache(t, next)
	ctx := context.Background()

	require.NoError(t, m.Set("stages:3", "{}"))
	require.NoError(t, m.Set("stages:all", "[]"))

	next.EXPECT().UpdateFields(mock.Anything, int64(3), mock.Anything).Return(nil).Once()
	require.NoError(t, repo.UpdateFields(ctx, 3, stage.Changes{stage.ColumnName: "x"}))
	requireFenced(t, m, "stages:3")
	requireFenced(t, m, "stages:all")

	require.NoError(t, m.Set("stages:all", "[]"))
	next.EXPECT().Insert(mock.Anything, mock.Anything).Return(int64(4), nil).Once()
	id, err := repo.Insert(ctx, sampleStage(0, stage.StatusNew))
	require.NoError(t, err)
	require.Equal(t, int64(4), id)
	requireFenced(t, m, "stages:all")
}

func requireFenced(t *testing.T, m *mr.Miniredis, key string) {
	t.Helper()

	got, err := m.Get(key)
	require.NoError(t, err)
	require.Equal(t, fenceValue, got)
	require.True(t, m.TTL(key) > 0, "fence on %s has no TTL", key)
}

func TestRepository_StaleFillAfterWriteIsDropped(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockStageRepository(t)
	repo, m := newTestCache(t, next)
	ctx := context.Background()

	// The read completes with the old row after a write has landed.
	next.EXPECT().UpdateFields(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	next.EXPECT().SelectByID(mock.Anything, int64(1), false).
		RunAndReturn(func(ctx context.Context, _ int64, _ bool) (*stage.Stage, error) {
			require.NoError(t, repo.UpdateFields(ctx, 1, stage.Changes{stage.ColumnStatus: "DELETED"}))
			return sampleStage(1, stage.StatusNew), nil
		}).Once()

	got, err := repo.SelectByID(ctx, 1, true)
	require.NoError(t, err)
	require.Equal(t, stage.StatusNew, got.Status)
	requireFenced(t, m, "stages:1")

	// Reads during the fence go to the wrapped repository.
	next.EXPECT().SelectByID(mock.Anything, int64(1), false).Return(sampleStage(1, stage.StatusDeleted), nil).Once()
	_, err = repo.SelectByID(ctx, 1, true)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Once the fence expires the next read fills normally.
	m.FastForward(fenceTTL + time.Second)
	next.EXPECT().SelectByID(mock.Anything, int64(1), false).Return(sampleStage(1, stage.StatusDeleted), nil).Once()
	_, err = repo.SelectByID(ctx, 1, false)
	require.NoError(t, err)
	require.NotEqual(t, fenceValue, mustGet(t, m, "stages:1"))
}

func mustGet(t *testing.T, m *mr.Miniredis, key string) string {
	t.Helper()

	v, err := m.Get(key)
	require.NoError(t, err)
	return v
}

func TestRepository_CorruptEntryFallsBack(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockStageRepository(t)
	repo, m := newTestCache(t, next)

	require.NoError(t, m.Set("stages:2", "not json"))
	next.EXPECT().SelectByID(mock.Anything, int64(2), false).Return(sampleStage(2, stage.StatusNew), nil).Once()

	got, err := repo.SelectByID(context.Background(), 2, true)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.ID)
}

func TestRepository_RedisDownFallsBack(t *testing.T) {
	t.Parallel()

	m, err := mr.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: m.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	m.Close()

	next := mocks.NewMockStageRepository(t)
	repo := NewRepository(next, client, time.Minute, nil)

	next.EXPECT().SelectAll(mock.Anything, false).Return([]stage.Stage{*sampleStage(1, stage.StatusNew)}, nil).Once()

	got, err := repo.SelectAll(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.Error(t, repo.HealthCheck(context.Background()))
}

func TestRepository_TTLExpiry(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockStageRepository(t)
	repo, m := newTestCache(t, next)
	ctx := context.Background()

	next.EXPECT().SelectByID(mock.Anything, int64(1), false).Return(sampleStage(1, stage.StatusNew), nil).Twice()

	_, err := repo.SelectByID(ctx, 1, false)
	require.NoError(t, err)

	m.FastForward(2 * time.Minute)

	_, err = repo.SelectByID(ctx, 1, false)
	require.NoError(t, err)
}

func TestRepository_OverMemoryStore(t *testing.T) {
	t.Parallel()

	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRepository(memory.NewRepository(), client, time.Minute, nil)
	ctx := context.Background()

	id, err := repo.Insert(ctx, sampleStage(0, stage.StatusNew))
	require.NoError(t, err)

	_, err = repo.SelectByID(ctx, id, true)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateFields(ctx, id, stage.Changes{stage.ColumnStatus: "DELETED"}))

	_, err = repo.SelectByID(ctx, id, true)
	require.True(t, errors.Is(err, domain.ErrNotFound))

	list, err := repo.SelectAll(ctx, true)
	require.NoError(t, err)
	require.Empty(t, list)

	require.Equal(t, "redis", repo.Name())
	require.NoError(t, repo.HealthCheck(ctx))
}
