package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

func testSnapshot(id string, createdAt time.Time) *domain.Snapshot {
	return &domain.Snapshot{
		ID:        id,
		Source:    "/exports/" + id,
		CreatedAt: createdAt,
		Contacts:  []domain.ContactProfile{{ID: "c-1", Name: "Ada Lovelace"}},
		Analytics: domain.NetworkAnalytics{TotalConnections: 1, EngagementRate: "100.0"},
	}
}

func TestNewSnapshotStore(t *testing.T) {
	store := NewSnapshotStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.snapshots)
}

func TestSnapshotStore_SaveAndGet(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, store.Save(ctx, testSnapshot("snap-1", now)))

	got, err := store.Get(ctx, "snap-1")
	require.NoError(t, err)
	assert.Equal(t, "/exports/snap-1", got.Source)
	assert.Equal(t, 1, got.Analytics.TotalConnections)
	assert.Equal(t, "Ada Lovelace", got.Contacts[0].Name)
}

func TestSnapshotStore_Save_Invalid(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(ctx, &domain.Snapshot{}), domain.ErrInvalidInput)
}

func TestSnapshotStore_Get_NotFound(t *testing.T) {
	store := NewSnapshotStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnapshotStore_LatestAndList(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.Latest(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Save(ctx, testSnapshot("old", base)))
	require.NoError(t, store.Save(ctx, testSnapshot("new", base.Add(time.Hour))))
	require.NoError(t, store.Save(ctx, testSnapshot("middle", base.Add(time.Minute))))

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", latest.ID)

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "new", infos[0].ID)
	assert.Equal(t, "middle", infos[1].ID)
	assert.Equal(t, "old", infos[2].ID)
	assert.Equal(t, "100.0", infos[0].EngagementRate)
}

func TestSnapshotStore_Latest_SameTimePrefersLaterSave(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, testSnapshot("first", now)))
	require.NoError(t, store.Save(ctx, testSnapshot("second", now)))

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", latest.ID)
}

func TestSnapshotStore_Delete(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSnapshot("snap-1", time.Now())))
	require.NoError(t, store.Delete(ctx, "snap-1"))

	_, err := store.Get(ctx, "snap-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "snap-1"), domain.ErrNotFound)
}

func TestSnapshotStore_ConcurrentAccess(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			_ = store.Save(ctx, testSnapshot(id, time.Now()))
			_, _ = store.Get(ctx, id)
			_, _ = store.List(ctx)
		}(i)
	}
	wg.Wait()

	infos, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 20)
}
