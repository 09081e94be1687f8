package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/workout-tracker/internal/database"
	"github.com/sbilibin2017/workout-tracker/internal/models"
	"github.com/sbilibin2017/workout-tracker/internal/repositories"
	"github.com/sbilibin2017/workout-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapCache is an in-process ItemCache.
type mapCache struct {
	mu    sync.Mutex
	items map[int64][]models.ExerciseItem
}

func newMapCache() *mapCache {
	return &mapCache{items: map[int64][]models.ExerciseItem{}}
}

func (c *mapCache) GetItems(_ context.Context, userID int64) ([]models.ExerciseItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, ok := c.items[userID]
	if !ok {
		return nil, repositories.ErrCacheMiss
	}
	return items, nil
}

func (c *mapCache) SetItems(_ context.Context, userID int64, items []models.ExerciseItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[userID] = items
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, userID)
	return nil
}

func TestItemService_CacheInvalidatedAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockItemReader(ctrl)
	writer := services.NewMockItemWriter(ctrl)
	cache := newMapCache()
	svc := services.NewItemService(reader, writer, cache, nil)

	before := models.ExerciseItem{ID: 1, OwnerID: 2, BodyPart: "Chest", Description: "Push-ups"}
	after := before
	after.IsCompleted = true

	txCtx, afterCommit := database.WithAfterCommit(context.Background())

	writer.EXPECT().Toggle(gomock.Any(), int64(1)).Return(&after, nil)
	_, err := svc.Toggle(txCtx, 1)
	require.NoError(t, err)

	// A concurrent reader still sees the committed state and caches it.
	reader.EXPECT().ListByOwner(gomock.Any(), int64(2)).Return([]models.ExerciseItem{before}, nil)
	items, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, items[0].IsCompleted)

	afterCommit.Run()

	reader.EXPECT().ListByOwner(gomock.Any(), int64(2)).Return([]models.ExerciseItem{after}, nil)
	items, err = svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, items[0].IsCompleted, "list must reflect the committed toggle")
}

func TestItemService_SideEffectsDroppedOnRollback(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockItemWriter(ctrl)
	cache := services.NewMockItemCache(ctrl)
	events := services.NewMockEventPublisher(ctrl)
	svc := services.NewItemService(services.NewMockItemReader(ctrl), writer, cache, events)

	txCtx, afterCommit := database.WithAfterCommit(context.Background())

	writer.EXPECT().Delete(gomock.Any(), int64(4)).Return(&models.ExerciseItem{ID: 4, OwnerID: 2}, nil)
	_, err := svc.Delete(txCtx, 4)
	require.NoError(t, err)

	// No cache or event calls are expected: the transaction never commits.
	afterCommit.Discard()
	afterCommit.Run()
}

func TestItemService_SideEffectsRunOnCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockItemWriter(ctrl)
	cache := services.NewMockItemCache(ctrl)
	events := services.NewMockEventPublisher(ctrl)
	svc := services.NewItemService(services.NewMockItemReader(ctrl), writer, cache, events)

	txCtx, afterCommit := database.WithAfterCommit(context.Background())

	writer.EXPECT().Delete(gomock.Any(), int64(4)).Return(&models.ExerciseItem{ID: 4, OwnerID: 2}, nil)
	_, err := svc.Delete(txCtx, 4)
	require.NoError(t, err)

	gomock.InOrder(
		cache.EXPECT().Invalidate(gomock.Any(), int64(2)).Return(nil),
		events.EXPECT().Publish(gomock.Any(), models.Event{Type: models.EventItemDeleted, UserID: 2, ItemID: 4}),
	)
	afterCommit.Run()
}
