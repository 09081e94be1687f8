package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/workout-tracker/internal/logger"
	"github.com/sbilibin2017/workout-tracker/internal/models"
	"github.com/sbilibin2017/workout-tracker/internal/repositories"
)

//go:generate mockgen -source=item.go -destination=mock_item.go -package=services

// ErrNotFound is returned when an item id does not exist.
var ErrNotFound = errors.New("item not found")

// ItemReader defines read operations for exercise items.
type ItemReader interface {
	ListByOwner(ctx context.Context, userID int64) ([]models.ExerciseItem, error)
}

// ItemWriter defines write operations for exercise items.
// Single-item mutations return nil when the id does not exist.
type ItemWriter interface {
	Create(ctx context.Context, item models.ExerciseItem) (*models.ExerciseItem, error)
	Update(ctx context.Context, item models.ExerciseItem) (*models.ExerciseItem, error)
	Toggle(ctx context.Context, id int64) (*models.ExerciseItem, error)
	Delete(ctx context.Context, id int64) (*models.ExerciseItem, error)
}

// ItemCache caches per-user item lists.
type ItemCache interface {
	GetItems(ctx context.Context, userID int64) ([]models.ExerciseItem, error)
	SetItems(ctx context.Context, userID int64, items []models.ExerciseItem) error
	Invalidate(ctx context.Context, userID int64) error
}

// ItemService handles exercise item CRUD.
type ItemService struct {
	reader ItemReader
	writer ItemWriter
	cache  ItemCache
	events EventPublisher
}

// NewItemService creates a new ItemService. cache and events may be nil.
func NewItemService(reader ItemReader, writer ItemWriter, cache ItemCache, events EventPublisher) *ItemService {
	return &ItemService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// List returns all items owned by userID.
func (svc *ItemService) List(ctx context.Context, userID int64) ([]models.ExerciseItem, error) {
	if svc.cache != nil {
		items, err := svc.cache.GetItems(ctx, userID)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("item cache unavailable", "user_id", userID, "err", err)
		}
	}

	items, err := svc.reader.ListByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list items", "user_id", userID, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetItems(ctx, userID, items); err != nil {
			logger.Log.Warnw("failed to cache items", "user_id", userID, "err", err)
		}
	}
	return items, nil
}

// Create inserts one item. An owner that does not exist yields ErrUnknownUser.
func (svc *ItemService) Create(ctx context.Context, item models.ExerciseItem) (*models.ExerciseItem, error) {
	created, err := svc.writer.Create(ctx, item)
	if err != nil {
		if errors.Is(err, repositories.ErrUnknownOwner) {
			return nil, ErrUnknownUser
		}
		logger.Log.Errorw("failed to create item", "user_id", item.OwnerID, "err", err)
		return nil, err
	}

	svc.changed(ctx, models.EventItemCreated, created)
	return created, nil
}

// Update replaces part, content and completion of the item with item.ID.
func (svc *ItemService) Update(ctx context.Context, item models.ExerciseItem) (*models.ExerciseItem, error) {
	updated, err := svc.writer.Update(ctx, item)
	return svc.afterMutation(ctx, models.EventItemUpdated, item.ID, updated, err)
}

// Toggle flips the completion flag of the item with the given id.
func (svc *ItemService) Toggle(ctx context.Context, id int64) (*models.ExerciseItem, error) {
	toggled, err := svc.writer.Toggle(ctx, id)
	return svc.afterMutation(ctx, models.EventItemToggled, id, toggled, err)
}

// Delete removes the item with the given id and returns it.
func (svc *ItemService) Delete(ctx context.Context, id int64) (*models.ExerciseItem, error) {
	deleted, err := svc.writer.Delete(ctx, id)
	return svc.afterMutation(ctx, models.EventItemDeleted, id, deleted, err)
}

func (svc *ItemService) afterMutation(
	ctx context.Context,
	eventType models.EventType,
	id int64,
	item *models.ExerciseItem,
	err error,
) (*models.ExerciseItem, error) {
	if err != nil {
		logger.Log.Errorw("failed to change item", "item_id", id, "type", eventType, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	svc.changed(ctx, eventType, item)
	return item, nil
}

func (svc *ItemService) changed(ctx context.Context, eventType models.EventType, item *models.ExerciseItem) {
	invalidate(ctx, svc.cache, item.OwnerID)
	publish(ctx, svc.events, models.Event{Type: eventType, UserID: item.OwnerID, ItemID: item.ID})
}
