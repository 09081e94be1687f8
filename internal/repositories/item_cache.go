package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/workout-tracker/internal/logger"
	"github.com/sbilibin2017/workout-tracker/internal/models"
)

// ErrCacheMiss is returned when no list is cached for a user.
var ErrCacheMiss = errors.New("item list not found in cache")

// ItemCacheRepository caches per-user item lists in Redis
type ItemCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached lists
}

// NewItemCacheRepository creates a new repository instance with the given TTL
func NewItemCacheRepository(client *redis.Client, expiration time.Duration) *ItemCacheRepository {
	return &ItemCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func itemsKey(userID int64) string {
	return fmt.Sprintf("todos:user:%d", userID)
}

// GetItems returns the cached list of userID, or ErrCacheMiss.
func (r *ItemCacheRepository) GetItems(ctx context.Context, userID int64) ([]models.ExerciseItem, error) {
	key := itemsKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var items []models.ExerciseItem
	if err := json.Unmarshal(val, &items); err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", key, "result", len(items))
	return items, nil
}

// SetItems caches the list of userID with expiration
func (r *ItemCacheRepository) SetItems(ctx context.Context, userID int64, items []models.ExerciseItem) error {
	key := itemsKey(userID)

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set", "key", key, "result", len(items), "error", err)

	return err
}

// Invalidate drops the cached list of userID.
func (r *ItemCacheRepository) Invalidate(ctx context.Context, userID int64) error {
	key := itemsKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache del", "key", key, "error", err)

	return err
}
