package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/workout-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestItemCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewItemCacheRepository(rdb, 2*time.Second)
	items := []models.ExerciseItem{
		{ID: 1, OwnerID: 2, BodyPart: "Chest", Description: "Push-ups"},
		{ID: 2, OwnerID: 2, BodyPart: "Back", Description: "Pull-Ups", IsCompleted: true},
	}

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, repo.SetItems(ctx, 2, items))

		got, err := repo.GetItems(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := repo.GetItems(ctx, 404)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Invalidate", func(t *testing.T) {
		require.NoError(t, repo.SetItems(ctx, 3, items))
		require.NoError(t, repo.Invalidate(ctx, 3))

		_, err := repo.GetItems(ctx, 3)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Expires", func(t *testing.T) {
		require.NoError(t, repo.SetItems(ctx, 4, items))
		time.Sleep(3 * time.Second)

		_, err := repo.GetItems(ctx, 4)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
