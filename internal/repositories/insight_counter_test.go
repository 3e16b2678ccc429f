package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestInsightCounterRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
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

	repo := NewInsightCounterRepository(rdb)
	userID := uuid.New()

	t.Run("missing counter reads as zero", func(t *testing.T) {
		got, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("increment accumulates per user", func(t *testing.T) {
		v, err := repo.Increment(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)

		v, err = repo.Increment(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), v)

		got, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got)

		other, err := repo.Get(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(0), other)
	})
}
