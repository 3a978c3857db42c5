package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cashflowhq/cashflow-api/internal/models"
)

func TestTransactionCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewTransactionCacheRepository(rdb, 2*time.Second)

	txns := []models.Transaction{
		{ID: "txn-1", TenantID: "t1", Currency: "USD"},
		{ID: "txn-2", TenantID: "t1", Currency: "EUR"},
	}

	t.Run("Set and Get tenant transactions", func(t *testing.T) {
		err := repo.SetByTenant(ctx, "t1", txns)
		assert.NoError(t, err)

		got, err := repo.GetByTenant(ctx, "t1")
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "txn-1", got[0].ID)
		assert.Equal(t, "USD", got[0].Currency)
	})

	t.Run("Get missing tenant returns error", func(t *testing.T) {
		_, err := repo.GetByTenant(ctx, "t9")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "transactions not found in cache")
	})

	t.Run("InvalidateTenants drops cached lists", func(t *testing.T) {
		assert.NoError(t, repo.SetByTenant(ctx, "t1", txns))
		assert.NoError(t, repo.SetByTenant(ctx, "t2", txns[:1]))

		err := repo.InvalidateTenants(ctx, []string{"t1", "t2"})
		assert.NoError(t, err)

		_, err = repo.GetByTenant(ctx, "t1")
		assert.Error(t, err)
		_, err = repo.GetByTenant(ctx, "t2")
		assert.Error(t, err)
	})

	t.Run("InvalidateTenants with no tenants is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.InvalidateTenants(ctx, nil))
	})

	t.Run("Cached value expires", func(t *testing.T) {
		assert.NoError(t, repo.SetByTenant(ctx, "t3", txns))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err := repo.GetByTenant(ctx, "t3")
		assert.Error(t, err)
	})
}
