package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cashflowhq/cashflow-api/internal/logger"
	"github.com/cashflowhq/cashflow-api/internal/models"
)

// TransactionCacheRepository caches per-tenant transaction lists in Redis.
type TransactionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached tenant lists
}

// NewTransactionCacheRepository creates a cache repository with the given TTL.
func NewTransactionCacheRepository(client *redis.Client, expiration time.Duration) *TransactionCacheRepository {
	return &TransactionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func tenantTransactionsKey(tenantID string) string {
	return fmt.Sprintf("tenant_transactions:%s", tenantID)
}

// GetByTenant fetches the cached transaction list for a tenant.
func (r *TransactionCacheRepository) GetByTenant(ctx context.Context, tenantID string) ([]models.Transaction, error) {
	key := tenantTransactionsKey(tenantID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("tenant transactions cache miss",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("transactions not found in cache for tenant %s", tenantID)
		}
		return nil, err
	}

	var txns []models.Transaction
	if err := json.Unmarshal([]byte(val), &txns); err != nil {
		logger.Log.Errorw("failed to decode cached transactions",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("tenant transactions cache hit",
		"key", key,
		"count", len(txns),
	)

	return txns, nil
}

// SetByTenant caches the transaction list for a tenant with expiration.
func (r *TransactionCacheRepository) SetByTenant(ctx context.Context, tenantID string, txns []models.Transaction) error {
	key := tenantTransactionsKey(tenantID)

	data, err := json.Marshal(txns)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("tenant transactions cached",
		"key", key,
		"count", len(txns),
		"error", err,
	)

	return err
}

// InvalidateTenants drops the cached lists for every given tenant. Called
// after an ingest so the next read reflects the new records.
func (r *TransactionCacheRepository) InvalidateTenants(ctx context.Context, tenantIDs []string) error {
	if len(tenantIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(tenantIDs))
	for _, id := range tenantIDs {
		keys = append(keys, tenantTransactionsKey(id))
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow("tenant transactions cache invalidated",
		"keys", keys,
		"error", err,
	)

	return err
}
