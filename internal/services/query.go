package services

import (
	"context"

	"github.com/cashflowhq/cashflow-api/internal/logger"
	"github.com/cashflowhq/cashflow-api/internal/models"
)

// TenantTransactionsReader reads the stored transactions of one tenant.
type TenantTransactionsReader interface {
	ListByTenant(ctx context.Context, tenantID string) ([]models.Transaction, error)
}

// TenantTransactionsCache caches per-tenant transaction lists.
type TenantTransactionsCache interface {
	GetByTenant(ctx context.Context, tenantID string) ([]models.Transaction, error)
	SetByTenant(ctx context.Context, tenantID string, txns []models.Transaction) error
}

// TransactionQueryService serves tenant transaction reads with a cache-aside
// policy: cache first, store on miss, repopulate best-effort.
type TransactionQueryService struct {
	readRepo  TenantTransactionsReader
	cacheRepo TenantTransactionsCache
}

// NewTransactionQueryService creates the query service. cacheRepo may be nil
// to read straight from the store.
func NewTransactionQueryService(readRepo TenantTransactionsReader, cacheRepo TenantTransactionsCache) *TransactionQueryService {
	return &TransactionQueryService{
		readRepo:  readRepo,
		cacheRepo: cacheRepo,
	}
}

// ListByTenant returns every transaction of the tenant.
func (s *TransactionQueryService) ListByTenant(ctx context.Context, tenantID string) ([]models.Transaction, error) {
	if s.cacheRepo != nil {
		if txns, err := s.cacheRepo.GetByTenant(ctx, tenantID); err == nil {
			return txns, nil
		}
	}

	txns, err := s.readRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "tenant_id", tenantID, "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetByTenant(ctx, tenantID, txns); err != nil {
			logger.Log.Errorw("failed to cache transactions", "tenant_id", tenantID, "error", err)
		}
	}

	return txns, nil
}
