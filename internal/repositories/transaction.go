package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/cashflowhq/cashflow-api/internal/logger"
	"github.com/cashflowhq/cashflow-api/internal/models"
)

// StoreError is a rejection reported by the transaction store, carrying the
// SQLSTATE code so callers can log and classify it per record.
type StoreError struct {
	Code    string
	Message string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error %s: %s", e.Code, e.Message)
}

// classifyStoreError wraps database rejections into *StoreError and passes
// everything else through unchanged.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &StoreError{Code: pgErr.Code, Message: pgErr.Message}
	}
	return err
}

// TransactionWriteRepository persists transactions partitioned by tenant id.
type TransactionWriteRepository struct {
	db *sqlx.DB
}

func NewTransactionWriteRepository(db *sqlx.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Upsert inserts the transaction or fully replaces the existing record with
// the same (tenant_id, id) pair. Idempotent per record.
func (r *TransactionWriteRepository) Upsert(ctx context.Context, txn models.Transaction) error {
	const query = `
		INSERT INTO transactions (
			id, sender_transaction_id, tenant_id, company_id, account_id,
			type, category, description, source_system, source_id,
			amount, tax_rate, tax_amount, net_amount, currency,
			fx_rate, converted_amount, payment_terms,
			posted_date, value_date, created_at, payment_date, date_issued,
			invoice
		) VALUES (
			:id, :sender_transaction_id, :tenant_id, :company_id, :account_id,
			:type, :category, :description, :source_system, :source_id,
			:amount, :tax_rate, :tax_amount, :net_amount, :currency,
			:fx_rate, :converted_amount, :payment_terms,
			:posted_date, :value_date, :created_at, :payment_date, :date_issued,
			:invoice
		)
		ON CONFLICT (tenant_id, id) DO UPDATE SET
			sender_transaction_id = EXCLUDED.sender_transaction_id,
			company_id = EXCLUDED.company_id,
			account_id = EXCLUDED.account_id,
			type = EXCLUDED.type,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			source_system = EXCLUDED.source_system,
			source_id = EXCLUDED.source_id,
			amount = EXCLUDED.amount,
			tax_rate = EXCLUDED.tax_rate,
			tax_amount = EXCLUDED.tax_amount,
			net_amount = EXCLUDED.net_amount,
			currency = EXCLUDED.currency,
			fx_rate = EXCLUDED.fx_rate,
			converted_amount = EXCLUDED.converted_amount,
			payment_terms = EXCLUDED.payment_terms,
			posted_date = EXCLUDED.posted_date,
			value_date = EXCLUDED.value_date,
			created_at = EXCLUDED.created_at,
			payment_date = EXCLUDED.payment_date,
			date_issued = EXCLUDED.date_issued,
			invoice = EXCLUDED.invoice
	`

	_, err := r.db.NamedExecContext(ctx, query, txn)

	logger.Log.Infow("upsert transaction",
		"query", strings.Join(strings.Fields(query), " "),
		"transaction_id", txn.ID,
		"tenant_id", txn.TenantID,
		"error", err,
	)

	return classifyStoreError(err)
}

// TransactionReadRepository reads transactions by tenant id.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// transactionPageSize is how many records each page of a tenant query holds
// before the next page is fetched.
const transactionPageSize = 100

// ListByTenant returns every transaction stored for the tenant, fetched page
// by page and accumulated into a single list.
func (r *TransactionReadRepository) ListByTenant(ctx context.Context, tenantID string) ([]models.Transaction, error) {
	const query = `
		SELECT id, sender_transaction_id, tenant_id, company_id, account_id,
		       type, category, description, source_system, source_id,
		       amount, tax_rate, tax_amount, net_amount, currency,
		       fx_rate, converted_amount, payment_terms,
		       posted_date, value_date, created_at, payment_date, date_issued,
		       invoice
		FROM transactions
		WHERE tenant_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`

	results := make([]models.Transaction, 0, transactionPageSize)
	for offset := 0; ; offset += transactionPageSize {
		var page []models.Transaction
		err := r.db.SelectContext(ctx, &page, query, tenantID, transactionPageSize, offset)

		logger.Log.Infow("list transactions by tenant",
			"query", strings.Join(strings.Fields(query), " "),
			"tenant_id", tenantID,
			"offset", offset,
			"count", len(page),
			"error", err,
		)

		if err != nil {
			return nil, classifyStoreError(err)
		}

		results = append(results, page...)
		if len(page) < transactionPageSize {
			break
		}
	}

	return results, nil
}
