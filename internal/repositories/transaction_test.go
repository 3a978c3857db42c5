package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cashflowhq/cashflow-api/internal/logger"
	"github.com/cashflowhq/cashflow-api/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			id VARCHAR(64) NOT NULL,
			sender_transaction_id VARCHAR(200) NOT NULL,
			tenant_id VARCHAR(64) NOT NULL,
			company_id VARCHAR(64) NOT NULL,
			account_id VARCHAR(64) NOT NULL,
			type VARCHAR(50) NOT NULL DEFAULT '',
			category VARCHAR(100) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			source_system VARCHAR(100) NOT NULL DEFAULT '',
			source_id VARCHAR(100) NOT NULL DEFAULT '',
			amount NUMERIC(20,6) NOT NULL,
			tax_rate NUMERIC(9,6) NOT NULL DEFAULT 0,
			tax_amount NUMERIC(20,6) NOT NULL DEFAULT 0,
			net_amount NUMERIC(20,6) NOT NULL DEFAULT 0,
			currency CHAR(3) NOT NULL,
			fx_rate NUMERIC(20,10) NOT NULL DEFAULT 1,
			converted_amount NUMERIC(20,6) NOT NULL DEFAULT 0,
			payment_terms INT NOT NULL DEFAULT 0,
			posted_date TIMESTAMPTZ NOT NULL,
			value_date TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			payment_date TIMESTAMPTZ NOT NULL,
			date_issued TIMESTAMPTZ NOT NULL,
			invoice JSONB,
			PRIMARY KEY (tenant_id, id)
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func storedTransaction(id, tenantID string, createdAt time.Time) models.Transaction {
	return models.Transaction{
		ID:                  id,
		SenderTransactionID: "ext-" + id,
		TenantID:            tenantID,
		CompanyID:           "c1",
		AccountID:           "a1",
		Amount:              decimal.NewFromInt(100),
		NetAmount:           decimal.NewFromInt(100),
		Currency:            "USD",
		FxRate:              decimal.NewFromInt(1),
		PostedDate:          createdAt,
		ValueDate:           createdAt,
		CreatedAt:           createdAt,
		PaymentDate:         createdAt,
		DateIssued:          createdAt,
	}
}

func countRows(t *testing.T, db *sqlx.DB, tenantID string) int {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM transactions WHERE tenant_id=$1`, tenantID)
	assert.NoError(t, err)
	return count
}

// --- Upsert Tests ---
func TestUpsert_InsertAndReplace(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewTransactionWriteRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	txn := storedTransaction("txn-1", "t1", now)
	txn.Invoice = &models.InvoiceDetails{InvoiceID: "inv-1", DueDate: now, PaymentTermsDays: 30, Status: "open"}
	assert.NoError(t, writer.Upsert(ctx, txn))
	assert.Equal(t, 1, countRows(t, db, "t1"))

	// Same (tenant_id, id) pair replaces the record instead of duplicating it.
	txn.Amount = decimal.NewFromInt(250)
	assert.NoError(t, writer.Upsert(ctx, txn))
	assert.Equal(t, 1, countRows(t, db, "t1"))

	var amount decimal.Decimal
	err := db.Get(&amount, `SELECT amount FROM transactions WHERE tenant_id=$1 AND id=$2`, "t1", "txn-1")
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250).Equal(amount))
}

func TestUpsert_SameIDDifferentTenants(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewTransactionWriteRepository(db)
	now := time.Now().UTC()

	assert.NoError(t, writer.Upsert(ctx, storedTransaction("txn-1", "t1", now)))
	assert.NoError(t, writer.Upsert(ctx, storedTransaction("txn-1", "t2", now)))

	assert.Equal(t, 1, countRows(t, db, "t1"))
	assert.Equal(t, 1, countRows(t, db, "t2"))
}

func TestUpsert_Concurrent(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewTransactionWriteRepository(db)
	now := time.Now().UTC()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := writer.Upsert(ctx, storedTransaction(fmt.Sprintf("txn-%d", i), "t1", now))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, countRows(t, db, "t1"))
}

// --- ListByTenant Tests ---
func TestListByTenant_ScopedToTenant(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewTransactionWriteRepository(db)
	reader := NewTransactionReadRepository(db)
	now := time.Now().UTC()

	for i := 0; i < 3; i++ {
		assert.NoError(t, writer.Upsert(ctx, storedTransaction(fmt.Sprintf("a-%d", i), "t1", now.Add(time.Duration(i)*time.Second))))
	}
	for i := 0; i < 2; i++ {
		assert.NoError(t, writer.Upsert(ctx, storedTransaction(fmt.Sprintf("b-%d", i), "t2", now)))
	}

	txns, err := reader.ListByTenant(ctx, "t1")
	assert.NoError(t, err)
	assert.Len(t, txns, 3)
	for _, txn := range txns {
		assert.Equal(t, "t1", txn.TenantID)
	}

	txns, err = reader.ListByTenant(ctx, "t2")
	assert.NoError(t, err)
	assert.Len(t, txns, 2)

	txns, err = reader.ListByTenant(ctx, "t9")
	assert.NoError(t, err)
	assert.Empty(t, txns)
}

func TestListByTenant_RoundTripsFields(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewTransactionWriteRepository(db)
	reader := NewTransactionReadRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	txn := storedTransaction("txn-1", "t1", now)
	txn.Amount = decimal.RequireFromString("19.99")
	txn.TaxRate = decimal.RequireFromString("0.19")
	txn.Invoice = &models.InvoiceDetails{InvoiceID: "inv-1", DueDate: now, PaymentTermsDays: 14, Status: "open"}
	assert.NoError(t, writer.Upsert(ctx, txn))

	txns, err := reader.ListByTenant(ctx, "t1")
	assert.NoError(t, err)
	assert.Len(t, txns, 1)

	got := txns[0]
	assert.Equal(t, "txn-1", got.ID)
	assert.Equal(t, "ext-txn-1", got.SenderTransactionID)
	assert.True(t, decimal.RequireFromString("19.99").Equal(got.Amount))
	assert.True(t, decimal.RequireFromString("0.19").Equal(got.TaxRate))
	assert.Equal(t, "USD", got.Currency)
	assert.NotNil(t, got.Invoice)
	assert.Equal(t, "inv-1", got.Invoice.InvoiceID)
	assert.Equal(t, 14, got.Invoice.PaymentTermsDays)
}

// --- sqlmock Tests ---
var transactionColumns = []string{
	"id", "sender_transaction_id", "tenant_id", "company_id", "account_id",
	"type", "category", "description", "source_system", "source_id",
	"amount", "tax_rate", "tax_amount", "net_amount", "currency",
	"fx_rate", "converted_amount", "payment_terms",
	"posted_date", "value_date", "created_at", "payment_date", "date_issued",
	"invoice",
}

func addTransactionRow(rows *sqlmock.Rows, id, tenantID string, createdAt time.Time) {
	rows.AddRow(
		id, "ext-"+id, tenantID, "c1", "a1",
		"", "", "", "", "",
		"100", "0", "0", "100", "USD",
		"1", "0", 0,
		createdAt, createdAt, createdAt, createdAt, createdAt,
		nil,
	)
}

func TestUpsert_StoreErrorClassification(t *testing.T) {
	logger.Initialize("debug")
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "pgx")

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(&pgconn.PgError{Code: "53300", Message: "too many connections"})

	writer := NewTransactionWriteRepository(sqlxDB)

	err = writer.Upsert(context.Background(), storedTransaction("txn-1", "t1", time.Now()))

	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "53300", storeErr.Code)
	assert.Equal(t, "too many connections", storeErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByTenant_SinglePage(t *testing.T) {
	logger.Initialize("debug")
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "pgx")

	now := time.Now()
	rows := sqlmock.NewRows(transactionColumns)
	addTransactionRow(rows, "txn-1", "t1", now)
	addTransactionRow(rows, "txn-2", "t1", now)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("t1", transactionPageSize, 0).
		WillReturnRows(rows)

	reader := NewTransactionReadRepository(sqlxDB)

	txns, err := reader.ListByTenant(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Len(t, txns, 2)
	assert.Equal(t, "txn-1", txns[0].ID)
	assert.True(t, decimal.NewFromInt(100).Equal(txns[0].Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByTenant_AccumulatesPages(t *testing.T) {
	logger.Initialize("debug")
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "pgx")

	now := time.Now()

	firstPage := sqlmock.NewRows(transactionColumns)
	for i := 0; i < transactionPageSize; i++ {
		addTransactionRow(firstPage, fmt.Sprintf("txn-%d", i), "t1", now)
	}
	secondPage := sqlmock.NewRows(transactionColumns)
	addTransactionRow(secondPage, "txn-last", "t1", now)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("t1", transactionPageSize, 0).
		WillReturnRows(firstPage)
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("t1", transactionPageSize, transactionPageSize).
		WillReturnRows(secondPage)

	reader := NewTransactionReadRepository(sqlxDB)

	txns, err := reader.ListByTenant(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Len(t, txns, transactionPageSize+1)
	assert.Equal(t, "txn-last", txns[transactionPageSize].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
