package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/cashflowhq/cashflow-api/internal/logger"
	"github.com/cashflowhq/cashflow-api/internal/models"
	"github.com/cashflowhq/cashflow-api/internal/repositories"
)

var (
	// ErrEmptyBatch is returned when an ingestion request carries no transactions.
	ErrEmptyBatch = errors.New("no transactions provided")

	// ErrAllInvalid is returned when every transaction in a batch fails validation.
	ErrAllInvalid = errors.New("all transactions are invalid")

	// ErrInvalidTransaction wraps the validation reason for a single-record upsert.
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// defaultUpsertTimeout bounds each per-record store call. The store defines
// no timeout of its own, so an unresponsive store would otherwise hold the
// whole batch open.
const defaultUpsertTimeout = 10 * time.Second

// TransactionUpserter defines the store write used by ingestion.
type TransactionUpserter interface {
	Upsert(ctx context.Context, txn models.Transaction) error // Inserts or replaces one record by (tenant, id)
}

// TransactionChecker validates a single transaction, returning the violated
// rules when it fails.
type TransactionChecker interface {
	Validate(txn *models.Transaction) (string, bool)
}

// AggregationTrigger notifies the downstream aggregation endpoint.
type AggregationTrigger interface {
	TriggerAggregation(ctx context.Context, tenantIDs []string)
}

// CacheInvalidator drops cached tenant reads after an ingest.
type CacheInvalidator interface {
	InvalidateTenants(ctx context.Context, tenantIDs []string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionIngestionService owns the batch ingestion flow: normalize,
// partition into valid and invalid sets, upsert the valid set concurrently,
// summarize, and trigger downstream aggregation without blocking the caller.
type TransactionIngestionService struct {
	writeRepo     TransactionUpserter
	validator     TransactionChecker
	aggregation   AggregationTrigger
	cache         CacheInvalidator
	kafkaWriter   KafkaWriter
	upsertTimeout time.Duration
}

// NewTransactionIngestionService creates the ingestion service. aggregation,
// cache, and kafkaWriter may be nil; the corresponding side effects are then
// skipped.
func NewTransactionIngestionService(
	writeRepo TransactionUpserter,
	validator TransactionChecker,
	aggregation AggregationTrigger,
	cache CacheInvalidator,
	kafkaWriter KafkaWriter,
	upsertTimeout time.Duration,
) *TransactionIngestionService {
	if upsertTimeout <= 0 {
		upsertTimeout = defaultUpsertTimeout
	}
	return &TransactionIngestionService{
		writeRepo:     writeRepo,
		validator:     validator,
		aggregation:   aggregation,
		cache:         cache,
		kafkaWriter:   kafkaWriter,
		upsertTimeout: upsertTimeout,
	}
}

// IngestBatch processes a client-submitted batch. Records are validated and
// persisted independently: one bad record never aborts its siblings. Returns
// ErrEmptyBatch or ErrAllInvalid before any store call; otherwise the
// summary reports per-record outcomes and the error is nil.
func (s *TransactionIngestionService) IngestBatch(ctx context.Context, txns []models.Transaction) (*models.BatchSummary, error) {
	if len(txns) == 0 {
		return nil, ErrEmptyBatch
	}

	start := time.Now()

	valid, invalid := s.partition(txns)
	if len(valid) == 0 {
		logger.Log.Warnw("all transactions in batch are invalid", "count", len(invalid))
		return nil, ErrAllInvalid
	}

	successCount, failureCount := s.upsertAll(ctx, valid)

	summary := &models.BatchSummary{
		SuccessCount:   int(successCount),
		FailureCount:   int(failureCount),
		InvalidCount:   len(invalid),
		DurationMs:     time.Since(start).Milliseconds(),
		InvalidDetails: invalid,
	}

	logger.Log.Infow("batch upsert completed",
		"success_count", summary.SuccessCount,
		"failure_count", summary.FailureCount,
		"invalid_count", summary.InvalidCount,
		"duration_ms", summary.DurationMs,
	)

	s.finishIngest(ctx, distinctTenants(valid))

	return summary, nil
}

// IngestOne validates and upserts a single transaction. A validation failure
// is reported as ErrInvalidTransaction with the reason; store failures are
// returned as-is for the handler to map.
func (s *TransactionIngestionService) IngestOne(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	txn.Normalize()

	if reason, ok := s.validator.Validate(&txn); !ok {
		logger.Log.Warnw("transaction failed validation",
			"transaction_id", txn.ID,
			"tenant_id", txn.TenantID,
			"reason", reason,
		)
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransaction, reason)
	}

	upsertCtx, cancel := context.WithTimeout(ctx, s.upsertTimeout)
	defer cancel()
	if err := s.writeRepo.Upsert(upsertCtx, txn); err != nil {
		s.logUpsertFailure(txn, err)
		return nil, err
	}

	s.publishTransactionEvent(ctx, txn)
	s.finishIngest(ctx, []string{txn.TenantID})

	return &txn, nil
}

// partition normalizes every record and splits the batch into the valid set
// and the ordered invalid details.
func (s *TransactionIngestionService) partition(txns []models.Transaction) ([]models.Transaction, []models.InvalidTransactionDetail) {
	valid := make([]models.Transaction, 0, len(txns))
	invalid := make([]models.InvalidTransactionDetail, 0)

	for i := range txns {
		txns[i].Normalize()
		reason, ok := s.validator.Validate(&txns[i])
		if ok {
			valid = append(valid, txns[i])
			continue
		}
		logger.Log.Warnw("transaction failed validation",
			"transaction_id", txns[i].ID,
			"sender_transaction_id", txns[i].SenderTransactionID,
			"tenant_id", txns[i].TenantID,
			"reason", reason,
		)
		invalid = append(invalid, models.InvalidTransactionDetail{
			TransactionID: txns[i].ID,
			Reason:        reason,
		})
	}

	return valid, invalid
}

// upsertAll fans the valid set out to one goroutine per record and joins
// before returning. Counters are atomic; a record's failure is logged and
// counted without affecting its siblings.
func (s *TransactionIngestionService) upsertAll(ctx context.Context, valid []models.Transaction) (successCount, failureCount int64) {
	var success, failure atomic.Int64
	var wg sync.WaitGroup

	for _, txn := range valid {
		wg.Add(1)
		go func(txn models.Transaction) {
			defer wg.Done()

			upsertCtx, cancel := context.WithTimeout(ctx, s.upsertTimeout)
			defer cancel()

			if err := s.writeRepo.Upsert(upsertCtx, txn); err != nil {
				failure.Add(1)
				s.logUpsertFailure(txn, err)
				return
			}

			success.Add(1)
			s.publishTransactionEvent(ctx, txn)
		}(txn)
	}

	wg.Wait()
	return success.Load(), failure.Load()
}

// finishIngest invalidates cached tenant reads and triggers downstream
// aggregation. The trigger is detached: its completion is not awaited and
// its failure never reaches the caller.
func (s *TransactionIngestionService) finishIngest(ctx context.Context, tenantIDs []string) {
	if s.cache != nil {
		if err := s.cache.InvalidateTenants(ctx, tenantIDs); err != nil {
			logger.Log.Errorw("failed to invalidate tenant cache", "tenants", tenantIDs, "error", err)
		}
	}

	if s.aggregation == nil {
		return
	}

	notifyCtx := context.WithoutCancel(ctx)
	go s.aggregation.TriggerAggregation(notifyCtx, tenantIDs)
}

func (s *TransactionIngestionService) logUpsertFailure(txn models.Transaction, err error) {
	var storeErr *repositories.StoreError
	if errors.As(err, &storeErr) {
		logger.Log.Errorw("failed to upsert transaction",
			"transaction_id", txn.ID,
			"tenant_id", txn.TenantID,
			"store_code", storeErr.Code,
			"error", storeErr.Message,
		)
		return
	}
	logger.Log.Errorw("failed to upsert transaction",
		"transaction_id", txn.ID,
		"tenant_id", txn.TenantID,
		"error", err,
	)
}

// publishTransactionEvent publishes an upsert event to Kafka, best-effort.
func (s *TransactionIngestionService) publishTransactionEvent(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.ID,
		TenantID:      txn.TenantID,
		Timestamp:     time.Now().Unix(),
		Amount:        txn.Amount.String(),
		Currency:      txn.Currency,
		Operation:     "upsert",
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction event for Kafka", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.TenantID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction event to Kafka", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction event published to Kafka", "transaction_id", txn.ID, "tenant_id", txn.TenantID)
	}
}

// distinctTenants returns the unique tenant ids of the valid set, in first-seen order.
func distinctTenants(txns []models.Transaction) []string {
	seen := make(map[string]struct{}, len(txns))
	tenants := make([]string, 0, len(txns))
	for _, txn := range txns {
		if _, ok := seen[txn.TenantID]; ok {
			continue
		}
		seen[txn.TenantID] = struct{}{}
		tenants = append(tenants, txn.TenantID)
	}
	return tenants
}
