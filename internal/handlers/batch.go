package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cashflowhq/cashflow-api/internal/logger"
	"github.com/cashflowhq/cashflow-api/internal/models"
	"github.com/cashflowhq/cashflow-api/internal/services"
)

// BatchIngester defines the interface that the ingestion service must implement.
type BatchIngester interface {
	IngestBatch(ctx context.Context, txns []models.Transaction) (*models.BatchSummary, error)
}

// NewBatchTransactionsHandler returns an HTTP handler for batch transaction ingestion.
// @Summary Ingest a batch of transactions
// @Description Validates each transaction independently, upserts the valid ones concurrently by tenant partition key, and returns a per-record summary. Per-record upsert failures are reported in the summary, not via the HTTP status.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactions body []models.Transaction true "Array of transactions"
// @Success 200 {object} models.BatchSummary "Batch summary"
// @Failure 400 {string} string "Invalid JSON / empty batch / all transactions invalid"
// @Router /transaction [post]
// @Security BearerAuth
func NewBatchTransactionsHandler(svc BatchIngester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Log.Errorw("failed to read request body", "error", err)
			http.Error(w, "Invalid JSON format. Expected an array of transactions.", http.StatusBadRequest)
			return
		}

		var txns []models.Transaction
		if err := json.Unmarshal(body, &txns); err != nil {
			logger.Log.Errorw("invalid JSON payload", "error", err)
			http.Error(w, "Invalid JSON format. Expected an array of transactions.", http.StatusBadRequest)
			return
		}

		summary, err := svc.IngestBatch(r.Context(), txns)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyBatch):
				http.Error(w, "No transactions provided.", http.StatusBadRequest)
			case errors.Is(err, services.ErrAllInvalid):
				http.Error(w, "All transactions are invalid. Nothing to upsert.", http.StatusBadRequest)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summary)
	}
}
