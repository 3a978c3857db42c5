package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cashflowhq/cashflow-api/internal/logger"
	"github.com/cashflowhq/cashflow-api/internal/models"
	"github.com/cashflowhq/cashflow-api/internal/repositories"
	"github.com/cashflowhq/cashflow-api/internal/services"
)

// SingleIngester defines the interface that the ingestion service must implement.
type SingleIngester interface {
	IngestOne(ctx context.Context, txn models.Transaction) (*models.Transaction, error)
}

// UpsertResponse represents a successful single-record upsert
// swagger:model UpsertResponse
type UpsertResponse struct {
	// Success message
	// default: Transaction 7b1e1f6e-0c3d-4a7f-9a55-1a2b3c4d5e6f upserted successfully.
	Message string `json:"message"`
}

// UpsertErrorResponse represents an error response for a single-record upsert
// swagger:model UpsertErrorResponse
type UpsertErrorResponse struct {
	// Error message
	// default: tenantId is required.
	Error string `json:"error"`
}

// NewUpsertTransactionHandler returns an HTTP handler that upserts one transaction.
// Unlike the batch endpoint, a store failure here maps directly to HTTP 500:
// there is no batch to partially succeed.
// @Summary Upsert a single transaction
// @Description Validates and upserts one transaction by its tenant partition key, replacing any record with the same id.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.Transaction true "Transaction"
// @Success 200 {object} handlers.UpsertResponse "Transaction upserted"
// @Failure 400 {object} handlers.UpsertErrorResponse "Invalid request body or transaction"
// @Failure 500 {object} handlers.UpsertErrorResponse "Store or unexpected error"
// @Router /transaction [put]
// @Security BearerAuth
func NewUpsertTransactionHandler(svc SingleIngester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var txn models.Transaction
		if err := json.NewDecoder(r.Body).Decode(&txn); err != nil {
			logger.Log.Errorw("invalid JSON payload", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpsertErrorResponse{
				Error: "Invalid JSON format. Expected a transaction object.",
			})
			return
		}

		stored, err := svc.IngestOne(r.Context(), txn)
		if err != nil {
			var storeErr *repositories.StoreError
			switch {
			case errors.Is(err, services.ErrInvalidTransaction):
				reason := strings.TrimPrefix(err.Error(), services.ErrInvalidTransaction.Error()+": ")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpsertErrorResponse{Error: reason})
			case errors.As(err, &storeErr):
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpsertErrorResponse{
					Error: fmt.Sprintf("Database error: %s", storeErr.Message),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpsertErrorResponse{
					Error: fmt.Sprintf("Unexpected error: %s", err),
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpsertResponse{
			Message: fmt.Sprintf("Transaction %s upserted successfully.", stored.ID),
		})
	}
}
