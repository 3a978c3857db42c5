package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cashflowhq/cashflow-api/internal/logger"
	"github.com/cashflowhq/cashflow-api/internal/models"
)

// TenantTransactionsLister defines the interface that the query service must implement.
type TenantTransactionsLister interface {
	ListByTenant(ctx context.Context, tenantID string) ([]models.Transaction, error)
}

// ListErrorResponse represents an error response when listing transactions
// swagger:model ListErrorResponse
type ListErrorResponse struct {
	// Error message
	// default: Missing query parameter: tenantId
	Error string `json:"error"`
}

// NewListTransactionsHandler returns an HTTP handler that lists every
// transaction of one tenant.
// @Summary List transactions by tenant
// @Description Returns all stored transactions for the given tenant id.
// @Tags transactions
// @Produce json
// @Param tenantId query string true "Tenant id (partition key)"
// @Success 200 {array} models.Transaction "Transactions of the tenant"
// @Failure 400 {object} handlers.ListErrorResponse "Missing tenantId"
// @Failure 500 {object} handlers.ListErrorResponse "Store or unexpected error"
// @Router /transaction [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TenantTransactionsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenantId")
		if tenantID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListErrorResponse{
				Error: "Missing query parameter: tenantId",
			})
			return
		}

		txns, err := svc.ListByTenant(r.Context(), tenantID)
		if err != nil {
			logger.Log.Errorw("failed to list tenant transactions", "tenant_id", tenantID, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListErrorResponse{Error: err.Error()})
			return
		}

		if txns == nil {
			txns = make([]models.Transaction, 0)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(txns)
	}
}
