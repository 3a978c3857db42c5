package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cashflowhq/cashflow-api/internal/logger"
	"github.com/cashflowhq/cashflow-api/internal/models"
)

// AggregationHTTPFacade notifies the downstream aggregation endpoint which
// tenants were touched by an ingest. The notification is best-effort: every
// failure is logged and swallowed, nothing is retried.
type AggregationHTTPFacade struct {
	client *http.Client
	url    string
}

// NewAggregationHTTPFacade creates the facade. An empty url disables the
// trigger; timeout bounds the outbound call.
func NewAggregationHTTPFacade(url string, timeout time.Duration) *AggregationHTTPFacade {
	return &AggregationHTTPFacade{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// TriggerAggregation posts the distinct tenant ids to the aggregation
// endpoint. Safe to call from a detached goroutine; never returns an error.
func (f *AggregationHTTPFacade) TriggerAggregation(ctx context.Context, tenantIDs []string) {
	if f.url == "" {
		logger.Log.Warnw("aggregation endpoint not configured, skipping trigger", "tenants", len(tenantIDs))
		return
	}

	payload, err := json.Marshal(models.AggregationRequest{Tenants: tenantIDs})
	if err != nil {
		logger.Log.Errorw("failed to marshal aggregation request", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(payload))
	if err != nil {
		logger.Log.Errorw("failed to build aggregation request", "url", f.url, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to trigger aggregation", "url", f.url, "error", err)
		return
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	logger.Log.Infow("triggered aggregation",
		"tenants", len(tenantIDs),
		"status", resp.StatusCode,
	)
}
