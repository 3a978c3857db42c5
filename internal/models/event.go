package models

// TransactionEvent is the message published to Kafka after a transaction is
// upserted. Best-effort: consumers must tolerate gaps.
type TransactionEvent struct {
	TransactionID string `json:"transaction_id"` // Id of the upserted transaction.
	TenantID      string `json:"tenant_id"`      // Partition key the record was routed by.
	Timestamp     int64  `json:"timestamp"`      // Unix timestamp (in seconds) when the upsert completed.
	Amount        string `json:"amount"`         // Decimal amount, serialized as string.
	Currency      string `json:"currency"`       // 3-letter currency code.
	Operation     string `json:"operation"`      // Always "upsert" for ingestion.
}

// AggregationRequest is the payload sent to the downstream aggregation
// endpoint after a batch completes.
type AggregationRequest struct {
	Tenants []string `json:"tenants"`
}
