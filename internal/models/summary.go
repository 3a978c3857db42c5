package models

// InvalidTransactionDetail records why one transaction was excluded from a batch.
type InvalidTransactionDetail struct {
	TransactionID string `json:"transactionId"` // Generated id of the rejected transaction.
	Reason        string `json:"reason"`        // Violated rules, joined with "; ".
}

// BatchSummary is the response payload of a batch ingestion request.
// InvalidDetails preserves the input order of the rejected records.
type BatchSummary struct {
	SuccessCount   int                        `json:"successCount"`
	FailureCount   int                        `json:"failureCount"`
	InvalidCount   int                        `json:"invalidCount"`
	DurationMs     int64                      `json:"durationMs"`
	InvalidDetails []InvalidTransactionDetail `json:"invalidDetails"`
}
