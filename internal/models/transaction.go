package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents one financial ledger entry, scoped to a tenant.
// TenantID is the partition key in the transaction store: all reads and
// upserts are routed by it.
type Transaction struct {
	// Unique identifier, generated if absent.
	// default: 7b1e1f6e-0c3d-4a7f-9a55-1a2b3c4d5e6f
	ID string `json:"id" db:"id"`

	// Sender-supplied external reference id, used for idempotency by upstream callers.
	// required: true
	SenderTransactionID string `json:"senderTransactionId" db:"sender_transaction_id" validate:"required,max=200"`

	// Tenant identifier, partition key.
	// required: true
	TenantID string `json:"tenantId" db:"tenant_id" validate:"required"`

	// Company identifier within the tenant.
	// required: true
	CompanyID string `json:"companyId" db:"company_id" validate:"required"`

	// Account identifier within the company.
	// required: true
	AccountID string `json:"accountId" db:"account_id" validate:"required"`

	Type         string `json:"type" db:"type"`
	Category     string `json:"category" db:"category"`
	Description  string `json:"description" db:"description"`
	SourceSystem string `json:"sourceSystem" db:"source_system"`
	SourceID     string `json:"sourceId" db:"source_id"`

	Amount          decimal.Decimal `json:"amount" db:"amount" validate:"gt=0"`
	TaxRate         decimal.Decimal `json:"taxRate" db:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"taxAmount" db:"tax_amount"`
	NetAmount       decimal.Decimal `json:"netAmount" db:"net_amount" validate:"gte=0"`
	Currency        string          `json:"currency" db:"currency" validate:"required,len=3"`
	FxRate          decimal.Decimal `json:"fxRate" db:"fx_rate" validate:"gt=0"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount" db:"converted_amount"`
	PaymentTerms    int             `json:"paymentTerms" db:"payment_terms"`

	PostedDate  time.Time `json:"postedDate" db:"posted_date" validate:"posted_window"`
	ValueDate   time.Time `json:"valueDate" db:"value_date" validate:"required,value_window"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	PaymentDate time.Time `json:"paymentDate" db:"payment_date"`
	DateIssued  time.Time `json:"dateIssued" db:"date_issued"`

	Invoice *InvoiceDetails `json:"invoice,omitempty" db:"invoice"`
}

// InvoiceDetails is an optional nested invoice document, stored as JSONB.
type InvoiceDetails struct {
	InvoiceID        string    `json:"invoiceId"`
	DueDate          time.Time `json:"dueDate"`
	PaymentTermsDays int       `json:"paymentTermsDays"`
	Status           string    `json:"status"`
}

// Value serializes invoice details for a JSONB column.
func (d *InvoiceDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan deserializes invoice details from a JSONB column.
func (d *InvoiceDetails) Scan(src any) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("invoice details: unsupported source type")
	}
}

// Normalize assigns a generated id and creation timestamp when absent and
// fills the derived tax fields. It must be called once, before validation;
// persisted records are never recomputed.
func (t *Transaction) Normalize() {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.TaxAmount.IsZero() && t.NetAmount.IsZero() && t.TaxRate.IsPositive() {
		t.TaxAmount, t.NetAmount = DeriveAmounts(t.Amount, t.TaxRate)
	}
}

// DeriveAmounts computes the tax and net amounts from a gross amount and a
// fractional tax rate (0.2 means 20%).
func DeriveAmounts(amount, taxRate decimal.Decimal) (taxAmount, netAmount decimal.Decimal) {
	taxAmount = amount.Mul(taxRate)
	netAmount = amount.Sub(taxAmount)
	return taxAmount, netAmount
}
