package validators

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/cashflowhq/cashflow-api/internal/models"
)

// Validation windows for the temporal rules.
const (
	postedDateSlack  = 5 * time.Minute
	valueDateHorizon = 30 * 24 * time.Hour
)

// reasonMessages maps struct field + violated tag to a human-readable reason.
var reasonMessages = map[string]string{
	"TenantID.required":            "tenantId is required.",
	"CompanyID.required":           "companyId is required.",
	"AccountID.required":           "accountId is required.",
	"Amount.gt":                    "amount must be > 0.",
	"Currency.required":            "currency must be a 3-letter code.",
	"Currency.len":                 "currency must be a 3-letter code.",
	"FxRate.gt":                    "fxRate must be > 0.",
	"NetAmount.gte":                "netAmount must be >= 0.",
	"PostedDate.posted_window":     "postedDate can't be in the far future.",
	"ValueDate.required":           "valueDate is required.",
	"ValueDate.value_window":       "valueDate too far in the future.",
	"SenderTransactionID.required": "senderTransactionId is required.",
	"SenderTransactionID.max":      "senderTransactionId must be at most 200 characters.",
}

// TransactionValidator checks a single transaction against the ingestion
// rules. It is a pure function of the transaction and the injected clock:
// no I/O, safe for concurrent use.
type TransactionValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New builds a validator. now may be nil, in which case time.Now is used.
func New(now func() time.Time) *TransactionValidator {
	if now == nil {
		now = time.Now
	}

	v := &TransactionValidator{
		validate: validator.New(),
		now:      now,
	}

	// Decimal fields are validated through their float value so the
	// numeric gt/gte tags apply.
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// postedDate must not be more than five minutes in the future. A zero
	// posted date is accepted: presence is not required.
	v.validate.RegisterValidation("posted_window", func(fl validator.FieldLevel) bool {
		ts, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return ts.IsZero() || !ts.After(v.now().Add(postedDateSlack))
	})

	// valueDate must not be more than 30 days in the future. Presence is
	// enforced by the required tag.
	v.validate.RegisterValidation("value_window", func(fl validator.FieldLevel) bool {
		ts, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return ts.IsZero() || !ts.After(v.now().Add(valueDateHorizon))
	})

	return v
}

// Validate reports whether the transaction passes every rule. When it does
// not, the returned reason lists each violated rule, joined with "; ".
func (v *TransactionValidator) Validate(txn *models.Transaction) (string, bool) {
	err := v.validate.Struct(txn)
	if err == nil {
		return "", true
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error(), false
	}

	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := reasonMessages[fe.StructField()+"."+fe.Tag()]; ok {
			reasons = append(reasons, msg)
		} else {
			reasons = append(reasons, fe.StructField()+" is invalid.")
		}
	}
	return strings.Join(reasons, "; "), false
}
