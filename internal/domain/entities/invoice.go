package entities

import (
	"fmt"
	"time"
)

// PaymentState represents the payment lifecycle of an invoice.
//
// Invoices are created "pending", move to "paid" when a settlement is
// recorded, and to "overdue" when the portal flags an unpaid lapsed invoice.

type PaymentState string

const (
	PaymentStatePending PaymentState = "pending"
	PaymentStatePaid    PaymentState = "paid"
	PaymentStateOverdue PaymentState = "overdue"
)

// DateLayout is the calendar-date representation used for billing periods.
// Period boundaries carry no time component; the end date covers its whole day.
const DateLayout = "2006-01-02"

// Invoice is the per-commerce, per-billing-period document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (string) — the deterministic period key, see InvoiceKey
//   - GSI1 (commerce_id-index): commerce_id, sort key period_end
//
// The deterministic PK doubles as a uniqueness constraint on
// (commerce, period start): two concurrent resolutions of the same lapsed
// period collapse onto one item instead of creating overlapping invoices.
//
// Invariant: for a given commerce, periods are contiguous and non-overlapping —
// the end date of one invoice is always the day before the start of the next.

type Invoice struct {
	ID          string       `json:"id"`
	Number      string       `json:"number"`
	CommerceID  string       `json:"commerce_id"`
	PeriodStart time.Time    `json:"period_start"`
	PeriodEnd   time.Time    `json:"period_end"`
	State       PaymentState `json:"state"`
	Amount      float64      `json:"amount"`
	IssuedAt    time.Time    `json:"issued_at"`
	PaidAt      *time.Time   `json:"paid_at,omitempty"`
	PaymentRef  string       `json:"payment_ref,omitempty"`
}

// InvoiceKey builds the deterministic invoice id for a commerce and a period start.
func InvoiceKey(commerceID string, periodStart time.Time) string {
	return fmt.Sprintf("%s#%s", commerceID, periodStart.Format(DateLayout))
}

// Covers reports whether the invoice period still covers the given instant.
// The period end is inclusive through the entire calendar day.
func (i Invoice) Covers(t time.Time) bool {
	return !DateOnly(t).After(i.PeriodEnd)
}

// DateOnly truncates an instant to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
