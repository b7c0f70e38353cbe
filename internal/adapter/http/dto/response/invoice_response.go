package response

import (
	"time"

	"logiportal/internal/domain/entities"
)

type InvoiceResponse struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	CommerceID  string     `json:"commerce_id"`
	PeriodStart string     `json:"period_start"`
	PeriodEnd   string     `json:"period_end"`
	State       string     `json:"state"`
	Amount      float64    `json:"amount"`
	IssuedAt    time.Time  `json:"issued_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	PaymentRef  string     `json:"payment_ref,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		CommerceID:  inv.CommerceID,
		PeriodStart: inv.PeriodStart.Format(entities.DateLayout),
		PeriodEnd:   inv.PeriodEnd.Format(entities.DateLayout),
		State:       string(inv.State),
		Amount:      inv.Amount,
		IssuedAt:    inv.IssuedAt,
		PaidAt:      inv.PaidAt,
		PaymentRef:  inv.PaymentRef,
	}
}
