package interfaces

import (
	"context"
	"time"

	"logiportal/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// The billing core must be able to:
//   - create the invoice opening a billing period (idempotent on the period key)
//   - read the most recent invoice of a commerce, by period end descending
//   - accumulate/decrement the invoice amount as orders are charged/cancelled
//   - record a payment settlement or an overdue transition
//
// All lookups follow the repository convention that a zero-value entity with
// an empty ID means "not found".

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetLatestByCommerceID(ctx context.Context, commerceID string) (entities.Invoice, error)
	UpdateAmountByID(ctx context.Context, id string, newAmount float64) (entities.Invoice, error)
	SettleByID(ctx context.Context, id string, state entities.PaymentState, paidAt *time.Time, paymentRef string) (entities.Invoice, error)
}
