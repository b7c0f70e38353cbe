package interfaces

import (
	"context"

	"logiportal/internal/domain/entities"
)

// ICommerceDirectory resolves the billing terms of a commerce.
//
// A zero-value BillingTerms (empty CommerceID) means the commerce itself is
// unknown. A known commerce whose contract is missing or incomplete comes
// back with an empty cadence and nil discount; the use case applies the
// documented defaults (monthly, 0%).

type ICommerceDirectory interface {
	GetBillingTerms(ctx context.Context, commerceID string) (entities.BillingTerms, error)
}
