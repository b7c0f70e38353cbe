package interfaces

import (
	"context"

	"logiportal/internal/domain/entities"
)

// ITariffCatalog exposes the tariff schedule used to price shipments.
//
// GetTariff serves both the base transport tariff and additional-service
// tariffs (same catalog, same lookup). GetAverageWeightKG is the reference
// representative weight substituted when an order is priced before its real
// weight is known (estimation mode).

type ITariffCatalog interface {
	GetTariff(ctx context.Context, id string) (entities.ServiceTariff, error)
	GetAverageWeightKG(ctx context.Context) (float64, error)
}
