package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"logiportal/internal/domain/entities"
	"logiportal/internal/usecase/interfaces"
)

var (
	ErrInvalidPricingInput = errors.New("invalid pricing input")
	ErrTariffNotFound      = errors.New("tariff not found")
)

// lateDeliveryPenaltyFactor is the flat reduction applied when a shipment is
// delivered after its deadline. Not tiered by lateness magnitude.
const lateDeliveryPenaltyFactor = 0.85

// rateTier is one segment of a cumulative surcharge curve. upTo is the upper
// bound of the segment (km or kg); zero means unbounded.
type rateTier struct {
	upTo float64
	rate float64
}

// Surcharge curves are piecewise linear with decreasing marginal rates, so
// the total stays monotonically non-decreasing in distance and in weight.
var (
	distanceTiers = []rateTier{
		{upTo: 50, rate: 1.25},
		{upTo: 200, rate: 0.95},
		{rate: 0.60},
	}
	weightTiers = []rateTier{
		{upTo: 5, rate: 4.00},
		{upTo: 25, rate: 2.50},
		{rate: 1.75},
	}
)

// ComputePrice is the pure pricing function: base tariff plus additional
// services, plus distance and weight surcharges, reduced by the commerce
// discount. A nil weight means estimation mode; the representative average
// weight carried in the input substitutes for it. A nil discount prices
// identically to 0%.
func ComputePrice(in entities.PricingInput) (entities.Quote, error) {
	if in.BaseCost < 0 || in.DistanceKM < 0 {
		return entities.Quote{}, ErrInvalidPricingInput
	}
	if in.WeightKG != nil && *in.WeightKG < 0 {
		return entities.Quote{}, ErrInvalidPricingInput
	}

	subtotal := in.BaseCost
	for _, c := range in.ServiceCosts {
		if c < 0 {
			return entities.Quote{}, ErrInvalidPricingInput
		}
		subtotal += c
	}

	weight := in.AverageWeightKG
	estimated := true
	if in.WeightKG != nil {
		weight = *in.WeightKG
		estimated = false
	}
	if weight < 0 {
		return entities.Quote{}, ErrInvalidPricingInput
	}

	discount := 0.0
	if in.DiscountPercent != nil {
		discount = *in.DiscountPercent
	}
	if discount < 0 || discount > 100 {
		return entities.Quote{}, ErrInvalidPricingInput
	}

	distanceSurcharge := tieredCost(in.DistanceKM, distanceTiers)
	weightSurcharge := tieredCost(weight, weightTiers)

	total := (subtotal + distanceSurcharge + weightSurcharge) * (1 - discount/100)

	return entities.Quote{
		FinalPrice: roundCents(total),
		Breakdown: entities.PriceBreakdown{
			BaseCost:          in.BaseCost,
			ServiceCosts:      in.ServiceCosts,
			DistanceKM:        in.DistanceKM,
			WeightKG:          weight,
			EstimatedWeight:   estimated,
			DistanceSurcharge: roundCents(distanceSurcharge),
			WeightSurcharge:   roundCents(weightSurcharge),
			DiscountPercent:   discount,
		},
	}, nil
}

// ApplyLateDeliveryPenalty reduces the price by a flat 15% when the shipment
// was delivered strictly after its deadline. Invoked once, at delivery
// confirmation; the discounted price replaces the original on the order.
func ApplyLateDeliveryPenalty(originalPrice float64, deadline, deliveredAt time.Time) float64 {
	if deliveredAt.After(deadline) {
		return roundCents(originalPrice * lateDeliveryPenaltyFactor)
	}
	return originalPrice
}

// tieredCost accumulates the cost of v units across consecutive tiers.
func tieredCost(v float64, tiers []rateTier) float64 {
	total := 0.0
	prev := 0.0
	for _, t := range tiers {
		span := v - prev
		if t.upTo > 0 && v > t.upTo {
			span = t.upTo - prev
		}
		if span <= 0 {
			break
		}
		total += span * t.rate
		if t.upTo == 0 || v <= t.upTo {
			break
		}
		prev = t.upTo
	}
	return total
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// QuoteCommand carries everything a price preview needs to resolve.
//
// CommerceID is optional: estimates made before a commerce is resolved carry
// no discount. WeightKG is optional: estimation mode substitutes the
// reference average weight.

type QuoteCommand struct {
	CommerceID          string
	OriginBranchID      string
	DestinationBranchID string
	TransportTariffID   string
	ServiceIDs          []string
	WeightKG            *float64
}

// IPricingUseCase exposes shipment pricing operations.
//
// These map to the portal flows:
//   - price preview / order creation  => QuoteOrder()
//   - delivery confirmation           => FinalizeDeliveryPrice()

type IPricingUseCase interface {
	QuoteOrder(ctx context.Context, cmd QuoteCommand) (entities.Quote, error)
	FinalizeDeliveryPrice(ctx context.Context, originalPrice float64, deadline, deliveredAt time.Time) (float64, error)
}

type PricingUseCase struct {
	catalog   interfaces.ITariffCatalog
	distances interfaces.IDistanceProvider
	directory interfaces.ICommerceDirectory
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(catalog interfaces.ITariffCatalog, distances interfaces.IDistanceProvider, directory interfaces.ICommerceDirectory) *PricingUseCase {
	return &PricingUseCase{catalog: catalog, distances: distances, directory: directory}
}

// QuoteOrder loads the tariff components, branch distance and commerce
// discount, then delegates to the pure ComputePrice.
func (u *PricingUseCase) QuoteOrder(ctx context.Context, cmd QuoteCommand) (entities.Quote, error) {
	origin := strings.TrimSpace(cmd.OriginBranchID)
	destination := strings.TrimSpace(cmd.DestinationBranchID)
	tariffID := strings.TrimSpace(cmd.TransportTariffID)
	if origin == "" || destination == "" || tariffID == "" {
		return entities.Quote{}, ErrInvalidPricingInput
	}

	base, err := u.catalog.GetTariff(ctx, tariffID)
	if err != nil {
		return entities.Quote{}, err
	}
	if base.ID == "" {
		return entities.Quote{}, ErrTariffNotFound
	}

	serviceCosts := make([]float64, 0, len(cmd.ServiceIDs))
	for _, id := range cmd.ServiceIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		svc, err := u.catalog.GetTariff(ctx, id)
		if err != nil {
			return entities.Quote{}, err
		}
		if svc.ID == "" {
			return entities.Quote{}, ErrTariffNotFound
		}
		serviceCosts = append(serviceCosts, svc.Cost)
	}

	distance, err := u.distances.DistanceBetweenBranches(ctx, origin, destination)
	if err != nil {
		return entities.Quote{}, err
	}

	var discount *float64
	if commerceID := strings.TrimSpace(cmd.CommerceID); commerceID != "" {
		terms, err := u.directory.GetBillingTerms(ctx, commerceID)
		if err != nil {
			return entities.Quote{}, err
		}
		if terms.CommerceID == "" {
			return entities.Quote{}, ErrCommerceNotFound
		}
		discount = terms.DiscountPercent
	}

	avgWeight := 0.0
	if cmd.WeightKG == nil {
		avgWeight, err = u.catalog.GetAverageWeightKG(ctx)
		if err != nil {
			return entities.Quote{}, err
		}
	}

	return ComputePrice(entities.PricingInput{
		BaseCost:        base.Cost,
		ServiceCosts:    serviceCosts,
		DistanceKM:      distance,
		WeightKG:        cmd.WeightKG,
		AverageWeightKG: avgWeight,
		DiscountPercent: discount,
	})
}

// FinalizeDeliveryPrice applies the late-delivery penalty at confirmation time.
func (u *PricingUseCase) FinalizeDeliveryPrice(_ context.Context, originalPrice float64, deadline, deliveredAt time.Time) (float64, error) {
	if originalPrice < 0 || deadline.IsZero() || deliveredAt.IsZero() {
		return 0, ErrInvalidPricingInput
	}
	return ApplyLateDeliveryPenalty(originalPrice, deadline, deliveredAt), nil
}
