package entities

// ServiceTariff is a priced catalog entry: the base transport tariff of a
// shipment or one of its additional services (insurance, fragile handling...).
//
// Storage model (DynamoDB):
//   - PK: id (string)

type ServiceTariff struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// PricingInput is the full, explicit input of a price computation.
//
// WeightKG is nil in estimation mode (destination changed before the order was
// finalized); AverageWeightKG is the representative weight the caller pulled
// from the reference tariff table for that case. DiscountPercent is nil when
// no commerce is resolved yet; nil and 0 price identically.

type PricingInput struct {
	BaseCost        float64
	ServiceCosts    []float64
	DistanceKM      float64
	WeightKG        *float64
	AverageWeightKG float64
	DiscountPercent *float64
}

// PriceBreakdown itemizes every component of a computed price for
// display/audit purposes.

type PriceBreakdown struct {
	BaseCost          float64   `json:"base_cost"`
	ServiceCosts      []float64 `json:"service_costs"`
	DistanceKM        float64   `json:"distance_km"`
	WeightKG          float64   `json:"weight_kg"`
	EstimatedWeight   bool      `json:"estimated_weight"`
	DistanceSurcharge float64   `json:"distance_surcharge"`
	WeightSurcharge   float64   `json:"weight_surcharge"`
	DiscountPercent   float64   `json:"discount_percent"`
}

// Quote pairs the final price with its breakdown.

type Quote struct {
	FinalPrice float64        `json:"final_price"`
	Breakdown  PriceBreakdown `json:"breakdown"`
}
