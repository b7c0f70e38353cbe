package response

import "logiportal/internal/domain/entities"

type QuoteBreakdownResponse struct {
	BaseCost          float64   `json:"base_cost"`
	ServiceCosts      []float64 `json:"service_costs"`
	DistanceKM        float64   `json:"distance_km"`
	WeightKG          float64   `json:"weight_kg"`
	EstimatedWeight   bool      `json:"estimated_weight"`
	DistanceSurcharge float64   `json:"distance_surcharge"`
	WeightSurcharge   float64   `json:"weight_surcharge"`
	DiscountPercent   float64   `json:"discount_percent"`
}

type QuoteResponse struct {
	FinalPrice float64                `json:"final_price"`
	Breakdown  QuoteBreakdownResponse `json:"breakdown"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		FinalPrice: q.FinalPrice,
		Breakdown: QuoteBreakdownResponse{
			BaseCost:          q.Breakdown.BaseCost,
			ServiceCosts:      q.Breakdown.ServiceCosts,
			DistanceKM:        q.Breakdown.DistanceKM,
			WeightKG:          q.Breakdown.WeightKG,
			EstimatedWeight:   q.Breakdown.EstimatedWeight,
			DistanceSurcharge: q.Breakdown.DistanceSurcharge,
			WeightSurcharge:   q.Breakdown.WeightSurcharge,
			DiscountPercent:   q.Breakdown.DiscountPercent,
		},
	}
}

type FinalPriceResponse struct {
	FinalPrice float64 `json:"final_price"`
	Late       bool    `json:"late"`
}
