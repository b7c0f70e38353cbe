package request

import (
	"strings"

	"logiportal/internal/usecase"
)

// QuoteRequest is the price-preview payload sent by the portal's order
// creation and branch-change flows.
//
// weight_kg is omitted in estimation mode (destination branch changed before
// the order was finalized); commerce_id is omitted when no commerce is
// resolved yet, which prices without a contract discount.
type QuoteRequest struct {
	CommerceID          string   `json:"commerce_id"`
	OriginBranchID      string   `json:"origin_branch_id" binding:"required"`
	DestinationBranchID string   `json:"destination_branch_id" binding:"required"`
	TransportTariffID   string   `json:"transport_tariff_id" binding:"required"`
	ServiceIDs          []string `json:"service_ids"`
	WeightKG            *float64 `json:"weight_kg"`
}

func (r QuoteRequest) ResolveCommand() usecase.QuoteCommand {
	return usecase.QuoteCommand{
		CommerceID:          strings.TrimSpace(r.CommerceID),
		OriginBranchID:      strings.TrimSpace(r.OriginBranchID),
		DestinationBranchID: strings.TrimSpace(r.DestinationBranchID),
		TransportTariffID:   strings.TrimSpace(r.TransportTariffID),
		ServiceIDs:          r.ServiceIDs,
		WeightKG:            r.WeightKG,
	}
}
