package response

import (
	"testing"
	"time"

	"logiportal/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	now := time.Now().UTC()
	paidAt := now.Add(-time.Hour)
	inv := entities.Invoice{
		ID:          "com-1#2026-08-01",
		Number:      "num-1",
		CommerceID:  "com-1",
		PeriodStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC),
		State:       entities.PaymentStatePaid,
		Amount:      420.5,
		IssuedAt:    now,
		PaidAt:      &paidAt,
		PaymentRef:  "mp-1",
	}

	res := FromInvoice(inv)
	if res.ID != "com-1#2026-08-01" || res.Number != "num-1" || res.CommerceID != "com-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.PeriodStart != "2026-08-01" || res.PeriodEnd != "2026-08-16" {
		t.Fatalf("unexpected period dates: %+v", res)
	}
	if res.State != "paid" || res.Amount != 420.5 || res.PaymentRef != "mp-1" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.PaidAt == nil || !res.PaidAt.Equal(paidAt) {
		t.Fatalf("unexpected paid at: %+v", res.PaidAt)
	}
}

func TestFromQuote(t *testing.T) {
	q := entities.Quote{
		FinalPrice: 175.5,
		Breakdown: entities.PriceBreakdown{
			BaseCost:          100,
			ServiceCosts:      []float64{25},
			DistanceKM:        30,
			WeightKG:          10,
			DistanceSurcharge: 37.5,
			WeightSurcharge:   32.5,
			DiscountPercent:   10,
		},
	}

	res := FromQuote(q)
	if res.FinalPrice != 175.5 {
		t.Fatalf("unexpected final price: %v", res.FinalPrice)
	}
	if res.Breakdown.BaseCost != 100 || res.Breakdown.DistanceSurcharge != 37.5 || res.Breakdown.DiscountPercent != 10 {
		t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
	}
}
