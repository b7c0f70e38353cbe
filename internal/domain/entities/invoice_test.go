package entities

import (
	"testing"
	"time"
)

func TestInvoiceKey(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if got := InvoiceKey("com-1", start); got != "com-1#2026-08-01" {
		t.Fatalf("unexpected key: %q", got)
	}
}

func TestInvoice_Covers(t *testing.T) {
	inv := Invoice{
		PeriodStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC),
	}

	if !inv.Covers(time.Date(2026, 8, 16, 23, 59, 59, int(999*time.Millisecond), time.UTC)) {
		t.Fatalf("expected the end date to cover its whole day")
	}
	if !inv.Covers(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected the start date to be covered")
	}
	if inv.Covers(time.Date(2026, 8, 17, 0, 0, 0, 1, time.UTC)) {
		t.Fatalf("expected the day after the end not to be covered")
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	in := time.Date(2026, 8, 29, 22, 15, 4, 12, loc)
	got := DateOnly(in)
	if !got.Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected UTC calendar date, got %s", got)
	}
}
