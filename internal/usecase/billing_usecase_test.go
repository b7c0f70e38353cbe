package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"logiportal/internal/domain/entities"
	mock_interfaces "logiportal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

func newBillingUseCaseForTest(ctrl *gomock.Controller) (*BillingUseCase, *mock_interfaces.MockICommerceDirectory, *mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockIPaymentGateway) {
	directory := mock_interfaces.NewMockICommerceDirectory(ctrl)
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewBillingUseCase(directory, invoices, gateway)
	uc.now = func() time.Time { return testNow }
	return uc, directory, invoices, gateway
}

func termsFor(commerceID string, cadence entities.BillingCadence) entities.BillingTerms {
	return entities.BillingTerms{CommerceID: commerceID, Cadence: cadence}
}

func TestBillingUseCase_ResolveCurrentInvoice(t *testing.T) {
	today := entities.DateOnly(testNow)

	t.Run("invalid commerce id", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil, nil)
		_, err := uc.ResolveCurrentInvoice(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidCommerceID) {
			t.Fatalf("expected ErrInvalidCommerceID, got %v", err)
		}
	})

	t.Run("commerce not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, _, _ := newBillingUseCaseForTest(ctrl)

		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(entities.BillingTerms{}, nil)

		_, err := uc.ResolveCurrentInvoice(context.Background(), "com-1")
		if !errors.Is(err, ErrCommerceNotFound) {
			t.Fatalf("expected ErrCommerceNotFound, got %v", err)
		}
	})

	t.Run("directory error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, _, _ := newBillingUseCaseForTest(ctrl)

		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(entities.BillingTerms{}, errors.New("db"))

		_, err := uc.ResolveCurrentInvoice(context.Background(), "com-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("no prior invoice opens monthly period starting today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", entities.CadenceMonthly), nil)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(entities.Invoice{}, nil)
		invoices.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if !inv.PeriodStart.Equal(today) {
					t.Fatalf("expected period start today, got %s", inv.PeriodStart)
				}
				if !inv.PeriodEnd.Equal(today.AddDate(0, 1, 0)) {
					t.Fatalf("expected period end today+1 month, got %s", inv.PeriodEnd)
				}
				if inv.Amount != 0 || inv.State != entities.PaymentStatePending {
					t.Fatalf("unexpected new invoice: %+v", inv)
				}
				if inv.ID != entities.InvoiceKey("com-1", today) || inv.Number == "" {
					t.Fatalf("unexpected identifiers: %+v", inv)
				}
				return inv, nil
			},
		)

		inv, err := uc.ResolveCurrentInvoice(context.Background(), " com-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.CommerceID != "com-1" {
			t.Fatalf("unexpected commerce id: %+v", inv)
		}
	})

	t.Run("missing cadence defaults to monthly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", ""), nil)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(entities.Invoice{}, nil)
		invoices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if !inv.PeriodEnd.Equal(today.AddDate(0, 1, 0)) {
					t.Fatalf("expected monthly default, got end %s", inv.PeriodEnd)
				}
				return inv, nil
			},
		)

		if _, err := uc.ResolveCurrentInvoice(context.Background(), "com-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no prior invoice opens biweekly period of 15 days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", entities.CadenceBiweekly), nil)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(entities.Invoice{}, nil)
		invoices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if !inv.PeriodEnd.Equal(today.AddDate(0, 0, 15)) {
					t.Fatalf("expected 15-day period, got end %s", inv.PeriodEnd)
				}
				return inv, nil
			},
		)

		if _, err := uc.ResolveCurrentInvoice(context.Background(), "com-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("still-open invoice is returned unchanged and idempotently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		// Opened 10 days ago on a 15-day cadence: still open.
		open := entities.Invoice{
			ID:          "com-1#2026-08-19",
			CommerceID:  "com-1",
			PeriodStart: today.AddDate(0, 0, -10),
			PeriodEnd:   today.AddDate(0, 0, 5),
			State:       entities.PaymentStatePending,
			Amount:      150,
		}
		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", entities.CadenceBiweekly), nil).Times(2)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(open, nil).Times(2)

		for i := 0; i < 2; i++ {
			inv, err := uc.ResolveCurrentInvoice(context.Background(), "com-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if inv.ID != open.ID || inv.Amount != 150 {
				t.Fatalf("expected the open invoice unchanged, got %+v", inv)
			}
		}
	})

	t.Run("invoice ending today still covers the whole day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		open := entities.Invoice{ID: "inv-1", CommerceID: "com-1", PeriodEnd: today}
		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", entities.CadenceMonthly), nil)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(open, nil)

		inv, err := uc.ResolveCurrentInvoice(context.Background(), "com-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "inv-1" {
			t.Fatalf("expected the ending-today invoice, got %+v", inv)
		}
	})

	t.Run("lapsed invoice opens the contiguous next period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		// Monthly invoice that ended 40 days ago: exactly one new period,
		// starting the day after the lapsed end, covers today.
		lapsedEnd := today.AddDate(0, 0, -40)
		latest := entities.Invoice{ID: "inv-old", CommerceID: "com-1", PeriodEnd: lapsedEnd}

		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", entities.CadenceMonthly), nil)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(latest, nil)
		invoices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				wantStart := lapsedEnd.AddDate(0, 0, 1)
				if !inv.PeriodStart.Equal(wantStart) {
					t.Fatalf("expected start %s, got %s", wantStart, inv.PeriodStart)
				}
				if !inv.PeriodEnd.Equal(wantStart.AddDate(0, 1, 0)) {
					t.Fatalf("expected a one-month window, got end %s", inv.PeriodEnd)
				}
				if inv.PeriodEnd.Before(today) {
					t.Fatalf("new period must cover today, got end %s", inv.PeriodEnd)
				}
				return inv, nil
			},
		)

		if _, err := uc.ResolveCurrentInvoice(context.Background(), "com-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("multiple lapsed periods are skipped in whole-cadence steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		lapsedEnd := today.AddDate(0, -3, -2)
		latest := entities.Invoice{ID: "inv-old", CommerceID: "com-1", PeriodEnd: lapsedEnd}

		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", entities.CadenceMonthly), nil)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(latest, nil)
		invoices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				// Start stays aligned on the cadence grid rooted at the lapsed end.
				expectedStart := lapsedEnd.AddDate(0, 0, 1)
				for expectedStart.AddDate(0, 1, 0).Before(today) {
					expectedStart = expectedStart.AddDate(0, 1, 0).AddDate(0, 0, 1)
				}
				if !inv.PeriodStart.Equal(expectedStart) {
					t.Fatalf("expected grid-aligned start %s, got %s", expectedStart, inv.PeriodStart)
				}
				if inv.PeriodEnd.Before(today) {
					t.Fatalf("returned period must cover today, got end %s", inv.PeriodEnd)
				}
				// Exactly one month, not a three-month catch-all window.
				if !inv.PeriodEnd.Equal(inv.PeriodStart.AddDate(0, 1, 0)) {
					t.Fatalf("expected single-cadence window, got %s..%s", inv.PeriodStart, inv.PeriodEnd)
				}
				return inv, nil
			},
		)

		if _, err := uc.ResolveCurrentInvoice(context.Background(), "com-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("advance cap surfaces as period integrity error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		// Roughly ten years of missing biweekly periods: far beyond the cap.
		latest := entities.Invoice{ID: "inv-old", CommerceID: "com-1", PeriodEnd: today.AddDate(-10, 0, 0)}

		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", entities.CadenceBiweekly), nil)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(latest, nil)

		_, err := uc.ResolveCurrentInvoice(context.Background(), "com-1")
		if !errors.Is(err, ErrPeriodIntegrity) {
			t.Fatalf("expected ErrPeriodIntegrity, got %v", err)
		}
	})
}

func TestBillingUseCase_ChargeOrder(t *testing.T) {
	today := entities.DateOnly(testNow)

	t.Run("invalid amount", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil, nil)
		_, err := uc.ChargeOrder(context.Background(), "com-1", 0)
		if !errors.Is(err, ErrInvalidChargeAmount) {
			t.Fatalf("expected ErrInvalidChargeAmount, got %v", err)
		}
	})

	t.Run("accumulates on the current invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		open := entities.Invoice{ID: "inv-1", CommerceID: "com-1", PeriodEnd: today.AddDate(0, 0, 5), Amount: 100}
		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", entities.CadenceBiweekly), nil)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(open, nil)
		invoices.EXPECT().UpdateAmountByID(gomock.Any(), "inv-1", 135.5).Return(entities.Invoice{ID: "inv-1", Amount: 135.5}, nil)

		inv, err := uc.ChargeOrder(context.Background(), "com-1", 35.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Amount != 135.5 {
			t.Fatalf("unexpected amount: %v", inv.Amount)
		}
	})
}

func TestBillingUseCase_ReverseOrderCharge(t *testing.T) {
	today := entities.DateOnly(testNow)

	t.Run("invalid amount", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil, nil)
		_, err := uc.ReverseOrderCharge(context.Background(), "com-1", -1)
		if !errors.Is(err, ErrInvalidChargeAmount) {
			t.Fatalf("expected ErrInvalidChargeAmount, got %v", err)
		}
	})

	t.Run("decrements the current invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		open := entities.Invoice{ID: "inv-1", CommerceID: "com-1", PeriodEnd: today.AddDate(0, 0, 5), Amount: 100}
		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", entities.CadenceBiweekly), nil)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(open, nil)
		invoices.EXPECT().UpdateAmountByID(gomock.Any(), "inv-1", 60.0).Return(entities.Invoice{ID: "inv-1", Amount: 60}, nil)

		if _, err := uc.ReverseOrderCharge(context.Background(), "com-1", 40); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("floors the amount at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, directory, invoices, _ := newBillingUseCaseForTest(ctrl)

		open := entities.Invoice{ID: "inv-1", CommerceID: "com-1", PeriodEnd: today.AddDate(0, 0, 5), Amount: 30}
		directory.EXPECT().GetBillingTerms(gomock.Any(), "com-1").Return(termsFor("com-1", entities.CadenceBiweekly), nil)
		invoices.EXPECT().GetLatestByCommerceID(gomock.Any(), "com-1").Return(open, nil)
		invoices.EXPECT().UpdateAmountByID(gomock.Any(), "inv-1", 0.0).Return(entities.Invoice{ID: "inv-1", Amount: 0}, nil)

		if _, err := uc.ReverseOrderCharge(context.Background(), "com-1", 80); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBillingUseCase_SettleInvoice(t *testing.T) {
	t.Run("invalid invoice id", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil, nil)
		_, err := uc.SettleInvoice(context.Background(), "  ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil, nil)
		_, err := uc.SettleInvoice(context.Background(), "inv-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidSettlement) {
			t.Fatalf("expected ErrInvalidSettlement, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, invoices, _ := newBillingUseCaseForTest(ctrl)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.SettleInvoice(context.Background(), "inv-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, invoices, _ := newBillingUseCaseForTest(ctrl)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", State: entities.PaymentStatePaid}, nil)

		_, err := uc.SettleInvoice(context.Background(), "inv-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("expected ErrInvoiceAlreadyPaid, got %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, invoices, gateway := newBillingUseCaseForTest(ctrl)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Amount: 500}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.SettleInvoice(context.Background(), "inv-1", json.RawMessage(`{}`))
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("success records paid state and provider ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, invoices, gateway := newBillingUseCaseForTest(ctrl)

		inv := entities.Invoice{ID: "inv-1", Number: "num-1", CommerceID: "com-1", Amount: 500}
		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["external_reference"] != "inv-1" {
					t.Fatalf("expected invoice linkage, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != 500.0 {
					t.Fatalf("expected DB amount, got %v", m["transaction_amount"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123"}`), nil
			},
		)
		invoices.EXPECT().SettleByID(gomock.Any(), "inv-1", entities.PaymentStatePaid, gomock.Any(), "mp-123").DoAndReturn(
			func(_ context.Context, id string, state entities.PaymentState, paidAt *time.Time, ref string) (entities.Invoice, error) {
				if paidAt == nil || paidAt.IsZero() {
					t.Fatalf("expected payment date")
				}
				settled := inv
				settled.State = state
				settled.PaidAt = paidAt
				settled.PaymentRef = ref
				return settled, nil
			},
		)

		settled, err := uc.SettleInvoice(context.Background(), " inv-1 ", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if settled.State != entities.PaymentStatePaid || settled.PaymentRef != "mp-123" {
			t.Fatalf("unexpected settlement: %+v", settled)
		}
	})
}

func TestBillingUseCase_MarkInvoiceOverdue(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil, nil)
		_, err := uc.MarkInvoiceOverdue(context.Background(), "")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, invoices, _ := newBillingUseCaseForTest(ctrl)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.MarkInvoiceOverdue(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("paid invoices cannot go overdue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, invoices, _ := newBillingUseCaseForTest(ctrl)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", State: entities.PaymentStatePaid}, nil)

		_, err := uc.MarkInvoiceOverdue(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("expected ErrInvoiceAlreadyPaid, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, invoices, _ := newBillingUseCaseForTest(ctrl)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", State: entities.PaymentStatePending}, nil)
		invoices.EXPECT().SettleByID(gomock.Any(), "inv-1", entities.PaymentStateOverdue, nil, "").Return(entities.Invoice{ID: "inv-1", State: entities.PaymentStateOverdue}, nil)

		inv, err := uc.MarkInvoiceOverdue(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.State != entities.PaymentStateOverdue {
			t.Fatalf("unexpected state: %s", inv.State)
		}
	})
}
