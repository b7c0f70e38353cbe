package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"logiportal/internal/domain/entities"
	"logiportal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCommerceID   = errors.New("invalid commerce id")
	ErrInvalidInvoiceID    = errors.New("invalid invoice id")
	ErrInvalidChargeAmount = errors.New("invalid charge amount")
	ErrCommerceNotFound    = errors.New("commerce not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid  = errors.New("invoice already paid")
	ErrInvalidSettlement   = errors.New("invalid settlement payload")
	ErrPeriodIntegrity     = errors.New("billing period integrity violation")
)

// maxPeriodAdvance caps how many whole periods the resolver may skip forward
// when catching up after idle time. Exceeding it signals corrupt period data
// and is surfaced as ErrPeriodIntegrity, never silently recovered.
const maxPeriodAdvance = 100

// IBillingUseCase exposes the billing-period and invoice lifecycle operations.
//
// These map to the portal flows:
//   - order creation      => ResolveCurrentInvoice() + ChargeOrder()
//   - order cancellation  => ReverseOrderCharge()
//   - invoice collection  => SettleInvoice() / MarkInvoiceOverdue()

type IBillingUseCase interface {
	ResolveCurrentInvoice(ctx context.Context, commerceID string) (entities.Invoice, error)
	ChargeOrder(ctx context.Context, commerceID string, amount float64) (entities.Invoice, error)
	ReverseOrderCharge(ctx context.Context, commerceID string, amount float64) (entities.Invoice, error)
	SettleInvoice(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error)
	MarkInvoiceOverdue(ctx context.Context, invoiceID string) (entities.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error)
}

type BillingUseCase struct {
	directory interfaces.ICommerceDirectory
	invoices  interfaces.IInvoiceRepository
	gateway   interfaces.IPaymentGateway

	// now is swapped in tests to pin "today".
	now func() time.Time
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(directory interfaces.ICommerceDirectory, invoices interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *BillingUseCase {
	return &BillingUseCase{
		directory: directory,
		invoices:  invoices,
		gateway:   gateway,
		now:       time.Now,
	}
}

// ResolveCurrentInvoice answers "what invoice covers this commerce today?",
// opening a new billing period when none does.
//
// The end date of the latest invoice is treated as covering its entire
// calendar day. When one or more whole periods have lapsed with no invoice
// issued, the resolver advances in whole-cadence steps so that the new period
// stays contiguous with the lapsed one (next start = previous end + 1 day).
func (u *BillingUseCase) ResolveCurrentInvoice(ctx context.Context, commerceID string) (entities.Invoice, error) {
	commerceID = strings.TrimSpace(commerceID)
	if commerceID == "" {
		return entities.Invoice{}, ErrInvalidCommerceID
	}

	terms, err := u.directory.GetBillingTerms(ctx, commerceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if terms.CommerceID == "" {
		return entities.Invoice{}, ErrCommerceNotFound
	}
	cadence := entities.CadenceOrDefault(terms.Cadence)

	latest, err := u.invoices.GetLatestByCommerceID(ctx, commerceID)
	if err != nil {
		return entities.Invoice{}, err
	}

	today := entities.DateOnly(u.now())

	if latest.ID == "" {
		return u.openPeriod(ctx, commerceID, today, cadence.PeriodEnd(today))
	}
	if latest.Covers(today) {
		return latest, nil
	}

	start := latest.PeriodEnd.AddDate(0, 0, 1)
	end := cadence.PeriodEnd(start)
	for advanced := 0; end.Before(today); advanced++ {
		if advanced >= maxPeriodAdvance {
			log.Printf("[billing][usecase] period advance cap exceeded commerce_id=%s cadence=%s last_period_end=%s", commerceID, cadence, latest.PeriodEnd.Format(entities.DateLayout))
			return entities.Invoice{}, fmt.Errorf("%w: commerce %s, last period end %s", ErrPeriodIntegrity, commerceID, latest.PeriodEnd.Format(entities.DateLayout))
		}
		start = end.AddDate(0, 0, 1)
		end = cadence.PeriodEnd(start)
	}

	return u.openPeriod(ctx, commerceID, start, end)
}

func (u *BillingUseCase) openPeriod(ctx context.Context, commerceID string, start, end time.Time) (entities.Invoice, error) {
	inv := entities.Invoice{
		ID:          entities.InvoiceKey(commerceID, start),
		Number:      uuid.NewString(),
		CommerceID:  commerceID,
		PeriodStart: start,
		PeriodEnd:   end,
		State:       entities.PaymentStatePending,
		Amount:      0,
		IssuedAt:    u.now().UTC(),
	}
	return u.invoices.Create(ctx, inv)
}

// ChargeOrder accumulates a freshly priced order onto the current invoice.
func (u *BillingUseCase) ChargeOrder(ctx context.Context, commerceID string, amount float64) (entities.Invoice, error) {
	if amount <= 0 {
		return entities.Invoice{}, ErrInvalidChargeAmount
	}

	inv, err := u.ResolveCurrentInvoice(ctx, commerceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.invoices.UpdateAmountByID(ctx, inv.ID, inv.Amount+amount)
}

// ReverseOrderCharge decrements the current invoice after an order
// cancellation. The amount is floored at zero.
func (u *BillingUseCase) ReverseOrderCharge(ctx context.Context, commerceID string, amount float64) (entities.Invoice, error) {
	if amount <= 0 {
		return entities.Invoice{}, ErrInvalidChargeAmount
	}

	inv, err := u.ResolveCurrentInvoice(ctx, commerceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	newAmount := inv.Amount - amount
	if newAmount < 0 {
		newAmount = 0
	}
	return u.invoices.UpdateAmountByID(ctx, inv.ID, newAmount)
}

// SettleInvoice collects an invoice through the payment gateway and records
// the settlement (state, payment date, provider reference).
func (u *BillingUseCase) SettleInvoice(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return entities.Invoice{}, ErrInvalidSettlement
	}
	if u.gateway == nil {
		return entities.Invoice{}, errors.New("payment gateway not configured")
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.State == entities.PaymentStatePaid {
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}

	// The source of truth for the amount is the invoice in DB.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = inv.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Invoice %s", inv.Number)
		}
		reqMap["transaction_amount"] = inv.Amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[billing][usecase] settling invoice invoice_id=%s amount=%.2f", inv.ID, inv.Amount)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[billing][usecase] payment gateway failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[billing][usecase] payment gateway success invoice_id=%s provider_payment_id=%s provider_status=%s", inv.ID, providerPaymentID, providerStatus)

	paidAt := u.now().UTC()
	return u.invoices.SettleByID(ctx, inv.ID, entities.PaymentStatePaid, &paidAt, providerPaymentID)
}

// MarkInvoiceOverdue flags an unpaid lapsed invoice; no gateway involved.
func (u *BillingUseCase) MarkInvoiceOverdue(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.State == entities.PaymentStatePaid {
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}
	return u.invoices.SettleByID(ctx, inv.ID, entities.PaymentStateOverdue, nil, "")
}

func (u *BillingUseCase) GetInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}
