package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "logiportal/internal/adapter/http/dto/request"
	response "logiportal/internal/adapter/http/dto/response"
	"logiportal/internal/domain/entities"
	"logiportal/internal/usecase"
	"logiportal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_CHARGE_INPUT", "Invalid charge payload", http.StatusBadRequest)

// BillingHandler handles HTTP requests for billing periods and invoices.

type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

// GetCurrentInvoice resolves (and lazily opens) the invoice covering today
// for the commerce in the path.
func (h *BillingHandler) GetCurrentInvoice(c *gin.Context) {
	commerceID := c.Param("commerce_id")

	inv, err := h.usecase.ResolveCurrentInvoice(c.Request.Context(), commerceID)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// ChargeOrder accumulates a priced order onto the current invoice.
func (h *BillingHandler) ChargeOrder(c *gin.Context) {
	h.applyCharge(c, h.usecase.ChargeOrder)
}

// ReverseOrderCharge decrements the current invoice after a cancellation.
func (h *BillingHandler) ReverseOrderCharge(c *gin.Context) {
	h.applyCharge(c, h.usecase.ReverseOrderCharge)
}

func (h *BillingHandler) applyCharge(
	c *gin.Context,
	apply func(ctx context.Context, commerceID string, amount float64) (entities.Invoice, error),
) {
	commerceID := c.Param("commerce_id")

	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	inv, err := apply(c.Request.Context(), commerceID, payload.Amount)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// SettleInvoice collects an invoice through the payment provider.
func (h *BillingHandler) SettleInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[billing][handler] settle start invoice_id=%s", invoiceID)

	payload, err := readSettlementPayload(c)
	if err != nil {
		log.Printf("[billing][handler] invalid settlement payload invoice_id=%s err=%v", invoiceID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	settled, err := h.usecase.SettleInvoice(c.Request.Context(), invoiceID, payload)
	if err != nil {
		log.Printf("[billing][handler] settle failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[billing][handler] settle success invoice_id=%s payment_ref=%s", settled.ID, settled.PaymentRef)

	c.JSON(http.StatusOK, response.FromInvoice(settled))
}

// MarkInvoiceOverdue flags an unpaid lapsed invoice.
func (h *BillingHandler) MarkInvoiceOverdue(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	inv, err := h.usecase.MarkInvoiceOverdue(c.Request.Context(), invoiceID)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// GetInvoice returns one invoice by id.
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func readSettlementPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}
	return json.RawMessage(raw), nil
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCommerceID), errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidChargeAmount), errors.Is(err, usecase.ErrInvalidSettlement):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCommerceNotFound):
		return pkg.NewDomainErrorSimple("COMMERCE_NOT_FOUND", "Commerce not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPeriodIntegrity):
		return pkg.NewDomainError("PERIOD_INTEGRITY", "Billing period data is corrupt", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
