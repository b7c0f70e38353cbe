package handlers

import (
	"errors"
	"net/http"

	request "logiportal/internal/adapter/http/dto/request"
	response "logiportal/internal/adapter/http/dto/response"
	"logiportal/internal/usecase"
	"logiportal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// PricingHandler handles HTTP requests for shipment pricing.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// CreateQuote prices a shipment from tariffs, branch distance, weight and the
// commerce discount. Used both as a price preview and at order creation.
func (h *PricingHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.QuoteOrder(c.Request.Context(), payload.ResolveCommand())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// FinalizeDeliveryPrice applies the late-delivery penalty at confirmation.
func (h *PricingHandler) FinalizeDeliveryPrice(c *gin.Context) {
	var payload request.PenaltyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	final, err := h.usecase.FinalizeDeliveryPrice(c.Request.Context(), payload.Price, payload.Deadline, payload.DeliveredAt)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FinalPriceResponse{FinalPrice: final, Late: final != payload.Price})
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPricingInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTariffNotFound):
		return pkg.NewDomainErrorSimple("TARIFF_NOT_FOUND", "Tariff not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCommerceNotFound):
		return pkg.NewDomainErrorSimple("COMMERCE_NOT_FOUND", "Commerce not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
