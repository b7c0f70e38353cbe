package routes

import (
	"logiportal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addBillingRoutes(rg *gin.RouterGroup, billing *handlers.BillingHandler, pricing *handlers.PricingHandler) {
	rg.POST("/quotes", pricing.CreateQuote)
	rg.POST("/deliveries/penalty", pricing.FinalizeDeliveryPrice)

	commerces := rg.Group("/commerces")
	commerces.GET("/:commerce_id/invoice", billing.GetCurrentInvoice)
	commerces.POST("/:commerce_id/charges", billing.ChargeOrder)
	commerces.POST("/:commerce_id/charges/reverse", billing.ReverseOrderCharge)

	invoices := rg.Group("/invoices")
	invoices.GET("/:invoice_id", billing.GetInvoice)
	invoices.POST("/:invoice_id/payments", billing.SettleInvoice)
	invoices.PATCH("/:invoice_id/overdue", billing.MarkInvoiceOverdue)
}
