package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logiportal/internal/adapter/http/handlers/mocks"
	"logiportal/internal/domain/entities"
	"logiportal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBillingHandler_GetCurrentInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("commerce not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.GET("/v1/commerces/:commerce_id/invoice", h.GetCurrentInvoice)

		uc.EXPECT().ResolveCurrentInvoice(gomock.Any(), "com-404").Return(entities.Invoice{}, usecase.ErrCommerceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/commerces/com-404/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("period integrity maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.GET("/v1/commerces/:commerce_id/invoice", h.GetCurrentInvoice)

		uc.EXPECT().ResolveCurrentInvoice(gomock.Any(), "com-1").Return(entities.Invoice{}, usecase.ErrPeriodIntegrity)

		req := httptest.NewRequest(http.MethodGet, "/v1/commerces/com-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["code"] != "PERIOD_INTEGRITY" {
			t.Fatalf("expected PERIOD_INTEGRITY, got %q", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.GET("/v1/commerces/:commerce_id/invoice", h.GetCurrentInvoice)

		inv := entities.Invoice{
			ID:          "com-1#2026-08-01",
			CommerceID:  "com-1",
			PeriodStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			State:       entities.PaymentStatePending,
		}
		uc.EXPECT().ResolveCurrentInvoice(gomock.Any(), "com-1").Return(inv, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/commerces/com-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["period_start"] != "2026-08-01" || body["period_end"] != "2026-09-01" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBillingHandler_Charges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/commerces/:commerce_id/charges", h.ChargeOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/commerces/com-1/charges", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("charge success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/commerces/:commerce_id/charges", h.ChargeOrder)

		uc.EXPECT().ChargeOrder(gomock.Any(), "com-1", 42.5).Return(entities.Invoice{ID: "inv-1", Amount: 142.5}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/commerces/com-1/charges", bytes.NewBufferString(`{"order_id":"ord-1","amount":42.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reverse maps invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/commerces/:commerce_id/charges/reverse", h.ReverseOrderCharge)

		uc.EXPECT().ReverseOrderCharge(gomock.Any(), "com-1", 10.0).Return(entities.Invoice{}, usecase.ErrInvalidChargeAmount)

		req := httptest.NewRequest(http.MethodPost, "/v1/commerces/com-1/charges/reverse", bytes.NewBufferString(`{"amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBillingHandler_SettleInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already paid maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.SettleInvoice)

		uc.EXPECT().SettleInvoice(gomock.Any(), "inv-1", gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvoiceAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("empty body settles with empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.SettleInvoice)

		uc.EXPECT().SettleInvoice(gomock.Any(), "inv-1", json.RawMessage("{}")).Return(entities.Invoice{ID: "inv-1", State: entities.PaymentStatePaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json body is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.SettleInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBillingHandler_MarkInvoiceOverdue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingUseCase(ctrl)
	h := NewBillingHandler(uc)

	r := gin.New()
	r.PATCH("/v1/invoices/:invoice_id/overdue", h.MarkInvoiceOverdue)

	uc.EXPECT().MarkInvoiceOverdue(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", State: entities.PaymentStateOverdue}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/overdue", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["state"] != "overdue" {
		t.Fatalf("expected overdue, got %v", body["state"])
	}
}
