package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alqaim/estates-api/internal/application/service"
	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/alqaim/estates-api/internal/domain/enum"
	"github.com/alqaim/estates-api/pkg/pagination"
	"github.com/alqaim/estates-api/pkg/pdf"
)

type stubPaymentRepo struct {
	payment *entity.Payment
}

func (r *stubPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error { return nil }

func (r *stubPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	if r.payment != nil && r.payment.ID == id {
		return r.payment, nil
	}
	return nil, nil
}

func (r *stubPaymentRepo) Update(ctx context.Context, payment *entity.Payment) error { return nil }
func (r *stubPaymentRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

func (r *stubPaymentRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Payment, int64, error) {
	return nil, 0, nil
}

func receiptTestRouter(payment *entity.Payment) *gin.Engine {
	gin.SetMode(gin.TestMode)

	receiptService := service.NewReceiptService(
		&stubPaymentRepo{payment: payment},
		pdf.NewEncoder(),
		service.ReceiptBranding{
			Name:    "AL-QAIM ASSOCIATES & DEVELOPERS",
			Address: "Office No. 313, Block-A, 3rd Floor, Dar Plaza, Gilgit",
			City:    "Gilgit",
			Phone:   "0315-5265707",
			Email:   "info@alqaim.com",
			Website: "www.alqaim.com",
			Project: "AL-Madina City",
		},
	)

	router := gin.New()
	router.GET("/payments/:id/receipt", NewReceiptHandler(receiptService).Download)
	return router
}

func TestReceiptDownload(t *testing.T) {
	customer := &entity.Customer{
		ID:    uuid.New(),
		Name:  "Ali Khan",
		CNIC:  "12345-1234567-1",
		Phone: "0300-1234567",
	}
	payment := &entity.Payment{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		ReceiptNo:  "RCPT-1709290800000",
		Method:     enum.PaymentMethodCash,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(125000),
		Customer:   customer,
	}
	router := receiptTestRouter(payment)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/"+payment.ID.String()+"/receipt", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=receipt-RCPT-1709290800000.pdf`, w.Header().Get("Content-Disposition"))
	assert.True(t, len(w.Body.Bytes()) > 0)
	assert.Equal(t, "%PDF-", string(w.Body.Bytes()[:5]))
}

func TestReceiptDownloadUnknownPayment(t *testing.T) {
	router := receiptTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/"+uuid.NewString()+"/receipt", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Payment not found"}`, w.Body.String())
}

func TestReceiptDownloadInvalidID(t *testing.T) {
	router := receiptTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/not-a-uuid/receipt", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
