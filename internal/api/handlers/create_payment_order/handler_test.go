package create_payment_order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amir3629/vocal-booking-service/internal/service/payments"
	"github.com/Amir3629/vocal-booking-service/internal/service/payments/models"
)

type fakeService struct {
	resp  *models.OrderResponse
	err   error
	calls []*models.CreateOrderRequest
}

func (f *fakeService) CreateOrder(_ context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/create-payment-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)
	return rec
}

func TestHandle_CreatesOrder(t *testing.T) {
	svc := &fakeService{resp: &models.OrderResponse{
		ID:         "ord-1",
		Status:     "created",
		ApproveURL: "https://pay.example.com/approve/ord-1",
	}}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(t, h, `{}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ord-1", resp.ID)
	assert.Equal(t, "created", resp.Status)
	assert.Equal(t, "https://pay.example.com/approve/ord-1", resp.ApproveURL)

	// Пустое тело означает депозит по умолчанию
	require.Len(t, svc.calls, 1)
	assert.Empty(t, svc.calls[0].Amount)
	assert.Empty(t, svc.calls[0].Currency)
}

func TestHandle_PassesExplicitAmount(t *testing.T) {
	svc := &fakeService{resp: &models.OrderResponse{ID: "ord-1", Status: "created"}}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(t, h, `{"amount":"45.50","currency":"USD"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, svc.calls, 1)
	assert.Equal(t, "45.50", svc.calls[0].Amount)
	assert.Equal(t, "USD", svc.calls[0].Currency)
}

func TestHandle_MalformedBody(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(t, h, `{broken`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.calls)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid amount", payments.ErrInvalidAmount, http.StatusBadRequest, "invalid amount"},
		{"invalid currency", payments.ErrInvalidCurrency, http.StatusBadRequest, "invalid currency"},
		{"processor unavailable", payments.ErrPaymentUnavailable, http.StatusBadGateway, "payment service unavailable"},
		{"internal", payments.ErrInternal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, noopLogger{})

			rec := doRequest(t, h, `{}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
