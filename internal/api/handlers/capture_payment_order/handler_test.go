package capture_payment_order

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
	resp  *models.CaptureResponse
	err   error
	calls []string
}

func (f *fakeService) CaptureOrder(_ context.Context, orderID string) (*models.CaptureResponse, error) {
	f.calls = append(f.calls, orderID)
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

	req := httptest.NewRequest(http.MethodPost, "/capture-payment-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)
	return rec
}

func TestHandle_CapturesOrder(t *testing.T) {
	svc := &fakeService{resp: &models.CaptureResponse{
		ID:          "ord-1",
		Status:      "completed",
		Amount:      "30.00",
		Currency:    "EUR",
		CaptureTime: "2025-03-01T14:05:00Z",
		PayerEmail:  "payer@example.com",
	}}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(t, h, `{"orderId":"ord-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CaptureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ord-1", resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "30.00", resp.Amount)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Equal(t, "payer@example.com", resp.PayerEmail)

	assert.Equal(t, []string{"ord-1"}, svc.calls)
}

func TestHandle_MissingOrderID(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(t, h, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing orderId")
	assert.Empty(t, svc.calls)
}

func TestHandle_MalformedBody(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(t, h, `not json at all`)
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
		{"order not found", payments.ErrOrderNotFound, http.StatusNotFound, "order not found"},
		{"rejected by processor", payments.ErrPaymentRejected, http.StatusBadGateway, "rejected"},
		{"processor unavailable", payments.ErrPaymentUnavailable, http.StatusBadGateway, "payment service unavailable"},
		{"internal", payments.ErrInternal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, noopLogger{})

			rec := doRequest(t, h, `{"orderId":"ord-1"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
