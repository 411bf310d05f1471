package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	orderRepo "github.com/Amir3629/vocal-booking-service/internal/infra/storage/order"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/paymentservice"
	"github.com/Amir3629/vocal-booking-service/internal/service/payments/models"
)

type fakePaymentClient struct {
	createErr  error
	captureErr error
	created    []paymentservice.Amount
	captures   []string
}

func (f *fakePaymentClient) CreateOrder(_ context.Context, amount paymentservice.Amount) (*paymentservice.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, amount)
	return &paymentservice.Order{
		ID:     "ord-1",
		Status: paymentservice.OrderStatusCreated,
		Links:  []paymentservice.Link{{Href: "https://pay.example.com/approve/ord-1", Rel: "approve"}},
	}, nil
}

func (f *fakePaymentClient) CaptureOrder(_ context.Context, orderID string) (*paymentservice.CaptureOrderResponse, error) {
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	f.captures = append(f.captures, orderID)

	payload := fmt.Sprintf(`{
		"id": %q,
		"status": "COMPLETED",
		"purchase_units": [{
			"payments": {
				"captures": [{
					"id": "cap-1",
					"status": "COMPLETED",
					"amount": {"currency_code": "EUR", "value": "25.00"},
					"create_time": "2025-03-01T14:05:00Z"
				}]
			}
		}],
		"payer": {"email_address": "payer@example.com"}
	}`, orderID)

	var resp paymentservice.CaptureOrderResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type fakeOrderRepo struct {
	mirror       map[string]*domain.PaymentOrder
	markedFailed []string
	captured     []string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{mirror: make(map[string]*domain.PaymentOrder)}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *domain.PaymentOrder) error {
	f.mirror[o.OrderID] = o
	return nil
}

func (f *fakeOrderRepo) GetByOrderID(_ context.Context, orderID string) (*domain.PaymentOrder, error) {
	if o, ok := f.mirror[orderID]; ok {
		return o, nil
	}
	return nil, orderRepo.ErrOrderNotFound
}

func (f *fakeOrderRepo) MarkCaptured(_ context.Context, orderID, payerEmail string, capturedAt time.Time) error {
	f.captured = append(f.captured, orderID)
	if o, ok := f.mirror[orderID]; ok {
		o.Status = domain.OrderStatusCompleted
		o.PayerEmail = &payerEmail
		o.CapturedAt = &capturedAt
	}
	return nil
}

func (f *fakeOrderRepo) MarkFailed(_ context.Context, orderID string) error {
	f.markedFailed = append(f.markedFailed, orderID)
	if o, ok := f.mirror[orderID]; ok {
		o.Status = domain.OrderStatusFailed
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(client *fakePaymentClient, repo *fakeOrderRepo) *Service {
	return NewService(client, repo, Deposit{Amount: "30.00", Currency: "EUR"}, noopLogger{})
}

func TestCreateOrder_DefaultsToConfiguredDeposit(t *testing.T) {
	client := &fakePaymentClient{}
	repo := newFakeOrderRepo()
	svc := newService(client, repo)

	resp, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{})
	require.NoError(t, err)

	assert.Equal(t, "ord-1", resp.ID)
	assert.Equal(t, string(domain.OrderStatusCreated), resp.Status)
	assert.Equal(t, "https://pay.example.com/approve/ord-1", resp.ApproveURL)

	require.Len(t, client.created, 1)
	assert.Equal(t, "30.00", client.created[0].Value)
	assert.Equal(t, "EUR", client.created[0].CurrencyCode)

	// Ордер отражен в локальном зеркале
	mirrored, err := repo.GetByOrderID(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCreated, mirrored.Status)
}

func TestCreateOrder_ExplicitAmountOverridesDeposit(t *testing.T) {
	client := &fakePaymentClient{}
	svc := newService(client, newFakeOrderRepo())

	_, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		Amount:   "45.50",
		Currency: "USD",
	})
	require.NoError(t, err)

	require.Len(t, client.created, 1)
	assert.Equal(t, "45.50", client.created[0].Value)
	assert.Equal(t, "USD", client.created[0].CurrencyCode)
}

func TestCreateOrder_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateOrderRequest
		wantErr error
	}{
		{"amount without cents", models.CreateOrderRequest{Amount: "30", Currency: "EUR"}, ErrInvalidAmount},
		{"negative amount", models.CreateOrderRequest{Amount: "-5.00", Currency: "EUR"}, ErrInvalidAmount},
		{"amount with comma", models.CreateOrderRequest{Amount: "30,00", Currency: "EUR"}, ErrInvalidAmount},
		{"lowercase currency", models.CreateOrderRequest{Amount: "30.00", Currency: "eur"}, ErrInvalidCurrency},
		{"too long currency", models.CreateOrderRequest{Amount: "30.00", Currency: "EURO"}, ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakePaymentClient{}
			svc := newService(client, newFakeOrderRepo())

			_, err := svc.CreateOrder(context.Background(), &tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, client.created)
		})
	}
}

func TestCreateOrder_ProcessorUnavailable(t *testing.T) {
	client := &fakePaymentClient{createErr: paymentservice.ErrUnavailable}
	svc := newService(client, newFakeOrderRepo())

	_, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{})
	require.ErrorIs(t, err, ErrPaymentUnavailable)
}

func TestCaptureOrder_Success(t *testing.T) {
	client := &fakePaymentClient{}
	repo := newFakeOrderRepo()
	svc := newService(client, repo)

	resp, err := svc.CaptureOrder(context.Background(), "ord-1")
	require.NoError(t, err)

	assert.Equal(t, "ord-1", resp.ID)
	assert.Equal(t, string(domain.OrderStatusCompleted), resp.Status)
	assert.Equal(t, "25.00", resp.Amount)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Equal(t, "payer@example.com", resp.PayerEmail)
	assert.Equal(t, "2025-03-01T14:05:00Z", resp.CaptureTime)

	assert.Equal(t, []string{"ord-1"}, repo.captured)
}

func TestCaptureOrder_NotFound(t *testing.T) {
	client := &fakePaymentClient{captureErr: paymentservice.ErrOrderNotFound}
	svc := newService(client, newFakeOrderRepo())

	_, err := svc.CaptureOrder(context.Background(), "missing")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCaptureOrder_RejectedMarksMirrorFailed(t *testing.T) {
	client := &fakePaymentClient{captureErr: paymentservice.ErrOrderRejected}
	repo := newFakeOrderRepo()
	repo.mirror["ord-1"] = &domain.PaymentOrder{OrderID: "ord-1", Status: domain.OrderStatusCreated}
	svc := newService(client, repo)

	_, err := svc.CaptureOrder(context.Background(), "ord-1")
	require.ErrorIs(t, err, ErrPaymentRejected)
	assert.Equal(t, []string{"ord-1"}, repo.markedFailed)
}

func TestCaptureOrder_RepeatRejectionKeepsCapturedMirror(t *testing.T) {
	// Повторный capture уже оплаченного ордера: отказ пробрасывается,
	// но запись об успешном первом capture не затирается
	client := &fakePaymentClient{captureErr: paymentservice.ErrOrderRejected}
	repo := newFakeOrderRepo()
	capturedAt := time.Now()
	repo.mirror["ord-1"] = &domain.PaymentOrder{
		OrderID:    "ord-1",
		Status:     domain.OrderStatusCompleted,
		CapturedAt: &capturedAt,
	}
	svc := newService(client, repo)

	_, err := svc.CaptureOrder(context.Background(), "ord-1")
	require.ErrorIs(t, err, ErrPaymentRejected)

	assert.Empty(t, repo.markedFailed)
	assert.Equal(t, domain.OrderStatusCompleted, repo.mirror["ord-1"].Status)
}
