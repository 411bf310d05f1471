package payments

import (
	"context"
	"time"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/paymentservice"
)

// PaymentClient интерфейс клиента платежного процессора
type PaymentClient interface {
	CreateOrder(ctx context.Context, amount paymentservice.Amount) (*paymentservice.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*paymentservice.CaptureOrderResponse, error)
}

// OrderRepository интерфейс локального зеркала ордеров
type OrderRepository interface {
	Create(ctx context.Context, o *domain.PaymentOrder) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.PaymentOrder, error)
	MarkCaptured(ctx context.Context, orderID, payerEmail string, capturedAt time.Time) error
	MarkFailed(ctx context.Context, orderID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
