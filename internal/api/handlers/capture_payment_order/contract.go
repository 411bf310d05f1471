package capture_payment_order

import (
	"context"

	"github.com/Amir3629/vocal-booking-service/internal/service/payments/models"
)

type PaymentsService interface {
	CaptureOrder(ctx context.Context, orderID string) (*models.CaptureResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
