package create_payment_order

import (
	"context"

	"github.com/Amir3629/vocal-booking-service/internal/service/payments/models"
)

type PaymentsService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
