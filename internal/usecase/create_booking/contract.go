package create_booking

import (
	"context"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/calendarservice"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/mailservice"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/paymentservice"
)

// BookingRepository интерфейс локального реестра бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
	SetConfirmed(ctx context.Context, id int64, eventID, orderID string) error
	SetFailed(ctx context.Context, id int64) error
}

// OrderRepository интерфейс локального зеркала платежных ордеров
type OrderRepository interface {
	Create(ctx context.Context, o *domain.PaymentOrder) error
	MarkFailed(ctx context.Context, orderID string) error
}

// CalendarClient интерфейс клиента календарного сервиса
type CalendarClient interface {
	CreateReservation(ctx context.Context, reservation calendarservice.ReservationRequest) (*calendarservice.Reservation, error)
	DeleteReservation(ctx context.Context, eventID string) error
}

// PaymentClient интерфейс клиента платежного процессора
type PaymentClient interface {
	CreateOrder(ctx context.Context, amount paymentservice.Amount) (*paymentservice.Order, error)
	VoidOrder(ctx context.Context, orderID string) error
}

// MailClient интерфейс клиента почтового сервиса
type MailClient interface {
	SendConfirmation(ctx context.Context, toEmail, toName string, data mailservice.ConfirmationData) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// KeyGenerator генерирует ключ идемпотентности, когда клиент его не прислал
type KeyGenerator func() string

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
