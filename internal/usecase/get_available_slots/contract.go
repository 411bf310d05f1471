package get_available_slots

import (
	"context"

	"github.com/Amir3629/vocal-booking-service/internal/integrations/calendarservice"
)

// CalendarClient интерфейс клиента календарного сервиса
type CalendarClient interface {
	GetAvailableSlots(ctx context.Context, date string) ([]calendarservice.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
