package get_available_slots

import (
	"time"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
)

// Request модель запроса на получение доступных окон
type Request struct {
	Date time.Time // Дата, на которую запрашиваются окна (без времени)
}

// Response модель ответа со списком доступных окон.
// Пустой список - валидный результат (свободных окон нет).
type Response struct {
	Date  time.Time
	Slots []domain.AvailableSlot
}
