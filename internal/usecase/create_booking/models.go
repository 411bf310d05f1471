package create_booking

import (
	"time"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	"github.com/Amir3629/vocal-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	IdempotencyKey string             // Ключ идемпотентности (опционально, генерируется при отсутствии)
	Name           string             // Имя клиента
	Email          string             // Email клиента
	Phone          *string            // Телефон (опционально)
	Message        *string            // Сообщение клиента (опционально)
	Date           time.Time          // Дата бронирования (без времени)
	StartTime      types.TimeString   // Время начала (например, "14:00")
	ServiceType    domain.ServiceType // Тип услуги

	// Опциональные структурированные поля, зависят от типа услуги
	EventType     *string
	SkillLevel    *string
	WorkshopTheme *string

	TermsAccepted   bool // Согласие с условиями (обязательно)
	PrivacyAccepted bool // Согласие с политикой конфиденциальности (обязательно)
}

// Response модель ответа с результатом бронирования
type Response struct {
	BookingID   int64  // ID записи в локальном реестре
	EventID     string // ID события во внешнем календаре
	OrderID     string // ID платежного ордера у процессора
	PaymentLink string // Ссылка на оплату депозита
}
