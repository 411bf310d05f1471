package domain

import (
	"time"

	"github.com/Amir3629/vocal-booking-service/pkg/types"
)

// ServiceType тип услуги (закрытый набор)
type ServiceType string

const (
	ServiceSingingLesson       ServiceType = "singing-lesson"
	ServiceVocalCoaching       ServiceType = "vocal-coaching"
	ServiceProfessionalSinging ServiceType = "professional-singing"
)

// IsValid возвращает true, если тип услуги входит в закрытый набор
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceSingingLesson, ServiceVocalCoaching, ServiceProfessionalSinging:
		return true
	default:
		return false
	}
}

// BookingStatus статус записи о бронировании
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusFailed    BookingStatus = "failed"
)

// Booking запись о бронировании в локальном реестре.
// Внешние сервисы остаются владельцами события календаря и платежного ордера -
// здесь хранятся только их opaque-идентификаторы (EventID, OrderID).
type Booking struct {
	ID             int64
	IdempotencyKey string
	Name           string
	Email          string
	Phone          *string
	Message        *string
	BookingDate    time.Time
	StartTime      types.TimeString
	ServiceType    ServiceType
	Status         BookingStatus

	// Опциональные структурированные поля (зависят от типа услуги)
	EventType     *string
	SkillLevel    *string
	WorkshopTheme *string

	// Ссылки на внешние сущности, заполняются после успешной саги
	EventID *string
	OrderID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed возвращает true, если бронирование прошло всю последовательность
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsPending возвращает true, если последовательность еще выполняется
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}
