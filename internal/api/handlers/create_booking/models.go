package create_booking

import (
	"fmt"
	"time"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	createBooking "github.com/Amir3629/vocal-booking-service/internal/usecase/create_booking"
	"github.com/Amir3629/vocal-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string  `json:"date"` // "2025-03-01"
	Time        string  `json:"time"` // "14:00"
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Message     *string `json:"message,omitempty"`
	ServiceType string  `json:"serviceType"`

	EventType     *string `json:"eventType,omitempty"`
	SkillLevel    *string `json:"skillLevel,omitempty"`
	WorkshopTheme *string `json:"workshopTheme,omitempty"`

	TermsAccepted   bool `json:"termsAccepted"`
	PrivacyAccepted bool `json:"privacyAccepted"`

	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Success     bool   `json:"success"`
	BookingID   int64  `json:"bookingId"`
	EventID     string `json:"eventId"`
	OrderID     string `json:"orderId"`
	PaymentLink string `json:"paymentLink"`
}

// HasMandatoryFields проверяет наличие всех обязательных полей до парсинга
func (r *CreateBookingRequest) HasMandatoryFields() bool {
	return r.Name != "" &&
		r.Email != "" &&
		r.Date != "" &&
		r.Time != "" &&
		r.TermsAccepted &&
		r.PrivacyAccepted
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("parsing time: %w", err)
	}

	return &createBooking.Request{
		IdempotencyKey:  r.IdempotencyKey,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Message:         r.Message,
		Date:            date,
		StartTime:       startTime,
		ServiceType:     domain.ServiceType(r.ServiceType),
		EventType:       r.EventType,
		SkillLevel:      r.SkillLevel,
		WorkshopTheme:   r.WorkshopTheme,
		TermsAccepted:   r.TermsAccepted,
		PrivacyAccepted: r.PrivacyAccepted,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Success:     true,
		BookingID:   resp.BookingID,
		EventID:     resp.EventID,
		OrderID:     resp.OrderID,
		PaymentLink: resp.PaymentLink,
	}
}
