package create_booking

import (
	"fmt"
	"strings"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Отсутствие обязательного поля - ErrMissingRequiredFields,
// некорректное значение - ErrInvalidInput.
// Никакие внешние сервисы на этом этапе не вызываются.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrMissingRequiredFields)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrMissingRequiredFields)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingRequiredFields)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrMissingRequiredFields)
	}

	if !req.TermsAccepted {
		return fmt.Errorf("%w: terms acceptance is required", ErrMissingRequiredFields)
	}

	if !req.PrivacyAccepted {
		return fmt.Errorf("%w: privacy acceptance is required", ErrMissingRequiredFields)
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if len(req.Email) > domain.MaxEmailLength || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if req.Phone != nil && len(*req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	return nil
}
