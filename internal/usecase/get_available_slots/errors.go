package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrCalendarUnavailable возвращается, когда календарный сервис
	// недоступен или ответил ошибкой. Запрос не ретраится.
	ErrCalendarUnavailable = errors.New("get_available_slots: calendar service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
