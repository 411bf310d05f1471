package calendarservice

import "errors"

var (
	// ErrUnavailable возвращается, когда календарный сервис недоступен
	// (транспортная ошибка, timeout или 5xx)
	ErrUnavailable = errors.New("calendarservice client: service unavailable")

	// ErrUnauthorized возвращается при ошибке авторизации (401/403)
	ErrUnauthorized = errors.New("calendarservice client: unauthorized")

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("calendarservice client: event not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendarservice client: invalid response")
)
