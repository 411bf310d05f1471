package paymentservice

import "errors"

var (
	// ErrUnavailable возвращается, когда процессор недоступен
	// (транспортная ошибка, timeout или 5xx)
	ErrUnavailable = errors.New("paymentservice client: service unavailable")

	// ErrUnauthorized возвращается, когда аутентификация у процессора не прошла
	ErrUnauthorized = errors.New("paymentservice client: authentication failed")

	// ErrOrderNotFound возвращается, когда ордер не существует
	ErrOrderNotFound = errors.New("paymentservice client: order not found")

	// ErrOrderRejected возвращается, когда процессор отклонил операцию
	// (ордер уже захвачен, платеж отклонен и т.п.)
	ErrOrderRejected = errors.New("paymentservice client: order rejected by processor")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от процессора
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)
