package payments

import "errors"

var (
	// ErrInvalidAmount возвращается при некорректном формате суммы
	// (ожидается десятичная строка с двумя знаками, например "30.00")
	ErrInvalidAmount = errors.New("payments: invalid amount format")

	// ErrInvalidCurrency возвращается при некорректном коде валюты
	ErrInvalidCurrency = errors.New("payments: invalid currency code")

	// ErrOrderNotFound возвращается, когда ордер не существует у процессора
	ErrOrderNotFound = errors.New("payments: order not found")

	// ErrPaymentRejected возвращается, когда процессор отклонил операцию
	// (повторный capture уже оплаченного ордера, отказ платежа)
	ErrPaymentRejected = errors.New("payments: rejected by processor")

	// ErrPaymentUnavailable возвращается, когда процессор недоступен
	ErrPaymentUnavailable = errors.New("payments: payment service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments: internal error")
)
