package models

// CreateOrderRequest запрос на создание ордера.
// Пустые поля заполняются сконфигурированным депозитом.
type CreateOrderRequest struct {
	Amount   string // "30.00"
	Currency string // ISO 4217
}

// OrderResponse созданный ордер
type OrderResponse struct {
	ID         string // идентификатор ордера у процессора
	Status     string // локальный статус: created/pending/completed/failed
	ApproveURL string // ссылка на страницу подтверждения платежа
}

// CaptureResponse результат финализации платежа
type CaptureResponse struct {
	ID          string // идентификатор ордера
	Status      string // локальный статус после capture
	Amount      string // списанная сумма
	Currency    string // валюта списания
	CaptureTime string // RFC3339
	PayerEmail  string // email плательщика
}
