package domain

import "time"

// OrderStatus статус платежного ордера в локальном реестре
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// PaymentOrder локальное отражение ордера платежного процессора.
// Владелец ордера - процессор; запись создается при создании ордера
// и меняет статус только через операцию capture (или void при компенсации).
type PaymentOrder struct {
	OrderID    string // идентификатор процессора, opaque
	Amount     string // десятичная строка с двумя знаками, например "30.00"
	Currency   string // ISO 4217
	Status     OrderStatus
	PayerEmail *string
	CreatedAt  time.Time
	CapturedAt *time.Time
}

// IsCaptured возвращает true, если депозит успешно списан
func (o *PaymentOrder) IsCaptured() bool {
	return o.Status == OrderStatusCompleted
}
