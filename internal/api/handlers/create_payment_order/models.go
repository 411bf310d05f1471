package create_payment_order

import "github.com/Amir3629/vocal-booking-service/internal/service/payments/models"

// CreateOrderRequest HTTP request model.
// Пустые поля заменяются сконфигурированным депозитом.
type CreateOrderRequest struct {
	Amount   string `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	ApproveURL string `json:"approveUrl,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateOrderRequest) ToServiceRequest() *models.CreateOrderRequest {
	return &models.CreateOrderRequest{
		Amount:   r.Amount,
		Currency: r.Currency,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.OrderResponse) *OrderResponse {
	return &OrderResponse{
		ID:         resp.ID,
		Status:     resp.Status,
		ApproveURL: resp.ApproveURL,
	}
}
