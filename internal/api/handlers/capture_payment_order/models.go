package capture_payment_order

import "github.com/Amir3629/vocal-booking-service/internal/service/payments/models"

// CaptureOrderRequest HTTP request model
type CaptureOrderRequest struct {
	OrderID string `json:"orderId"`
}

// CaptureResponse HTTP response model
type CaptureResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	CaptureTime string `json:"captureTime"`
	PayerEmail  string `json:"payerEmail"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.CaptureResponse) *CaptureResponse {
	return &CaptureResponse{
		ID:          resp.ID,
		Status:      resp.Status,
		Amount:      resp.Amount,
		Currency:    resp.Currency,
		CaptureTime: resp.CaptureTime,
		PayerEmail:  resp.PayerEmail,
	}
}
