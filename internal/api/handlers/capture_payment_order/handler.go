package capture_payment_order

import (
	"errors"
	"net/http"

	"github.com/Amir3629/vocal-booking-service/internal/api/handlers"
	"github.com/Amir3629/vocal-booking-service/internal/service/payments"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingOrderID     = "Missing orderId"
	msgOrderNotFound      = "order not found"
	msgPaymentRejected    = "payment was rejected by the processor"
	msgPaymentUnavailable = "payment service unavailable"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /capture-payment-order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CaptureOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /capture-payment-order - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.OrderID == "" {
		h.logger.Warn("POST /capture-payment-order - Missing orderId")
		handlers.RespondBadRequest(w, msgMissingOrderID)
		return
	}

	result, err := h.service.CaptureOrder(r.Context(), req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrOrderNotFound):
			h.logger.Warn("POST /capture-payment-order - Order not found: order_id=%s", req.OrderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, payments.ErrPaymentRejected):
			// Сюда попадает и повторный capture уже оплаченного ордера -
			// отказ процессора пробрасывается, а не маскируется успехом
			h.logger.Warn("POST /capture-payment-order - Rejected: order_id=%s, error=%v", req.OrderID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentRejected)

		case errors.Is(err, payments.ErrPaymentUnavailable):
			h.logger.Error("POST /capture-payment-order - Processor unavailable: order_id=%s, error=%v", req.OrderID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /capture-payment-order - Failed to capture: order_id=%s, error=%v", req.OrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /capture-payment-order - Captured: order_id=%s, amount=%s %s, payer=%s",
		result.ID, result.Amount, result.Currency, result.PayerEmail)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
