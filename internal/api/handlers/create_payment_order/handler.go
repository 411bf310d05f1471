package create_payment_order

import (
	"errors"
	"net/http"

	"github.com/Amir3629/vocal-booking-service/internal/api/handlers"
	"github.com/Amir3629/vocal-booking-service/internal/service/payments"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAmount      = "invalid amount, expected decimal string with two fraction digits"
	msgInvalidCurrency    = "invalid currency, expected ISO 4217 code"
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

// Handle POST /create-payment-order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /create-payment-order - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateOrder(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidAmount):
			h.logger.Warn("POST /create-payment-order - Invalid amount: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		case errors.Is(err, payments.ErrInvalidCurrency):
			h.logger.Warn("POST /create-payment-order - Invalid currency: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCurrency)

		case errors.Is(err, payments.ErrPaymentUnavailable), errors.Is(err, payments.ErrPaymentRejected):
			h.logger.Error("POST /create-payment-order - Processor failure: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /create-payment-order - Failed to create order: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /create-payment-order - Order created: order_id=%s, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
