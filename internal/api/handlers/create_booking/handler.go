package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Amir3629/vocal-booking-service/internal/api/handlers"
	createBooking "github.com/Amir3629/vocal-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgMissingFields       = "Missing required fields"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime         = "invalid time format, expected HH:MM"
	msgInvalidBookingData  = "invalid booking data"
	msgDuplicateSubmission = "booking with this idempotency key is already being processed"
	msgCalendarUnavailable = "calendar service unavailable"
	msgPaymentUnavailable  = "payment service unavailable"
	msgConfirmationFailed  = "failed to send booking confirmation"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обязательные поля проверяются до парсинга даты/времени,
	// чтобы их отсутствие давало единое сообщение
	if !req.HasMandatoryFields() {
		h.logger.Warn("POST /booking - Missing required fields: email=%s", req.Email)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /booking - Failed to parse request: %v", err)
		if strings.Contains(err.Error(), "parsing time") {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrMissingRequiredFields):
			h.logger.Warn("POST /booking - Missing required fields: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidBookingData)

		case errors.Is(err, createBooking.ErrDuplicateSubmission):
			h.logger.Warn("POST /booking - Duplicate submission: email=%s, key=%s", req.Email, req.IdempotencyKey)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSubmission)

		case errors.Is(err, createBooking.ErrCalendarUnavailable):
			h.logger.Error("POST /booking - Calendar unavailable: email=%s, error=%v", req.Email, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCalendarUnavailable)

		case errors.Is(err, createBooking.ErrPaymentUnavailable):
			h.logger.Error("POST /booking - Payment unavailable: email=%s, error=%v", req.Email, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		case errors.Is(err, createBooking.ErrNotificationFailed):
			h.logger.Error("POST /booking - Confirmation delivery failed: email=%s, error=%v", req.Email, err)
			handlers.RespondError(w, http.StatusBadGateway, msgConfirmationFailed)

		default:
			h.logger.Error("POST /booking - Failed to create booking: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking - Booking created: booking_id=%d, event_id=%s, order_id=%s",
		result.BookingID, result.EventID, result.OrderID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
