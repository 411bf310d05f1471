package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/Amir3629/vocal-booking-service/internal/api/handlers"
	"github.com/Amir3629/vocal-booking-service/internal/domain"
	getAvailableSlots "github.com/Amir3629/vocal-booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "Missing date parameter"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgCalendarUnavailable = "calendar service unavailable"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /booking?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Без даты запрос отклоняется до обращения к календарю
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		h.logger.Warn("GET /booking - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /booking - Invalid date %q: %v", dateParam, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCalendarUnavailable):
			h.logger.Error("GET /booking - Calendar unavailable: date=%s, error=%v", dateParam, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCalendarUnavailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /booking - Invalid input: date=%s, error=%v", dateParam, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /booking - Failed to get slots: date=%s, error=%v", dateParam, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking - Returned %d slots for date=%s", len(result.Slots), dateParam)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
