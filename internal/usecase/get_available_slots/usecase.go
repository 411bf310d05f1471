package get_available_slots

import (
	"context"
	"fmt"
	"sort"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	"github.com/Amir3629/vocal-booking-service/pkg/types"
)

// UseCase use case для получения доступных временных окон на дату.
// Источник данных - внешний календарный сервис; локально окна не считаются.
type UseCase struct {
	calendarClient CalendarClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendarClient CalendarClient, logger Logger) *UseCase {
	return &UseCase{
		calendarClient: calendarClient,
		logger:         logger,
	}
}

// Execute возвращает упорядоченный список доступных окон на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Запрашиваем окна у календарного сервиса
	slots, err := uc.calendarClient.GetAvailableSlots(ctx, req.Date.Format(domain.DateFormat))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: calendar query failed for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	// 3. Конвертируем и сортируем по времени начала.
	// Окна с некорректным временем пропускаем.
	result := make([]domain.AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		startTime, err := types.NewTimeStringFromString(slot.StartTime)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: skipping slot with invalid start time %q", slot.StartTime)
			continue
		}

		endTime, err := types.NewTimeStringFromString(slot.EndTime)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: skipping slot with invalid end time %q", slot.EndTime)
			continue
		}

		result = append(result, domain.AvailableSlot{
			StartTime: startTime,
			EndTime:   endTime,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	uc.logger.Info("GetAvailableSlots: date=%s, %d slots available",
		req.Date.Format(domain.DateFormat), len(result))

	return &Response{
		Date:  req.Date,
		Slots: result,
	}, nil
}
