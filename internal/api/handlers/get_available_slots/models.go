package get_available_slots

import (
	"github.com/Amir3629/vocal-booking-service/internal/domain"
	getAvailableSlots "github.com/Amir3629/vocal-booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model of a single available time window
type SlotResponse struct {
	StartTime string `json:"startTime"` // "14:00"
	EndTime   string `json:"endTime"`   // "15:00"
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}

	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
