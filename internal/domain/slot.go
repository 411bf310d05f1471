package domain

import "github.com/Amir3629/vocal-booking-service/pkg/types"

// AvailableSlot доступное для бронирования временное окно на дату
type AvailableSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Duration возвращает длительность окна в минутах.
// Для некорректных границ возвращает 0.
func (s *AvailableSlot) Duration() int {
	if s.StartTime.IsZero() || s.EndTime.IsZero() || !s.StartTime.IsBefore(s.EndTime) {
		return 0
	}

	start, err1 := minutesOfDay(s.StartTime)
	end, err2 := minutesOfDay(s.EndTime)
	if err1 != nil || err2 != nil {
		return 0
	}

	return end - start
}

func minutesOfDay(t types.TimeString) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	s := t.String()
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + minutes, nil
}
