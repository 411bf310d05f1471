package calendarservice

// Slot временное окно, доступное для бронирования
type Slot struct {
	StartTime string `json:"startTime"` // "14:00"
	EndTime   string `json:"endTime"`   // "15:00"
}

// SlotsResponse ответ календарного сервиса со списком окон на дату
type SlotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// ReservationRequest запрос на создание предварительного (неоплаченного) события
type ReservationRequest struct {
	Date        string `json:"date"`      // "2025-03-01"
	StartTime   string `json:"startTime"` // "14:00"
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Attendee    string `json:"attendee"` // email клиента
	Tentative   bool   `json:"tentative"`
}

// Reservation созданное событие календаря
type Reservation struct {
	ID string `json:"id"`
}

// ErrorResponse модель ошибки календарного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
