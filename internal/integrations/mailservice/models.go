package mailservice

// Address адрес получателя или отправителя
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// ConfirmationData подстановки шаблона письма-подтверждения
type ConfirmationData struct {
	Name        string `json:"name"`
	Date        string `json:"date"` // "2025-03-01"
	Time        string `json:"time"` // "14:00"
	PaymentLink string `json:"paymentLink"`
}

// sendRequest запрос на отправку письма
type sendRequest struct {
	From          Address          `json:"from"`
	To            []Address        `json:"to"`
	Subject       string           `json:"subject"`
	TemplateID    string           `json:"template_id"`
	Substitutions ConfirmationData `json:"substitutions"`
}

// ErrorResponse модель ошибки почтового сервиса
type ErrorResponse struct {
	Message string `json:"message"`
}
