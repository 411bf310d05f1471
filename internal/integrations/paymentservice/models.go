package paymentservice

// Процессорные статусы ордера
const (
	OrderStatusCreated   = "CREATED"
	OrderStatusApproved  = "APPROVED"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusVoided    = "VOIDED"
)

// Amount денежная сумма процессора: десятичная строка с двумя знаками
// и код валюты по ISO 4217
type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// purchaseUnit единица заказа в запросе на создание ордера
type purchaseUnit struct {
	Amount Amount `json:"amount"`
}

// orderRequest запрос на создание ордера
type orderRequest struct {
	Intent        string         `json:"intent"` // всегда "CAPTURE"
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

// Link HATEOAS-ссылка в ответе процессора
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// Order созданный ордер
type Order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []Link `json:"links"`
}

// ApproveLink возвращает ссылку на страницу подтверждения платежа
// или пустую строку, если процессор ее не вернул
func (o *Order) ApproveLink() string {
	for _, link := range o.Links {
		if link.Rel == "approve" {
			return link.Href
		}
	}
	return ""
}

// Capture информация о списании средств
type Capture struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Amount     Amount `json:"amount"`
	CreateTime string `json:"create_time"` // RFC3339
}

// capturePayments обертка над списком captures
type capturePayments struct {
	Captures []Capture `json:"captures"`
}

// capturePurchaseUnit единица заказа в ответе на capture
type capturePurchaseUnit struct {
	Payments capturePayments `json:"payments"`
}

// Payer плательщик
type Payer struct {
	EmailAddress string `json:"email_address"`
}

// CaptureOrderResponse ответ процессора на capture ордера
type CaptureOrderResponse struct {
	ID            string                `json:"id"`
	Status        string                `json:"status"`
	PurchaseUnits []capturePurchaseUnit `json:"purchase_units"`
	Payer         Payer                 `json:"payer"`
}

// CaptureDetails возвращает данные первого capture или nil, если их нет
func (r *CaptureOrderResponse) CaptureDetails() *Capture {
	for _, unit := range r.PurchaseUnits {
		if len(unit.Payments.Captures) > 0 {
			return &unit.Payments.Captures[0]
		}
	}
	return nil
}

// tokenResponse ответ на запрос OAuth2-токена
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // секунды
}

// ErrorResponse модель ошибки процессора
type ErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
