package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// confirmationTemplateID шаблон письма-подтверждения бронирования
const confirmationTemplateID = "booking-confirmation"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент почтового сервиса
type Client struct {
	baseURL    string
	apiKey     string
	from       Address
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента почтового сервиса
func NewClient(baseURL, apiKey, fromEmail, fromName string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    Address{Email: fromEmail, Name: fromName},
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendConfirmation отправляет письмо-подтверждение бронирования со ссылкой
// на оплату депозита. Это последний шаг последовательности бронирования.
func (c *Client) SendConfirmation(ctx context.Context, toEmail, toName string, data ConfirmationData) error {
	payload, err := json.Marshal(sendRequest{
		From:          c.from,
		To:            []Address{{Email: toEmail, Name: toName}},
		Subject:       fmt.Sprintf("Booking confirmation for %s at %s", data.Date, data.Time),
		TemplateID:    confirmationTemplateID,
		Substitutions: data,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/mail/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(body))
	}
}
