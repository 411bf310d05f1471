package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного процессора.
// Аутентификация по схеме OAuth2 client credentials: токен запрашивается
// лениво и кешируется до истечения срока действия.
//
// Владельцем ордеров остается процессор. В частности, at-most-one успешный
// capture на ордер гарантирует процессор, а не этот клиент: повторный capture
// уже захваченного ордера возвращает ErrOrderRejected.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	log          Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient создает новый экземпляр клиента платежного процессора
func NewClient(baseURL, clientID, clientSecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder создает ордер на депозит с указанной суммой.
// Возвращаемый статус - начальное состояние ордера у процессора (CREATED),
// не финальное.
func (c *Client) CreateOrder(ctx context.Context, amount Amount) (*Order, error) {
	payload, err := json.Marshal(orderRequest{
		Intent:        "CAPTURE",
		PurchaseUnits: []purchaseUnit{{Amount: amount}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	var order Order
	if err := c.doAuthorized(ctx, http.MethodPost, "/v2/checkout/orders", payload, &order); err != nil {
		return nil, err
	}

	if order.ID == "" {
		return nil, fmt.Errorf("%w: empty order id in response", ErrInvalidResponse)
	}

	return &order, nil
}

// CaptureOrder финализирует платеж по ранее созданному ордеру.
// Несуществующий ордер дает ErrOrderNotFound, повторный capture или отказ
// процессора - ErrOrderRejected.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*CaptureOrderResponse, error) {
	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", url.PathEscape(orderID))

	var captured CaptureOrderResponse
	if err := c.doAuthorized(ctx, http.MethodPost, path, nil, &captured); err != nil {
		return nil, err
	}

	if captured.Status != OrderStatusCompleted {
		return nil, fmt.Errorf("%w: capture finished with status %s", ErrOrderRejected, captured.Status)
	}

	return &captured, nil
}

// VoidOrder аннулирует ранее созданный ордер.
// Используется как компенсация, когда отправка подтверждения не удалась.
func (c *Client) VoidOrder(ctx context.Context, orderID string) error {
	path := fmt.Sprintf("/v2/checkout/orders/%s/void", url.PathEscape(orderID))

	if err := c.doAuthorized(ctx, http.MethodPost, path, nil, nil); err != nil {
		// Отсутствующий ордер аннулировать нечего - компенсация выполнена
		if strings.Contains(err.Error(), ErrOrderNotFound.Error()) {
			c.log.Warn("VoidOrder: order id=%s not found, treating as already voided", orderID)
			return nil
		}
		return err
	}

	return nil
}

// doAuthorized выполняет запрос с bearer-токеном.
// При 401 токен сбрасывается и запрос повторяется один раз.
func (c *Client) doAuthorized(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := c.getToken(ctx)
		if err != nil {
			return err
		}

		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
		}

		// Обработка статус-кодов
		switch {
		case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusNoContent:
			defer resp.Body.Close()
			if out == nil {
				return nil
			}
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
			}
			return nil

		case resp.StatusCode == http.StatusUnauthorized:
			// Токен истек - сбрасываем кеш и повторяем
			resp.Body.Close()
			c.invalidateToken()
			continue

		case resp.StatusCode == http.StatusNotFound:
			resp.Body.Close()
			return ErrOrderNotFound

		case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
			procErr := decodeError(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("%w: %s", ErrOrderRejected, procErr)

		default:
			respBody, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(respBody))
		}
	}

	return ErrUnauthorized
}

// getToken возвращает закешированный токен или запрашивает новый
func (c *Client) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create token request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute token request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: token request status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: failed to decode token response: %v", ErrInvalidResponse, err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrInvalidResponse)
	}

	c.accessToken = token.AccessToken
	// Обновляем токен за минуту до истечения
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute)

	return c.accessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
}

func decodeError(r io.Reader) string {
	var procErr ErrorResponse
	if err := json.NewDecoder(r).Decode(&procErr); err != nil {
		return "unparseable processor error"
	}
	if procErr.Message != "" {
		return fmt.Sprintf("%s: %s", procErr.Name, procErr.Message)
	}
	return procErr.Name
}
