package payments

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	orderRepo "github.com/Amir3629/vocal-booking-service/internal/infra/storage/order"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/paymentservice"
	"github.com/Amir3629/vocal-booking-service/internal/service/payments/models"
)

var (
	// amountPattern сумма: десятичная строка с ровно двумя знаками после точки
	amountPattern = regexp.MustCompile(`^\d+\.\d{2}$`)

	// currencyPattern код валюты по ISO 4217
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Deposit сконфигурированный депозит по умолчанию
type Deposit struct {
	Amount   string
	Currency string
}

// Service сервис платежных ордеров: создание ордера на депозит и его
// последующий capture со страницы оплаты. Между операциями сервис не держит
// никакого состояния кроме идентификатора ордера; владелец ордера - процессор.
type Service struct {
	paymentClient PaymentClient
	orderRepo     OrderRepository
	deposit       Deposit
	logger        Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentClient PaymentClient, orderRepository OrderRepository, deposit Deposit, logger Logger) *Service {
	return &Service{
		paymentClient: paymentClient,
		orderRepo:     orderRepository,
		deposit:       deposit,
		logger:        logger,
	}
}

// CreateOrder создает новый платежный ордер у процессора.
// Пустые сумма/валюта заменяются сконфигурированным депозитом.
// Возвращаемый статус отражает начальное состояние ордера у процессора,
// никогда не completed.
func (s *Service) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error) {
	amount := req.Amount
	if amount == "" {
		amount = s.deposit.Amount
	}
	currency := req.Currency
	if currency == "" {
		currency = s.deposit.Currency
	}

	if !amountPattern.MatchString(amount) {
		s.logger.Warn("CreateOrder: invalid amount %q", amount)
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if !currencyPattern.MatchString(currency) {
		s.logger.Warn("CreateOrder: invalid currency %q", currency)
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	order, err := s.paymentClient.CreateOrder(ctx, paymentservice.Amount{
		CurrencyCode: currency,
		Value:        amount,
	})
	if err != nil {
		s.logger.Error("CreateOrder: processor call failed: %v", err)
		return nil, s.mapClientError(err)
	}

	// Зеркалим ссылку на ордер; отказ зеркала логируем, но ордер уже создан
	// и должен быть возвращен вызывающему
	if err := s.orderRepo.Create(ctx, &domain.PaymentOrder{
		OrderID:  order.ID,
		Amount:   amount,
		Currency: currency,
		Status:   mapProcessorStatus(order.Status),
	}); err != nil {
		s.logger.Error("CreateOrder: failed to mirror order id=%s: %v", order.ID, err)
	}

	s.logger.Info("CreateOrder: order id=%s created, status=%s, amount=%s %s",
		order.ID, order.Status, amount, currency)

	return &models.OrderResponse{
		ID:         order.ID,
		Status:     string(mapProcessorStatus(order.Status)),
		ApproveURL: order.ApproveLink(),
	}, nil
}

// CaptureOrder финализирует платеж по ранее созданному ордеру.
// At-most-one успешный capture на ордер гарантирует процессор: повторный
// capture возвращает отказ, который пробрасывается как ErrPaymentRejected,
// а не проглатывается.
func (s *Service) CaptureOrder(ctx context.Context, orderID string) (*models.CaptureResponse, error) {
	s.logger.Info("CaptureOrder: capturing order id=%s", orderID)

	captured, err := s.paymentClient.CaptureOrder(ctx, orderID)
	if err != nil {
		s.logger.Error("CaptureOrder: processor call failed for order id=%s: %v", orderID, err)

		// Отказ процессора фиксируем в зеркале, но только если ордер там
		// еще не оплачен: повторный capture не должен портить запись
		// об успешном первом
		if errors.Is(err, paymentservice.ErrOrderRejected) {
			s.markMirrorFailed(ctx, orderID)
		}

		return nil, s.mapClientError(err)
	}

	details := captured.CaptureDetails()
	if details == nil {
		s.logger.Error("CaptureOrder: no capture details in processor response for order id=%s", orderID)
		return nil, fmt.Errorf("%w: processor response has no capture details", ErrInternal)
	}

	capturedAt, err := time.Parse(time.RFC3339, details.CreateTime)
	if err != nil {
		// Некорректная метка времени от процессора не отменяет сам факт оплаты
		s.logger.Warn("CaptureOrder: unparseable capture time %q for order id=%s", details.CreateTime, orderID)
		capturedAt = time.Now()
	}

	if err := s.orderRepo.MarkCaptured(ctx, orderID, captured.Payer.EmailAddress, capturedAt); err != nil {
		s.logger.Error("CaptureOrder: failed to update mirror for order id=%s: %v", orderID, err)
	}

	s.logger.Info("CaptureOrder: order id=%s captured, amount=%s %s, payer=%s",
		orderID, details.Amount.Value, details.Amount.CurrencyCode, captured.Payer.EmailAddress)

	return &models.CaptureResponse{
		ID:          captured.ID,
		Status:      string(domain.OrderStatusCompleted),
		Amount:      details.Amount.Value,
		Currency:    details.Amount.CurrencyCode,
		CaptureTime: capturedAt.Format(time.RFC3339),
		PayerEmail:  captured.Payer.EmailAddress,
	}, nil
}

// markMirrorFailed помечает ордер в зеркале неуспешным, если он не оплачен
func (s *Service) markMirrorFailed(ctx context.Context, orderID string) {
	mirrored, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Error("CaptureOrder: failed to read mirror for order id=%s: %v", orderID, err)
		}
		return
	}

	if mirrored.IsCaptured() {
		return
	}

	if err := s.orderRepo.MarkFailed(ctx, orderID); err != nil {
		s.logger.Error("CaptureOrder: failed to mark mirror failed for order id=%s: %v", orderID, err)
	}
}

// mapClientError конвертирует ошибки клиента процессора в ошибки сервиса
func (s *Service) mapClientError(err error) error {
	switch {
	case errors.Is(err, paymentservice.ErrOrderNotFound):
		return ErrOrderNotFound
	case errors.Is(err, paymentservice.ErrOrderRejected):
		return fmt.Errorf("%w: %v", ErrPaymentRejected, err)
	default:
		return fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}
}

// mapProcessorStatus конвертирует статус процессора в локальный статус ордера
func mapProcessorStatus(status string) domain.OrderStatus {
	switch status {
	case paymentservice.OrderStatusCreated:
		return domain.OrderStatusCreated
	case paymentservice.OrderStatusApproved:
		return domain.OrderStatusPending
	case paymentservice.OrderStatusCompleted:
		return domain.OrderStatusCompleted
	case paymentservice.OrderStatusVoided:
		return domain.OrderStatusFailed
	default:
		return domain.OrderStatusPending
	}
}
