package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	bookingRepo "github.com/Amir3629/vocal-booking-service/internal/infra/storage/booking"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/calendarservice"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/mailservice"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/paymentservice"
)

// Deposit параметры депозита, передаются из конфигурации
type Deposit struct {
	Amount         string // "30.00"
	Currency       string // "EUR"
	PaymentPageURL string // база для ссылки оплаты, если процессор не вернул approve-ссылку
}

// UseCase последовательность бронирования с депозитом:
// валидация -> захват idempotency key -> событие календаря -> платежный ордер ->
// письмо-подтверждение -> фиксация локальной записи.
//
// Шаги с побочными эффектами образуют сагу: при отказе шага уже выполненные
// внешние эффекты компенсируются в обратном порядке (удаление события,
// void ордера). Компенсации best-effort - их собственные отказы логируются,
// исходная ошибка возвращается вызывающему в любом случае, так что частичный
// успех никогда не выглядит как успех.
type UseCase struct {
	bookingRepo    BookingRepository
	orderRepo      OrderRepository
	calendarClient CalendarClient
	paymentClient  PaymentClient
	mailClient     MailClient
	txManager      TransactionManager
	deposit        Deposit
	keyGen         KeyGenerator
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	orderRepository OrderRepository,
	calendarClient CalendarClient,
	paymentClient PaymentClient,
	mailClient MailClient,
	txManager TransactionManager,
	deposit Deposit,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepository,
		orderRepo:      orderRepository,
		calendarClient: calendarClient,
		paymentClient:  paymentClient,
		mailClient:     mailClient,
		txManager:      txManager,
		deposit:        deposit,
		keyGen:         uuid.NewString,
		logger:         logger,
	}
}

// Execute выполняет последовательность бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, service=%s, date=%s, time=%s",
		req.Email, req.ServiceType, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Ключ идемпотентности: клиентский или серверный
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uc.keyGen()
	}

	// 3. Захватываем ключ в сериализуемой транзакции до любых внешних вызовов.
	// Повтор подтвержденного бронирования возвращает сохраненные идентификаторы,
	// гонка двух одинаковых отправок дает ErrDuplicateSubmission.
	var (
		record *domain.Booking
		replay *Response
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByIdempotencyKey(txCtx, req.IdempotencyKey)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: failed to check idempotency key: %v", ErrInternal, err)
		}

		if existing != nil {
			if existing.IsConfirmed() && existing.EventID != nil && existing.OrderID != nil {
				replay = &Response{
					BookingID:   existing.ID,
					EventID:     *existing.EventID,
					OrderID:     *existing.OrderID,
					PaymentLink: uc.paymentLink("", *existing.OrderID),
				}
				return nil
			}
			return ErrDuplicateSubmission
		}

		record, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			IdempotencyKey: req.IdempotencyKey,
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Message:        req.Message,
			BookingDate:    req.Date,
			StartTime:      req.StartTime,
			ServiceType:    req.ServiceType,
			Status:         domain.StatusPending,
			EventType:      req.EventType,
			SkillLevel:     req.SkillLevel,
			WorkshopTheme:  req.WorkshopTheme,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateKey) {
				return ErrDuplicateSubmission
			}
			return fmt.Errorf("%w: failed to create booking record: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrDuplicateSubmission) {
			uc.logger.Warn("CreateBooking: duplicate submission, key=%s", req.IdempotencyKey)
		} else {
			uc.logger.Error("CreateBooking: failed to claim idempotency key=%s: %v", req.IdempotencyKey, err)
		}
		return nil, err
	}

	if replay != nil {
		uc.logger.Info("CreateBooking: replaying confirmed booking id=%d for key=%s",
			replay.BookingID, req.IdempotencyKey)
		return replay, nil
	}

	// 4. Создаем предварительное (неоплаченное) событие календаря.
	// Отказ здесь фатален для всей последовательности: ни ордер, ни письмо
	// не создаются.
	reservation, err := uc.calendarClient.CreateReservation(ctx, calendarservice.ReservationRequest{
		Date:        req.Date.Format(domain.DateFormat),
		StartTime:   req.StartTime.String(),
		Summary:     fmt.Sprintf("%s: %s", req.ServiceType, req.Name),
		Description: buildDescription(req),
		Attendee:    req.Email,
		Tentative:   true,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: reservation failed for booking id=%d: %v", record.ID, err)
		uc.markFailed(ctx, record.ID)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	uc.logger.Info("CreateBooking: reservation created, booking id=%d, event id=%s", record.ID, reservation.ID)

	// 5. Создаем ордер на депозит. При отказе компенсируем событие календаря.
	order, err := uc.paymentClient.CreateOrder(ctx, paymentservice.Amount{
		CurrencyCode: uc.deposit.Currency,
		Value:        uc.deposit.Amount,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: order creation failed for booking id=%d: %v", record.ID, err)
		uc.compensateReservation(ctx, record.ID, reservation.ID)
		uc.markFailed(ctx, record.ID)
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	uc.logger.Info("CreateBooking: order created, booking id=%d, order id=%s, status=%s",
		record.ID, order.ID, order.Status)

	// Зеркалим ссылку на ордер; отказ зеркала не рушит последовательность
	if err := uc.orderRepo.Create(ctx, &domain.PaymentOrder{
		OrderID:  order.ID,
		Amount:   uc.deposit.Amount,
		Currency: uc.deposit.Currency,
		Status:   domain.OrderStatusCreated,
	}); err != nil {
		uc.logger.Error("CreateBooking: failed to mirror order id=%s: %v", order.ID, err)
	}

	// 6. Отправляем письмо-подтверждение со ссылкой на оплату.
	// При отказе компенсируем и ордер, и событие календаря.
	paymentLink := uc.paymentLink(order.ApproveLink(), order.ID)

	err = uc.mailClient.SendConfirmation(ctx, req.Email, req.Name, mailservice.ConfirmationData{
		Name:        req.Name,
		Date:        req.Date.Format(domain.DateFormat),
		Time:        req.StartTime.String(),
		PaymentLink: paymentLink,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: confirmation delivery failed for booking id=%d: %v", record.ID, err)
		uc.compensateOrder(ctx, record.ID, order.ID)
		uc.compensateReservation(ctx, record.ID, reservation.ID)
		uc.markFailed(ctx, record.ID)
		return nil, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	// 7. Фиксируем локальную запись со ссылками на внешние сущности
	if err := uc.bookingRepo.SetConfirmed(ctx, record.ID, reservation.ID, order.ID); err != nil {
		// Внешние эффекты уже существуют и письмо отправлено - не компенсируем,
		// но вызывающему успех не сообщаем
		uc.logger.Error("CreateBooking: failed to confirm booking id=%d (event=%s, order=%s): %v",
			record.ID, reservation.ID, order.ID, err)
		return nil, fmt.Errorf("%w: failed to confirm booking record: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d confirmed, event=%s, order=%s",
		record.ID, reservation.ID, order.ID)

	return &Response{
		BookingID:   record.ID,
		EventID:     reservation.ID,
		OrderID:     order.ID,
		PaymentLink: paymentLink,
	}, nil
}

// compensateReservation удаляет событие календаря (best-effort)
func (uc *UseCase) compensateReservation(ctx context.Context, bookingID int64, eventID string) {
	if err := uc.calendarClient.DeleteReservation(ctx, eventID); err != nil {
		uc.logger.Error("CreateBooking: compensation failed, orphaned event id=%s (booking id=%d): %v",
			eventID, bookingID, err)
		return
	}
	uc.logger.Info("CreateBooking: compensated reservation, event id=%s (booking id=%d)", eventID, bookingID)
}

// compensateOrder аннулирует платежный ордер (best-effort)
func (uc *UseCase) compensateOrder(ctx context.Context, bookingID int64, orderID string) {
	if err := uc.paymentClient.VoidOrder(ctx, orderID); err != nil {
		uc.logger.Error("CreateBooking: compensation failed, orphaned order id=%s (booking id=%d): %v",
			orderID, bookingID, err)
		return
	}
	if err := uc.orderRepo.MarkFailed(ctx, orderID); err != nil {
		uc.logger.Error("CreateBooking: failed to mark mirrored order id=%s as failed: %v", orderID, err)
	}
	uc.logger.Info("CreateBooking: compensated order id=%s (booking id=%d)", orderID, bookingID)
}

// markFailed помечает локальную запись неуспешной (best-effort)
func (uc *UseCase) markFailed(ctx context.Context, bookingID int64) {
	if err := uc.bookingRepo.SetFailed(ctx, bookingID); err != nil {
		uc.logger.Error("CreateBooking: failed to mark booking id=%d as failed: %v", bookingID, err)
	}
}

// paymentLink возвращает approve-ссылку процессора, а при ее отсутствии
// строит ссылку на собственную платежную страницу
func (uc *UseCase) paymentLink(approveLink, orderID string) string {
	if approveLink != "" {
		return approveLink
	}
	return fmt.Sprintf("%s?orderId=%s", uc.deposit.PaymentPageURL, orderID)
}

// buildDescription собирает описание события календаря из опциональных полей
func buildDescription(req *Request) string {
	desc := ""
	if req.EventType != nil {
		desc += fmt.Sprintf("Event type: %s\n", *req.EventType)
	}
	if req.SkillLevel != nil {
		desc += fmt.Sprintf("Skill level: %s\n", *req.SkillLevel)
	}
	if req.WorkshopTheme != nil {
		desc += fmt.Sprintf("Workshop theme: %s\n", *req.WorkshopTheme)
	}
	if req.Message != nil {
		desc += *req.Message
	}
	return desc
}
