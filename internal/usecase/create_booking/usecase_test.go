package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	bookingRepo "github.com/Amir3629/vocal-booking-service/internal/infra/storage/booking"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/calendarservice"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/mailservice"
	"github.com/Amir3629/vocal-booking-service/internal/integrations/paymentservice"
	"github.com/Amir3629/vocal-booking-service/pkg/ptr"
)

// --- фейки коллабораторов ---

type fakeBookingRepo struct {
	byKey     map[string]*domain.Booking
	nextID    int64
	confirmed []int64
	failed    []int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byKey: make(map[string]*domain.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if _, ok := f.byKey[b.IdempotencyKey]; ok {
		return nil, bookingRepo.ErrDuplicateKey
	}
	f.nextID++
	b.ID = f.nextID
	f.byKey[b.IdempotencyKey] = b
	return b, nil
}

func (f *fakeBookingRepo) GetByIdempotencyKey(_ context.Context, key string) (*domain.Booking, error) {
	if b, ok := f.byKey[key]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) SetConfirmed(_ context.Context, id int64, eventID, orderID string) error {
	f.confirmed = append(f.confirmed, id)
	for _, b := range f.byKey {
		if b.ID == id {
			b.Status = domain.StatusConfirmed
			b.EventID = &eventID
			b.OrderID = &orderID
		}
	}
	return nil
}

func (f *fakeBookingRepo) SetFailed(_ context.Context, id int64) error {
	f.failed = append(f.failed, id)
	return nil
}

type fakeOrderRepo struct {
	created      []*domain.PaymentOrder
	markedFailed []string
}

func (f *fakeOrderRepo) Create(_ context.Context, o *domain.PaymentOrder) error {
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderRepo) MarkFailed(_ context.Context, orderID string) error {
	f.markedFailed = append(f.markedFailed, orderID)
	return nil
}

type fakeCalendar struct {
	failCreate bool
	created    []calendarservice.ReservationRequest
	deleted    []string
}

func (f *fakeCalendar) CreateReservation(_ context.Context, r calendarservice.ReservationRequest) (*calendarservice.Reservation, error) {
	if f.failCreate {
		return nil, calendarservice.ErrUnavailable
	}
	f.created = append(f.created, r)
	return &calendarservice.Reservation{ID: "evt-1"}, nil
}

func (f *fakeCalendar) DeleteReservation(_ context.Context, eventID string) error {
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakePayment struct {
	failCreate bool
	created    []paymentservice.Amount
	voided     []string
}

func (f *fakePayment) CreateOrder(_ context.Context, amount paymentservice.Amount) (*paymentservice.Order, error) {
	if f.failCreate {
		return nil, paymentservice.ErrUnavailable
	}
	f.created = append(f.created, amount)
	return &paymentservice.Order{
		ID:     "ord-1",
		Status: paymentservice.OrderStatusCreated,
		Links:  []paymentservice.Link{{Href: "https://pay.example.com/approve/ord-1", Rel: "approve"}},
	}, nil
}

func (f *fakePayment) VoidOrder(_ context.Context, orderID string) error {
	f.voided = append(f.voided, orderID)
	return nil
}

type fakeMail struct {
	fail bool
	sent []mailservice.ConfirmationData
}

func (f *fakeMail) SendConfirmation(_ context.Context, _, _ string, data mailservice.ConfirmationData) error {
	if f.fail {
		return mailservice.ErrSendFailed
	}
	f.sent = append(f.sent, data)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- сборка ---

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	orders   *fakeOrderRepo
	calendar *fakeCalendar
	payment  *fakePayment
	mail     *fakeMail
}

func newFixture() *fixture {
	f := &fixture{
		bookings: newFakeBookingRepo(),
		orders:   &fakeOrderRepo{},
		calendar: &fakeCalendar{},
		payment:  &fakePayment{},
		mail:     &fakeMail{},
	}
	f.uc = NewUseCase(
		f.bookings,
		f.orders,
		f.calendar,
		f.payment,
		f.mail,
		fakeTxManager{},
		Deposit{
			Amount:         "30.00",
			Currency:       "EUR",
			PaymentPageURL: "https://studio.example.com/payment",
		},
		noopLogger{},
	)
	return f
}

func validRequest() *Request {
	return &Request{
		Name:            "Anna K.",
		Email:           "a@example.com",
		Date:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		ServiceType:     domain.ServiceVocalCoaching,
		TermsAccepted:   true,
		PrivacyAccepted: true,
	}
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.EventID)
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, "evt-1", resp.EventID)
	assert.Equal(t, "ord-1", resp.OrderID)
	assert.Equal(t, "https://pay.example.com/approve/ord-1", resp.PaymentLink)

	// Депозит уходит процессору как сконфигурирован
	require.Len(t, f.payment.created, 1)
	assert.Equal(t, "30.00", f.payment.created[0].Value)
	assert.Equal(t, "EUR", f.payment.created[0].CurrencyCode)

	// Письмо отправлено, локальная запись подтверждена
	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, "2025-03-01", f.mail.sent[0].Date)
	assert.Equal(t, "14:00", f.mail.sent[0].Time)
	assert.Contains(t, f.bookings.confirmed, resp.BookingID)

	// Никаких компенсаций на happy path
	assert.Empty(t, f.calendar.deleted)
	assert.Empty(t, f.payment.voided)
}

func TestExecute_AssignsIdempotencyKey(t *testing.T) {
	f := newFixture()

	req := validRequest()
	require.Empty(t, req.IdempotencyKey)

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, req.IdempotencyKey)
}

func TestExecute_MissingFields_NoDownstreamCalls(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing name", func(r *Request) { r.Name = "" }},
		{"missing email", func(r *Request) { r.Email = "" }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing time", func(r *Request) { r.StartTime = "" }},
		{"terms not accepted", func(r *Request) { r.TermsAccepted = false }},
		{"privacy not accepted", func(r *Request) { r.PrivacyAccepted = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrMissingRequiredFields)

			// Ни один внешний сервис не вызывался
			assert.Empty(t, f.calendar.created)
			assert.Empty(t, f.payment.created)
			assert.Empty(t, f.mail.sent)
			assert.Empty(t, f.bookings.byKey)
		})
	}
}

func TestExecute_UnknownServiceType(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ServiceType = "piano-lesson"

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, f.calendar.created)
}

func TestExecute_CalendarFailure_AbortsBeforePayment(t *testing.T) {
	f := newFixture()
	f.calendar.failCreate = true

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrCalendarUnavailable)

	// Ордер не создан, письмо не отправлено
	assert.Empty(t, f.payment.created)
	assert.Empty(t, f.mail.sent)

	// Локальная запись помечена неуспешной
	assert.Len(t, f.bookings.failed, 1)
}

func TestExecute_PaymentFailure_CompensatesReservation(t *testing.T) {
	f := newFixture()
	f.payment.failCreate = true

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPaymentUnavailable)

	// Предварительное событие календаря удалено
	assert.Equal(t, []string{"evt-1"}, f.calendar.deleted)
	assert.Empty(t, f.mail.sent)
	assert.Len(t, f.bookings.failed, 1)
}

func TestExecute_NotificationFailure_CompensatesOrderAndReservation(t *testing.T) {
	f := newFixture()
	f.mail.fail = true

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrNotificationFailed)

	// Компенсации в обратном порядке: ордер аннулирован, событие удалено
	assert.Equal(t, []string{"ord-1"}, f.payment.voided)
	assert.Equal(t, []string{"evt-1"}, f.calendar.deleted)
	assert.Equal(t, []string{"ord-1"}, f.orders.markedFailed)
	assert.Len(t, f.bookings.failed, 1)
}

func TestExecute_ReplayConfirmedBooking(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.IdempotencyKey = "key-1"

	first, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Повтор с тем же ключом возвращает сохраненные идентификаторы
	// без повторных внешних вызовов
	second, err := f.uc.Execute(context.Background(), validRequestWithKey("key-1"))
	require.NoError(t, err)

	assert.Equal(t, first.BookingID, second.BookingID)
	assert.Equal(t, first.EventID, second.EventID)
	assert.Equal(t, first.OrderID, second.OrderID)

	assert.Len(t, f.calendar.created, 1)
	assert.Len(t, f.payment.created, 1)
	assert.Len(t, f.mail.sent, 1)
}

func TestExecute_DuplicateInFlight(t *testing.T) {
	f := newFixture()

	// Запись в статусе pending имитирует гонку двух одинаковых отправок
	_, err := f.bookings.Create(context.Background(), &domain.Booking{
		IdempotencyKey: "key-1",
		Status:         domain.StatusPending,
	})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), validRequestWithKey("key-1"))
	require.ErrorIs(t, err, ErrDuplicateSubmission)
	assert.Empty(t, f.calendar.created)
}

func TestExecute_OptionalFieldsReachCalendarDescription(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ServiceType = domain.ServiceSingingLesson
	req.EventType = ptr.Ptr("wedding")
	req.Message = ptr.Ptr("looking forward to it")

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, f.calendar.created, 1)
	assert.Contains(t, f.calendar.created[0].Description, "wedding")
	assert.Contains(t, f.calendar.created[0].Description, "looking forward to it")
	assert.True(t, f.calendar.created[0].Tentative)
}

func validRequestWithKey(key string) *Request {
	req := validRequest()
	req.IdempotencyKey = key
	return req
}
