package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	"github.com/Amir3629/vocal-booking-service/pkg/psqlbuilder"
	"github.com/Amir3629/vocal-booking-service/pkg/txmanager"
)

// uniqueViolation код ошибки Postgres для нарушения unique constraint
const uniqueViolation = "23505"

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"idempotency_key",
	"name",
	"email",
	"phone",
	"message",
	"booking_date",
	"start_time",
	"service_type",
	"status",
	"event_type",
	"skill_level",
	"workshop_theme",
	"event_id",
	"order_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий локального реестра бронирований.
// Таблица bookings - это журнал дедупликации (unique idempotency_key)
// и собственная запись студии; владельцами события и ордера остаются
// внешние сервисы.
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает запись бронирования в статусе pending.
// Если в контексте есть активная транзакция (см. txmanager), использует её.
// Повторная вставка с тем же idempotency_key возвращает ErrDuplicateKey.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"idempotency_key",
			"name",
			"email",
			"phone",
			"message",
			"booking_date",
			"start_time",
			"service_type",
			"status",
			"event_type",
			"skill_level",
			"workshop_theme",
		).
		Values(
			b.IdempotencyKey,
			b.Name,
			b.Email,
			b.Phone,
			b.Message,
			b.BookingDate,
			b.StartTime,
			b.ServiceType,
			b.Status,
			b.EventType,
			b.SkillLevel,
			b.WorkshopTheme,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByIdempotencyKey возвращает бронирование по ключу идемпотентности
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"idempotency_key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdempotencyKey - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...))
}

// GetByID возвращает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...))
}

// SetConfirmed помечает бронирование подтвержденным и сохраняет
// ссылки на событие календаря и платежный ордер
func (r *Repository) SetConfirmed(ctx context.Context, id int64, eventID, orderID string) error {
	return r.update(ctx, id, map[string]interface{}{
		"status":     domain.StatusConfirmed,
		"event_id":   eventID,
		"order_id":   orderID,
		"updated_at": squirrel.Expr("now()"),
	})
}

// SetFailed помечает бронирование неуспешным после отказа и компенсации
func (r *Repository) SetFailed(ctx context.Context, id int64) error {
	return r.update(ctx, id, map[string]interface{}{
		"status":     domain.StatusFailed,
		"updated_at": squirrel.Expr("now()"),
	})
}

func (r *Repository) update(ctx context.Context, id int64, values map[string]interface{}) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.IdempotencyKey,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.Message,
		&b.BookingDate,
		&b.StartTime,
		&b.ServiceType,
		&b.Status,
		&b.EventType,
		&b.SkillLevel,
		&b.WorkshopTheme,
		&b.EventID,
		&b.OrderID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
