package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Amir3629/vocal-booking-service/internal/domain"
	"github.com/Amir3629/vocal-booking-service/pkg/psqlbuilder"
	"github.com/Amir3629/vocal-booking-service/pkg/txmanager"
)

// Repository локальное зеркало ордеров платежного процессора.
// Используется для сверки capture-операций; сам ордер принадлежит процессору.
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория ордеров
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет ссылку на созданный у процессора ордер
func (r *Repository) Create(ctx context.Context, o *domain.PaymentOrder) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_orders").
		Columns(
			"order_id",
			"amount",
			"currency",
			"status",
		).
		Values(
			o.OrderID,
			o.Amount,
			o.Currency,
			o.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time

	return nil
}

// GetByOrderID возвращает ордер по идентификатору процессора
func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.PaymentOrder, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"order_id",
		"amount",
		"currency",
		"status",
		"payer_email",
		"created_at",
		"captured_at",
	).
		From("payment_orders").
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.PaymentOrder
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.OrderID,
		&o.Amount,
		&o.Currency,
		&o.Status,
		&o.PayerEmail,
		&createdAt,
		&o.CapturedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - scan order: %v", ErrScanRow, err)
	}

	o.CreatedAt = createdAt.Time

	return &o, nil
}

// MarkCaptured помечает ордер оплаченным после успешного capture
func (r *Repository) MarkCaptured(ctx context.Context, orderID, payerEmail string, capturedAt time.Time) error {
	return r.update(ctx, orderID, map[string]interface{}{
		"status":      domain.OrderStatusCompleted,
		"payer_email": payerEmail,
		"captured_at": capturedAt,
	})
}

// MarkFailed помечает ордер неуспешным (отказ процессора или void-компенсация)
func (r *Repository) MarkFailed(ctx context.Context, orderID string) error {
	return r.update(ctx, orderID, map[string]interface{}{
		"status": domain.OrderStatusFailed,
	})
}

func (r *Repository) update(ctx context.Context, orderID string, values map[string]interface{}) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_orders").
		SetMap(values).
		Where(squirrel.Eq{"order_id": orderID}).
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
		return ErrOrderNotFound
	}

	return nil
}
