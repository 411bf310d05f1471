package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking storage: booking not found")

	// ErrDuplicateKey возвращается при нарушении уникальности idempotency key
	ErrDuplicateKey = errors.New("booking storage: duplicate idempotency key")

	// ErrBuildQuery возвращается при ошибке построения SQL-запроса
	ErrBuildQuery = errors.New("booking storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL-запроса
	ErrExecQuery = errors.New("booking storage: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("booking storage: failed to scan row")
)
