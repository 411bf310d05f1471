package order

import "errors"

var (
	// ErrOrderNotFound возвращается, когда ордер не найден в локальном реестре
	ErrOrderNotFound = errors.New("order storage: order not found")

	// ErrBuildQuery возвращается при ошибке построения SQL-запроса
	ErrBuildQuery = errors.New("order storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL-запроса
	ErrExecQuery = errors.New("order storage: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("order storage: failed to scan row")
)
