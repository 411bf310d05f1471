package mailservice

import "errors"

var (
	// ErrSendFailed возвращается, когда письмо не удалось отправить
	// (транспортная ошибка или отказ сервиса)
	ErrSendFailed = errors.New("mailservice client: failed to send message")

	// ErrUnauthorized возвращается при ошибке авторизации (401/403)
	ErrUnauthorized = errors.New("mailservice client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")
)
