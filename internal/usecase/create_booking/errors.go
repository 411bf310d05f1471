package create_booking

import "errors"

var (
	// ErrMissingRequiredFields возвращается, когда отсутствует обязательное поле
	// (имя, email, дата, время или согласие с условиями/политикой)
	ErrMissingRequiredFields = errors.New("create_booking: missing required fields")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (непарсящаяся дата, неизвестный тип услуги и т.п.)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDuplicateSubmission возвращается при повторной отправке с тем же
	// idempotency key, пока первая еще выполняется или уже завершилась неуспехом
	ErrDuplicateSubmission = errors.New("create_booking: duplicate submission")

	// ErrCalendarUnavailable возвращается, когда не удалось создать
	// предварительное событие календаря. Последовательность прерывается
	// до создания ордера и отправки письма.
	ErrCalendarUnavailable = errors.New("create_booking: calendar service unavailable")

	// ErrPaymentUnavailable возвращается, когда не удалось создать платежный
	// ордер. Предварительное событие календаря к этому моменту компенсируется.
	ErrPaymentUnavailable = errors.New("create_booking: payment service unavailable")

	// ErrNotificationFailed возвращается, когда письмо-подтверждение не
	// отправилось. Ордер и событие календаря компенсируются.
	ErrNotificationFailed = errors.New("create_booking: confirmation delivery failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
