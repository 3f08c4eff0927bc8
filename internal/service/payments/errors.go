package payments

import "errors"

var (
	// ErrCredentialsNotFound возвращается, когда учетные данные тьютора не найдены
	ErrCredentialsNotFound = errors.New("payments.service: payment credentials not found")

	// ErrPaymentLinkUnavailable возвращается, когда ссылку на оплату
	// получить не удалось - вызывающая сторона трактует это как
	// временную недоступность оплаты
	ErrPaymentLinkUnavailable = errors.New("payments.service: payment link unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("payments.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments.service: internal error")
)
