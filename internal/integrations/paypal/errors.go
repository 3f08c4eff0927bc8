package paypal

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paypal client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("paypal client: invalid response")

	// ErrUnauthorized возвращается, когда провайдер отклонил учетные данные
	ErrUnauthorized = errors.New("paypal client: unauthorized")
)
