package googlecalendar

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrUnauthorized возвращается, когда провайдер отклонил учетные данные
	ErrUnauthorized = errors.New("googlecalendar client: unauthorized")

	// ErrMalformedEvent возвращается, когда запись события не содержит
	// ни dateTime, ни date
	ErrMalformedEvent = errors.New("googlecalendar client: malformed event record")
)
