package execute_payment

import "errors"

var (
	// ErrCredentialsNotFound возвращается, когда платежные реквизиты тьютора не найдены
	ErrCredentialsNotFound = errors.New("execute_payment: payment credentials not found")

	// ErrPaymentAlreadyCompleted возвращается при повторном исполнении того же платежа
	ErrPaymentAlreadyCompleted = errors.New("execute_payment: payment already completed")

	// ErrInvalidMetadata возвращается, когда платеж не содержит данных о покупке
	ErrInvalidMetadata = errors.New("execute_payment: invalid payment metadata")

	// ErrProvider возвращается при сбое платежного провайдера
	ErrProvider = errors.New("execute_payment: payment provider error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("execute_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("execute_payment: internal error")
)
