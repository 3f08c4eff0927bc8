package get_month_schedule

import "errors"

var (
	// ErrTutorNotFound возвращается, когда тьютор не найден в справочнике
	ErrTutorNotFound = errors.New("get_month_schedule: tutor not found")

	// ErrProvider возвращается при сбое календарного провайдера
	ErrProvider = errors.New("get_month_schedule: calendar provider error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_month_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_month_schedule: internal error")
)
