package lessons

import "errors"

var (
	// ErrStudentNotFound возвращается, когда запись о студенте не найдена
	ErrStudentNotFound = errors.New("lessons.service: student not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("lessons.service: internal error")
)
