package book_regular_session

import "errors"

var (
	// ErrStudentNotFound возвращается, когда запись о студенте не найдена
	ErrStudentNotFound = errors.New("book_regular_session: student not found")

	// ErrTutorNotFound возвращается, когда тьютор не найден в справочнике
	ErrTutorNotFound = errors.New("book_regular_session: tutor not found")

	// ErrNoAvailableLessons возвращается, когда у студента нет доступных уроков
	ErrNoAvailableLessons = errors.New("book_regular_session: no available lessons")

	// ErrProvider возвращается при сбое календарного провайдера
	ErrProvider = errors.New("book_regular_session: calendar provider error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_regular_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_regular_session: internal error")
)
