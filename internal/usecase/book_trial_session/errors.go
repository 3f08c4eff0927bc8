package book_trial_session

import "errors"

var (
	// ErrTrialAlreadyUsed возвращается, когда студент уже использовал пробный урок
	ErrTrialAlreadyUsed = errors.New("book_trial_session: trial lesson already used")

	// ErrTutorNotFound возвращается, когда тьютор не найден в справочнике
	ErrTutorNotFound = errors.New("book_trial_session: tutor not found")

	// ErrProvider возвращается при сбое календарного провайдера
	ErrProvider = errors.New("book_trial_session: calendar provider error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_trial_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_trial_session: internal error")
)
