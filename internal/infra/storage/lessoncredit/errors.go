package lessoncredit

import "errors"

var (
	// ErrCreditNotFound возвращается, когда запись о кредитах студента не найдена
	ErrCreditNotFound = errors.New("lessoncredit.repository: lesson credit not found")

	// ErrNoAvailableLessons возвращается, когда у студента нет доступных уроков
	// для списания
	ErrNoAvailableLessons = errors.New("lessoncredit.repository: no available lessons")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("lessoncredit.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("lessoncredit.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("lessoncredit.repository: failed to scan row")
)
