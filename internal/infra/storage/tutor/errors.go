package tutor

import "errors"

var (
	// ErrTutorNotFound возвращается, когда тьютор не найден в справочнике
	ErrTutorNotFound = errors.New("tutor.repository: tutor not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tutor.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tutor.repository: failed to scan row")
)
