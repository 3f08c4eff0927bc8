package paymentcredential

import "errors"

var (
	// ErrCredentialsNotFound возвращается, когда учетные данные тьютора не найдены
	ErrCredentialsNotFound = errors.New("paymentcredential.repository: credentials not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("paymentcredential.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("paymentcredential.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("paymentcredential.repository: failed to scan row")
)
