package advisory

import "errors"

var (
	// ErrAdvisoryNotFound возвращается, когда консультация не найдена
	ErrAdvisoryNotFound = errors.New("advisory.repository: advisory not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("advisory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("advisory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("advisory.repository: failed to scan row")
)
