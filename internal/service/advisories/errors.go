package advisories

import "errors"

var (
	// ErrAdvisoryNotFound возвращается, когда консультация не найдена
	ErrAdvisoryNotFound = errors.New("advisory not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid advisory status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
