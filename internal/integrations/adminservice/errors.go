package adminservice

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль персоны не найден
	ErrProfileNotFound = errors.New("adminservice client: profile not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("adminservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("adminservice client: invalid response")

	// ErrUnavailable возвращается при таймауте или недоступности сервиса.
	// Бронирование при этом не продолжается: без подтверждённой программы
	// ответ трактуется как "профиль не найден" (fail-closed).
	ErrUnavailable = errors.New("adminservice client: service unavailable")
)
