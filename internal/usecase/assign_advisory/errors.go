package assign_advisory

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль студента или профессора
	// не найден, а также при недоступности AdminService (fail-closed)
	ErrProfileNotFound = errors.New("assign_advisory: profile not found")

	// ErrProgramMismatch возвращается, когда студент и профессор относятся
	// к разным учебным программам
	ErrProgramMismatch = errors.New("assign_advisory: student and professor belong to different programs")

	// ErrNoActiveSlot возвращается, когда у профессора нет доступного слота
	// на указанные дату и время
	ErrNoActiveSlot = errors.New("assign_advisory: no active slot at requested date and time")

	// ErrSlotUnavailable возвращается, когда найденный слот заняли раньше нас
	ErrSlotUnavailable = errors.New("assign_advisory: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_advisory: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_advisory: internal error")
)
