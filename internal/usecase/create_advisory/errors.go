package create_advisory

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль студента или профессора
	// не найден, а также при недоступности AdminService (fail-closed)
	ErrProfileNotFound = errors.New("create_advisory: profile not found")

	// ErrProgramMismatch возвращается, когда студент и профессор относятся
	// к разным учебным программам
	ErrProgramMismatch = errors.New("create_advisory: student and professor belong to different programs")

	// ErrSlotNotFound возвращается, когда указанный слот не существует
	ErrSlotNotFound = errors.New("create_advisory: slot not found")

	// ErrSlotNotOwnedByProfessor возвращается, когда слот принадлежит
	// другому профессору
	ErrSlotNotOwnedByProfessor = errors.New("create_advisory: slot does not belong to professor")

	// ErrSlotUnavailable возвращается, когда слот уже занят
	ErrSlotUnavailable = errors.New("create_advisory: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_advisory: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_advisory: internal error")
)
