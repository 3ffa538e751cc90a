package assign_advisory

import (
	"errors"
	"fmt"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/internal/integrations/adminservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessorID <= 0 {
		return fmt.Errorf("%w: professorID must be positive", ErrInvalidInput)
	}

	if req.StudentID <= 0 {
		return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}

	if len(req.Subject) > domain.MaxSubjectLength {
		return fmt.Errorf("%w: subject exceeds %d characters", ErrInvalidInput, domain.MaxSubjectLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// mapProfileLookupError переводит ошибки клиента AdminService в ошибки
// usecase. Недоступность сервиса и таймаут трактуются как отсутствие
// профиля (fail-closed).
func mapProfileLookupError(err error) error {
	switch {
	case errors.Is(err, adminservice.ErrProfileNotFound):
		return ErrProfileNotFound
	case errors.Is(err, adminservice.ErrUnavailable):
		return ErrProfileNotFound
	default:
		return fmt.Errorf("%w: admin service lookup failed: %v", ErrInternal, err)
	}
}

// validateSamePrograms проверяет, что обе принадлежности заданы и
// указывают на одну учебную программу
func validateSamePrograms(professor, student *adminservice.ProgramAffiliation) error {
	if professor.ProgramID == 0 || student.ProgramID == 0 {
		return ErrProgramMismatch
	}
	if professor.ProgramID != student.ProgramID {
		return ErrProgramMismatch
	}
	return nil
}
