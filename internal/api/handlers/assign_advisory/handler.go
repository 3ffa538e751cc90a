package assign_advisory

import (
	"errors"
	"net/http"

	"github.com/uteq-platform/AdvisoryService/internal/api/handlers"
	assignAdvisory "github.com/uteq-platform/AdvisoryService/internal/usecase/assign_advisory"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные входные данные"
	msgProfileNotFound    = "профиль студента или профессора не найден"
	msgProgramMismatch    = "студент и профессор относятся к разным программам"
	msgNoActiveSlot       = "нет доступного слота на указанные дату и время"
	msgSlotUnavailable    = "слот уже занят"
)

type Handler struct {
	useCase AssignAdvisoryUseCase
	logger  Logger
}

func NewHandler(useCase AssignAdvisoryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/advisories/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AssignAdvisoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /advisories/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /advisories/assign - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, assignAdvisory.ErrInvalidInput):
			h.logger.Warn("POST /advisories/assign - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, assignAdvisory.ErrProfileNotFound):
			h.logger.Warn("POST /advisories/assign - Profile not found: professor_id=%d, student_id=%d",
				req.ProfessorID, req.StudentID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, assignAdvisory.ErrProgramMismatch):
			h.logger.Warn("POST /advisories/assign - Program mismatch: professor_id=%d, student_id=%d",
				req.ProfessorID, req.StudentID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgProgramMismatch)

		case errors.Is(err, assignAdvisory.ErrNoActiveSlot):
			h.logger.Warn("POST /advisories/assign - No active slot: professor_id=%d, date=%s, time=%s",
				req.ProfessorID, req.Date, req.Time)
			handlers.RespondNotFound(w, msgNoActiveSlot)

		case errors.Is(err, assignAdvisory.ErrSlotUnavailable):
			h.logger.Warn("POST /advisories/assign - Slot taken concurrently: professor_id=%d", req.ProfessorID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		default:
			h.logger.Error("POST /advisories/assign - Failed to assign advisory: professor_id=%d, student_id=%d, error=%v",
				req.ProfessorID, req.StudentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /advisories/assign - Advisory assigned: advisory_id=%d, professor_id=%d",
		result.ID, req.ProfessorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
