package create_advisory

import (
	"errors"
	"net/http"

	"github.com/uteq-platform/AdvisoryService/internal/api/handlers"
	createAdvisory "github.com/uteq-platform/AdvisoryService/internal/usecase/create_advisory"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgProfileNotFound    = "профиль студента или профессора не найден"
	msgProgramMismatch    = "студент и профессор относятся к разным программам"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotOwned       = "слот принадлежит другому профессору"
	msgSlotUnavailable    = "выбранный слот уже занят"
)

type Handler struct {
	useCase CreateAdvisoryUseCase
	logger  Logger
}

func NewHandler(useCase CreateAdvisoryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/advisories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAdvisoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /advisories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAdvisory.ErrInvalidInput):
			h.logger.Warn("POST /advisories - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAdvisory.ErrProfileNotFound):
			h.logger.Warn("POST /advisories - Profile not found: professor_id=%d, student_id=%d",
				req.ProfessorID, req.StudentID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, createAdvisory.ErrProgramMismatch):
			h.logger.Warn("POST /advisories - Program mismatch: professor_id=%d, student_id=%d",
				req.ProfessorID, req.StudentID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgProgramMismatch)

		case errors.Is(err, createAdvisory.ErrSlotNotFound):
			h.logger.Warn("POST /advisories - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createAdvisory.ErrSlotNotOwnedByProfessor):
			h.logger.Warn("POST /advisories - Slot not owned: slot_id=%d, professor_id=%d",
				req.SlotID, req.ProfessorID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSlotNotOwned)

		case errors.Is(err, createAdvisory.ErrSlotUnavailable):
			h.logger.Warn("POST /advisories - Slot unavailable: slot_id=%d", req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		default:
			h.logger.Error("POST /advisories - Failed to create advisory: professor_id=%d, student_id=%d, error=%v",
				req.ProfessorID, req.StudentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /advisories - Advisory created: advisory_id=%d, slot_id=%d", result.ID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
