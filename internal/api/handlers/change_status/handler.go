package change_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/uteq-platform/AdvisoryService/internal/api/handlers"
	"github.com/uteq-platform/AdvisoryService/internal/service/advisories"
)

const (
	msgInvalidAdvisoryID = "некорректный ID консультации"
	msgUnknownStatus     = "неизвестный статус консультации"
	msgAdvisoryNotFound  = "консультация не найдена"
	msgInvalidTransition = "недопустимый переход статуса"
)

type Handler struct {
	service AdvisoryService
	logger  Logger
}

func NewHandler(service AdvisoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/advisories/{advisoryId}/status/{newStatus}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	advisoryID, err := strconv.ParseInt(vars["advisoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /advisories/{id}/status - Invalid advisory ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdvisoryID)
		return
	}

	newStatus := vars["newStatus"]

	result, err := h.service.TransitionStatus(r.Context(), advisoryID, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, advisories.ErrInvalidStatus):
			h.logger.Warn("PUT /advisories/{id}/status - Unknown status: advisory_id=%d, status=%q",
				advisoryID, newStatus)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		case errors.Is(err, advisories.ErrAdvisoryNotFound):
			h.logger.Warn("PUT /advisories/{id}/status - Advisory not found: advisory_id=%d", advisoryID)
			handlers.RespondNotFound(w, msgAdvisoryNotFound)

		case errors.Is(err, advisories.ErrInvalidTransition):
			h.logger.Warn("PUT /advisories/{id}/status - Transition rejected: advisory_id=%d, status=%s",
				advisoryID, newStatus)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidTransition)

		default:
			h.logger.Error("PUT /advisories/{id}/status - Failed to change status: advisory_id=%d, error=%v",
				advisoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
