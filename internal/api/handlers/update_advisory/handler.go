package update_advisory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/uteq-platform/AdvisoryService/internal/api/handlers"
	"github.com/uteq-platform/AdvisoryService/internal/service/advisories"
	"github.com/uteq-platform/AdvisoryService/internal/service/advisories/models"
)

const (
	msgInvalidAdvisoryID = "некорректный ID консультации"
	msgInvalidBody       = "некорректное тело запроса"
	msgAdvisoryNotFound  = "консультация не найдена"
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

// Handle PUT /api/v1/advisories/{advisoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	advisoryID, err := strconv.ParseInt(vars["advisoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /advisories/{id} - Invalid advisory ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdvisoryID)
		return
	}

	var req models.UpdateAdvisoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /advisories/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpdateDetails(r.Context(), advisoryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, advisories.ErrInvalidInput):
			h.logger.Warn("PUT /advisories/{id} - Validation failed: advisory_id=%d, error=%v",
				advisoryID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, advisories.ErrAdvisoryNotFound):
			h.logger.Warn("PUT /advisories/{id} - Advisory not found: advisory_id=%d", advisoryID)
			handlers.RespondNotFound(w, msgAdvisoryNotFound)

		default:
			h.logger.Error("PUT /advisories/{id} - Failed to update: advisory_id=%d, error=%v",
				advisoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
