package get_advisory

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
	msgNotFound          = "консультация не найдена"
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

// Handle GET /api/v1/advisories/{advisoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	advisoryID, err := strconv.ParseInt(vars["advisoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /advisories/{id} - Invalid advisory ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdvisoryID)
		return
	}

	result, err := h.service.GetByID(r.Context(), advisoryID)
	if err != nil {
		switch {
		case errors.Is(err, advisories.ErrAdvisoryNotFound):
			h.logger.Warn("GET /advisories/{id} - Advisory not found: advisory_id=%d", advisoryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /advisories/{id} - Failed to get advisory: advisory_id=%d, error=%v", advisoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
