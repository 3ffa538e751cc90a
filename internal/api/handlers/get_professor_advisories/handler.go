package get_professor_advisories

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/uteq-platform/AdvisoryService/internal/api/handlers"
	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/internal/service/advisories"
	"github.com/uteq-platform/AdvisoryService/internal/service/advisories/models"
)

const (
	msgInvalidProfessorID = "некорректный ID профессора"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidQuery       = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/professors/{professorId}/advisories?date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professorID, err := strconv.ParseInt(vars["professorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professors/{id}/advisories - Invalid professor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessorID)
		return
	}

	req := &models.ListAdvisoriesRequest{ProfessorID: &professorID}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /professors/{id}/advisories - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, advisories.ErrInvalidInput):
			h.logger.Warn("GET /professors/{id}/advisories - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /professors/{id}/advisories - Failed to list: professor_id=%d, error=%v",
				professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
