package get_student_advisories

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
	msgInvalidStudentID = "некорректный ID студента"
	msgInvalidQuery     = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/students/{studentId}/advisories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	studentID, err := strconv.ParseInt(vars["studentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /students/{id}/advisories - Invalid student ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	req := &models.ListAdvisoriesRequest{StudentID: &studentID}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, advisories.ErrInvalidInput):
			h.logger.Warn("GET /students/{id}/advisories - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /students/{id}/advisories - Failed to list: student_id=%d, error=%v",
				studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
