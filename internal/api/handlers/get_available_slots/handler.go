package get_available_slots

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/uteq-platform/AdvisoryService/internal/api/handlers"
	"github.com/uteq-platform/AdvisoryService/internal/domain"
)

const (
	msgInvalidProfessorID = "некорректный ID профессора"
	msgInvalidDate        = "некорректная дата, ожидается формат YYYY-MM-DD"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professors/{professorId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professorID, err := strconv.ParseInt(vars["professorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professors/{id}/available-slots - Invalid professor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessorID)
		return
	}

	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /professors/{id}/available-slots - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	result, err := h.service.ListAvailable(r.Context(), professorID, date)
	if err != nil {
		h.logger.Error("GET /professors/{id}/available-slots - Failed to list: professor_id=%d, error=%v",
			professorID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
