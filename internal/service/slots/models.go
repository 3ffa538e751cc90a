package slots

import (
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
)

// SlotResponse доступный слот в ответе сервиса
type SlotResponse struct {
	ID          int64     `json:"id"`
	ProfessorID int64     `json:"professorId"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
}

// SlotListResponse список доступных слотов
type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
	Total int             `json:"total"`
}

func fromDomainSlots(slots []*domain.Slot) *SlotListResponse {
	items := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		items = append(items, &SlotResponse{
			ID:          s.ID,
			ProfessorID: s.ProfessorID,
			Date:        s.Date,
			StartTime:   s.StartTime.String(),
			EndTime:     s.EndTime.String(),
		})
	}
	return &SlotListResponse{Slots: items, Total: len(items)}
}
