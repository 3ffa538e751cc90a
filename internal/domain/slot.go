package domain

import (
	"time"

	"github.com/uteq-platform/AdvisoryService/pkg/types"
)

// Slot represents a professor-published bookable time interval
type Slot struct {
	ID          int64
	ProfessorID int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Available   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains returns true if t lies within [StartTime, EndTime], both ends
// inclusive.
func (s *Slot) Contains(t types.TimeString) bool {
	return !t.IsBefore(s.StartTime) && !t.IsAfter(s.EndTime)
}

// BelongsTo returns true if the slot is owned by the given professor
func (s *Slot) BelongsTo(professorID int64) bool {
	return s.ProfessorID == professorID
}
