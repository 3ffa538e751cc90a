package domain

import (
	"time"

	"github.com/uteq-platform/AdvisoryService/pkg/types"
)

// AdvisoryStatus represents the status of an advisory session
type AdvisoryStatus string

const (
	StatusCreated   AdvisoryStatus = "CREATED"
	StatusAssigned  AdvisoryStatus = "ASSIGNED"
	StatusConfirmed AdvisoryStatus = "CONFIRMED"
	StatusCancelled AdvisoryStatus = "CANCELLED"
	StatusCompleted AdvisoryStatus = "COMPLETED"
)

// allowedTransitions is the closed transition table for advisory statuses.
// Anything not listed here is rejected.
var allowedTransitions = map[AdvisoryStatus][]AdvisoryStatus{
	StatusCreated:   {StatusConfirmed, StatusCancelled},
	StatusAssigned:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// ParseAdvisoryStatus validates a raw status string against the closed set
func ParseAdvisoryStatus(s string) (AdvisoryStatus, bool) {
	status := AdvisoryStatus(s)
	if _, ok := allowedTransitions[status]; !ok {
		return "", false
	}
	return status, true
}

// CanTransitionTo returns true if the transition from s to next is allowed
func (s AdvisoryStatus) CanTransitionTo(next AdvisoryStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible
func (s AdvisoryStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// Advisory represents a booked one-on-one session between a student and a
// professor, tied to exactly one slot.
type Advisory struct {
	ID          int64
	ProfessorID int64
	StudentID   int64
	SlotID      *int64 // nil only transiently before a slot is matched

	Date time.Time
	Time types.TimeString

	Subject string
	Notes   *string

	Status           AdvisoryStatus
	RegistrationDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLive returns true if the advisory still holds its slot.
// Cancelled advisories have released the slot; completed ones consumed it.
func (a *Advisory) IsLive() bool {
	return a.Status != StatusCancelled
}

// HoldsSlot returns true if the advisory currently keeps its slot claimed
func (a *Advisory) HoldsSlot() bool {
	return a.SlotID != nil && a.Status != StatusCancelled
}

// AdvisoryFilter describes the optional filters of the list queries
type AdvisoryFilter struct {
	ProfessorID *int64
	StudentID   *int64
	Date        *time.Time
	Status      *AdvisoryStatus
}
