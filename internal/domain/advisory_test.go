package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uteq-platform/AdvisoryService/pkg/ptr"
)

func TestAdvisoryStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AdvisoryStatus
		to   AdvisoryStatus
		want bool
	}{
		{"created to confirmed", StatusCreated, StatusConfirmed, true},
		{"created to cancelled", StatusCreated, StatusCancelled, true},
		{"created to completed", StatusCreated, StatusCompleted, false},
		{"created to assigned", StatusCreated, StatusAssigned, false},
		{"assigned to confirmed", StatusAssigned, StatusConfirmed, true},
		{"assigned to cancelled", StatusAssigned, StatusCancelled, true},
		{"assigned to completed", StatusAssigned, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to created", StatusConfirmed, StatusCreated, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"cancelled stays cancelled", StatusCancelled, StatusCancelled, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"self transition rejected", StatusCreated, StatusCreated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAdvisoryStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusCreated.IsTerminal())
	assert.False(t, StatusAssigned.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestParseAdvisoryStatus(t *testing.T) {
	for _, raw := range []string{"CREATED", "ASSIGNED", "CONFIRMED", "CANCELLED", "COMPLETED"} {
		status, ok := ParseAdvisoryStatus(raw)
		require.True(t, ok, "status %s must parse", raw)
		assert.Equal(t, AdvisoryStatus(raw), status)
	}

	for _, raw := range []string{"", "created", "Confirmed", "DONE", "PENDIENTE"} {
		_, ok := ParseAdvisoryStatus(raw)
		assert.False(t, ok, "status %q must be rejected", raw)
	}
}

func TestAdvisory_HoldsSlot(t *testing.T) {
	slotID := ptr.Ptr(int64(7))

	adv := &Advisory{SlotID: slotID, Status: StatusConfirmed}
	assert.True(t, adv.HoldsSlot())

	adv.Status = StatusCancelled
	assert.False(t, adv.HoldsSlot(), "cancelled advisory has released its slot")

	adv = &Advisory{SlotID: nil, Status: StatusCreated}
	assert.False(t, adv.HoldsSlot())

	// Завершённая консультация слот не возвращает
	adv = &Advisory{SlotID: slotID, Status: StatusCompleted}
	assert.True(t, adv.HoldsSlot())
}

func TestAdvisory_IsLive(t *testing.T) {
	for _, status := range []AdvisoryStatus{StatusCreated, StatusAssigned, StatusConfirmed, StatusCompleted} {
		adv := &Advisory{Status: status}
		assert.True(t, adv.IsLive(), "status %s", status)
	}

	adv := &Advisory{Status: StatusCancelled}
	assert.False(t, adv.IsLive())
}
