package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uteq-platform/AdvisoryService/pkg/types"
)

func TestSlot_Contains(t *testing.T) {
	slot := &Slot{
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	}

	tests := []struct {
		name string
		time types.TimeString
		want bool
	}{
		{"start boundary inclusive", types.TimeString("10:00"), true},
		{"end boundary inclusive", types.TimeString("11:00"), true},
		{"inside interval", types.TimeString("10:30"), true},
		{"minute before start", types.TimeString("09:59"), false},
		{"minute after end", types.TimeString("11:01"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Contains(tt.time))
		})
	}
}

func TestSlot_BelongsTo(t *testing.T) {
	slot := &Slot{ProfessorID: 42}

	assert.True(t, slot.BelongsTo(42))
	assert.False(t, slot.BelongsTo(43))
}
