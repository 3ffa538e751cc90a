package slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/pkg/types"
)

type fakeSlotRepo struct {
	slots []*domain.Slot
	err   error

	gotProfessorID int64
	gotDate        *time.Time
}

func (r *fakeSlotRepo) ListAvailableByProfessor(_ context.Context, professorID int64, date *time.Time) ([]*domain.Slot, error) {
	r.gotProfessorID = professorID
	r.gotDate = date
	return r.slots, r.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestListAvailable(t *testing.T) {
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{slots: []*domain.Slot{
		{
			ID:          1,
			ProfessorID: 9,
			Date:        date,
			StartTime:   types.TimeString("10:00"),
			EndTime:     types.TimeString("11:00"),
			Available:   true,
		},
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.ListAvailable(context.Background(), 9, &date)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime)
	assert.Equal(t, "11:00", resp.Slots[0].EndTime)

	assert.Equal(t, int64(9), repo.gotProfessorID)
	require.NotNil(t, repo.gotDate)
	assert.True(t, repo.gotDate.Equal(date))
}

func TestListAvailable_EmptyResult(t *testing.T) {
	svc := NewService(&fakeSlotRepo{slots: []*domain.Slot{}}, noopLogger{})

	resp, err := svc.ListAvailable(context.Background(), 9, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Slots, "empty list serializes as [], not null")
}

func TestListAvailable_RepositoryError(t *testing.T) {
	svc := NewService(&fakeSlotRepo{err: errors.New("connection lost")}, noopLogger{})

	_, err := svc.ListAvailable(context.Background(), 9, nil)
	assert.ErrorIs(t, err, ErrInternal)
}
