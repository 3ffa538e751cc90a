package assign_advisory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/internal/infra/storage/slot"
	"github.com/uteq-platform/AdvisoryService/internal/integrations/adminservice"
	"github.com/uteq-platform/AdvisoryService/pkg/types"
)

// --- фейки ---

type fakeAdminClient struct {
	affiliations map[int64]*adminservice.ProgramAffiliation
	err          error
}

func (c *fakeAdminClient) GetProgramAffiliation(_ context.Context, personID int64, _ adminservice.Role) (*adminservice.ProgramAffiliation, error) {
	if c.err != nil {
		return nil, c.err
	}
	aff, ok := c.affiliations[personID]
	if !ok {
		return nil, adminservice.ErrProfileNotFound
	}
	return aff, nil
}

type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[int64]*domain.Slot

	releaseCalls int
}

// FindActiveSlot повторяет контракт репозитория: интервал включает границы,
// при нескольких кандидатах — самый ранний по start_time.
func (r *fakeSlotRepo) FindActiveSlot(_ context.Context, professorID int64, date time.Time, t types.TimeString) (*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var candidates []*domain.Slot
	for _, s := range r.slots {
		if s.ProfessorID == professorID && s.Date.Equal(date) && s.Available && s.Contains(t) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil, slot.ErrSlotNotFound
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].StartTime.IsBefore(candidates[j].StartTime)
	})
	copied := *candidates[0]
	return &copied, nil
}

func (r *fakeSlotRepo) Claim(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok || !s.Available {
		return false, nil
	}
	s.Available = false
	return true, nil
}

func (r *fakeSlotRepo) Release(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseCalls++
	s, ok := r.slots[id]
	if !ok || s.Available {
		return false, nil
	}
	s.Available = true
	return true, nil
}

type fakeAdvisoryRepo struct {
	mu      sync.Mutex
	nextID  int64
	created []*domain.Advisory
	err     error
}

func (r *fakeAdvisoryRepo) Create(_ context.Context, adv *domain.Advisory) (*domain.Advisory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	copied := *adv
	copied.ID = r.nextID
	r.created = append(r.created, &copied)
	return &copied, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

// --- сборка ---

const (
	professorID = int64(5)
	studentID   = int64(6)
)

var testDate = time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)

func newSlot(id int64, start, end string) *domain.Slot {
	return &domain.Slot{
		ID:          id,
		ProfessorID: professorID,
		Date:        testDate,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Available:   true,
	}
}

func sameProgramClient() *fakeAdminClient {
	return &fakeAdminClient{affiliations: map[int64]*adminservice.ProgramAffiliation{
		professorID: {PersonID: professorID, ProgramID: 300},
		studentID:   {PersonID: studentID, ProgramID: 300},
	}}
}

func newTestUseCase(advRepo *fakeAdvisoryRepo, slotRepo *fakeSlotRepo, admin *fakeAdminClient) *UseCase {
	uc := NewUseCase(advRepo, slotRepo, admin, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		ProfessorID: professorID,
		StudentID:   studentID,
		Date:        testDate,
		Time:        types.TimeString("10:30"),
		Subject:     "Dudas sobre estadías",
	}
}

// --- тесты ---

func TestExecute_StoresRequestedDateAndTime(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		1: newSlot(1, "10:00", "11:00"),
	}}
	advRepo := &fakeAdvisoryRepo{}
	uc := newTestUseCase(advRepo, slotRepo, sameProgramClient())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusAssigned), resp.Status)

	// Сохраняются запрошенные дата и время, не границы слота
	assert.Equal(t, testDate, resp.Date)
	assert.Equal(t, types.TimeString("10:30"), resp.Time)

	require.NotNil(t, resp.SlotID)
	assert.Equal(t, int64(1), *resp.SlotID)
}

func TestExecute_PicksEarliestMatchingSlot(t *testing.T) {
	// Оба интервала включают 10:30; выбирается ранний по start_time
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		1: newSlot(1, "10:30", "11:30"),
		2: newSlot(2, "09:30", "10:30"),
	}}
	advRepo := &fakeAdvisoryRepo{}
	uc := newTestUseCase(advRepo, slotRepo, sameProgramClient())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.SlotID)
	assert.Equal(t, int64(2), *resp.SlotID)
}

func TestExecute_BoundaryTimeMatchesSlot(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		1: newSlot(1, "10:00", "11:00"),
	}}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, slotRepo, sameProgramClient())

	req := validRequest()
	req.Time = types.TimeString("11:00")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), resp.Time)
}

func TestExecute_NoActiveSlot(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		1: newSlot(1, "14:00", "15:00"),
	}}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, slotRepo, sameProgramClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoActiveSlot)
}

func TestExecute_OccupiedSlotNotMatched(t *testing.T) {
	s := newSlot(1, "10:00", "11:00")
	s.Available = false
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{1: s}}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, slotRepo, sameProgramClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoActiveSlot)
}

func TestExecute_ValidationRejectsRequest(t *testing.T) {
	uc := newTestUseCase(&fakeAdvisoryRepo{}, &fakeSlotRepo{}, sameProgramClient())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero professor", func(r *Request) { r.ProfessorID = 0 }},
		{"zero student", func(r *Request) { r.StudentID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.Time = "" }},
		{"malformed time", func(r *Request) { r.Time = "25:99" }},
		{"empty subject", func(r *Request) { r.Subject = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ProgramMismatch(t *testing.T) {
	admin := &fakeAdminClient{affiliations: map[int64]*adminservice.ProgramAffiliation{
		professorID: {PersonID: professorID, ProgramID: 300},
		studentID:   {PersonID: studentID, ProgramID: 301},
	}}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, &fakeSlotRepo{}, admin)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProgramMismatch)
}

func TestExecute_AdminServiceUnavailableFailsClosed(t *testing.T) {
	admin := &fakeAdminClient{err: adminservice.ErrUnavailable}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, &fakeSlotRepo{}, admin)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestExecute_CompensatesReleaseWhenPersistFails(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		1: newSlot(1, "10:00", "11:00"),
	}}
	advRepo := &fakeAdvisoryRepo{err: errors.New("connection reset")}
	uc := newTestUseCase(advRepo, slotRepo, sameProgramClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)

	assert.Equal(t, 1, slotRepo.releaseCalls)
	assert.True(t, slotRepo.slots[1].Available, "slot must be released after failed persist")
}
