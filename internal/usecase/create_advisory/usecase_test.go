package create_advisory

import (
	"context"
	"errors"
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

	claimCalls   int
	releaseCalls int
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return nil, slot.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSlotRepo) Claim(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claimCalls++
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

func (r *fakeSlotRepo) available(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slots[id].Available
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
	professorID = int64(1)
	studentID   = int64(2)
	slotID      = int64(10)
)

func newTestSlot() *domain.Slot {
	return &domain.Slot{
		ID:          slotID,
		ProfessorID: professorID,
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("11:00"),
		Available:   true,
	}
}

func newTestUseCase(advRepo *fakeAdvisoryRepo, slotRepo *fakeSlotRepo, admin *fakeAdminClient) *UseCase {
	uc := NewUseCase(advRepo, slotRepo, admin, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)}
	return uc
}

func sameProgramClient() *fakeAdminClient {
	return &fakeAdminClient{affiliations: map[int64]*adminservice.ProgramAffiliation{
		professorID: {PersonID: professorID, ProgramID: 100},
		studentID:   {PersonID: studentID, ProgramID: 100},
	}}
}

func validRequest() *Request {
	return &Request{
		ProfessorID: professorID,
		StudentID:   studentID,
		SlotID:      slotID,
		Subject:     "Revisión de proyecto",
	}
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{slotID: newTestSlot()}}
	advRepo := &fakeAdvisoryRepo{}
	uc := newTestUseCase(advRepo, slotRepo, sameProgramClient())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCreated), resp.Status)
	require.NotNil(t, resp.SlotID)
	assert.Equal(t, slotID, *resp.SlotID)

	// Дата и время берутся из слота
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), resp.Date)
	assert.Equal(t, types.TimeString("10:00"), resp.Time)

	// Дата регистрации без компоненты времени
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), resp.RegistrationDate)

	assert.False(t, slotRepo.available(slotID), "slot must be claimed")
}

func TestExecute_ValidationRejectsRequest(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{slotID: newTestSlot()}}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, slotRepo, sameProgramClient())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero professor", func(r *Request) { r.ProfessorID = 0 }},
		{"negative student", func(r *Request) { r.StudentID = -1 }},
		{"zero slot", func(r *Request) { r.SlotID = 0 }},
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

	assert.Equal(t, 0, slotRepo.claimCalls, "rejected requests must not touch slots")
}

func TestExecute_ProgramMismatch(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{slotID: newTestSlot()}}
	admin := &fakeAdminClient{affiliations: map[int64]*adminservice.ProgramAffiliation{
		professorID: {PersonID: professorID, ProgramID: 100},
		studentID:   {PersonID: studentID, ProgramID: 200},
	}}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, slotRepo, admin)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProgramMismatch)

	// Слот не трогался: проверка программ идёт до claim
	assert.Equal(t, 0, slotRepo.claimCalls)
	assert.True(t, slotRepo.available(slotID))
}

func TestExecute_ProfileNotFound(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{slotID: newTestSlot()}}
	admin := &fakeAdminClient{affiliations: map[int64]*adminservice.ProgramAffiliation{
		professorID: {PersonID: professorID, ProgramID: 100},
		// студента нет
	}}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, slotRepo, admin)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestExecute_AdminServiceUnavailableFailsClosed(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{slotID: newTestSlot()}}
	admin := &fakeAdminClient{err: adminservice.ErrUnavailable}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, slotRepo, admin)

	// Недоступность сервиса профилей не отличается от отсутствия профиля
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Equal(t, 0, slotRepo.claimCalls)
}

func TestExecute_SlotNotFound(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{}}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, slotRepo, sameProgramClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotNotOwnedByProfessor(t *testing.T) {
	s := newTestSlot()
	s.ProfessorID = 99
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{slotID: s}}
	uc := newTestUseCase(&fakeAdvisoryRepo{}, slotRepo, sameProgramClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotOwnedByProfessor)
	assert.Equal(t, 0, slotRepo.claimCalls)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	s := newTestSlot()
	s.Available = false
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{slotID: s}}
	advRepo := &fakeAdvisoryRepo{}
	uc := newTestUseCase(advRepo, slotRepo, sameProgramClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, advRepo.created)
}

func TestExecute_CompensatesReleaseWhenPersistFails(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{slotID: newTestSlot()}}
	advRepo := &fakeAdvisoryRepo{err: errors.New("constraint violation")}
	uc := newTestUseCase(advRepo, slotRepo, sameProgramClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)

	// Claim прошёл, запись не удалась, слот освобождён компенсацией
	assert.Equal(t, 1, slotRepo.claimCalls)
	assert.Equal(t, 1, slotRepo.releaseCalls)
	assert.True(t, slotRepo.available(slotID), "slot must be released after failed persist")
}

func TestExecute_ConcurrentClaimsSingleWinner(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: map[int64]*domain.Slot{slotID: newTestSlot()}}
	advRepo := &fakeAdvisoryRepo{}
	uc := newTestUseCase(advRepo, slotRepo, sameProgramClient())

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotUnavailable):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one claim must win")
	assert.Equal(t, workers-1, rejected)
	assert.Len(t, advRepo.created, 1)
}
