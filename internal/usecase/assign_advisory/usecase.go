package assign_advisory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/internal/infra/storage/slot"
	"github.com/uteq-platform/AdvisoryService/internal/integrations/adminservice"
)

// UseCase use case назначения консультации профессором: вместо конкретного
// слота передаются дата и время, подходящий слот ищется среди доступных.
type UseCase struct {
	advisoryRepo AdvisoryRepository
	slotRepo     SlotRepository
	adminClient  AdminServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	advisoryRepo AdvisoryRepository,
	slotRepo SlotRepository,
	adminClient AdminServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		advisoryRepo: advisoryRepo,
		slotRepo:     slotRepo,
		adminClient:  adminClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case назначения консультации.
//
// Слот ищется по включающему интервалу [start_time, end_time]; при
// нескольких кандидатах берётся самый ранний по start_time. В записи
// консультации сохраняются запрошенные дата и время, а не границы слота:
// профессор может назначить встречу внутри своего интервала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignAdvisory: professor=%d, student=%d, date=%s, time=%s",
		req.ProfessorID, req.StudentID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignAdvisory: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем профили: студент и профессор должны быть из одной программы
	profAffiliation, err := uc.adminClient.GetProgramAffiliation(ctx, req.ProfessorID, adminservice.RoleProfessor)
	if err != nil {
		uc.logger.Warn("AssignAdvisory: professor profile lookup failed for id=%d: %v", req.ProfessorID, err)
		return nil, mapProfileLookupError(err)
	}

	studAffiliation, err := uc.adminClient.GetProgramAffiliation(ctx, req.StudentID, adminservice.RoleStudent)
	if err != nil {
		uc.logger.Warn("AssignAdvisory: student profile lookup failed for id=%d: %v", req.StudentID, err)
		return nil, mapProfileLookupError(err)
	}

	if err := validateSamePrograms(profAffiliation, studAffiliation); err != nil {
		uc.logger.Warn("AssignAdvisory: program mismatch: professor program=%d, student program=%d",
			profAffiliation.ProgramID, studAffiliation.ProgramID)
		return nil, err
	}

	// 3. Ищем доступный слот, интервал которого включает запрошенное время
	s, err := uc.slotRepo.FindActiveSlot(ctx, req.ProfessorID, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, slot.ErrSlotNotFound) {
			uc.logger.Warn("AssignAdvisory: no active slot for professor=%d at %s %s",
				req.ProfessorID, req.Date.Format(domain.DateFormat), req.Time)
			return nil, ErrNoActiveSlot
		}
		uc.logger.Error("AssignAdvisory: slot search failed for professor=%d: %v", req.ProfessorID, err)
		return nil, fmt.Errorf("%w: failed to find slot: %v", ErrInternal, err)
	}

	// 4. Атомарно занимаем найденный слот. Между поиском и claim слот могли
	// забрать — conditional update это обнаружит.
	claimed, err := uc.slotRepo.Claim(ctx, s.ID)
	if err != nil {
		uc.logger.Error("AssignAdvisory: claim failed for slot id=%d: %v", s.ID, err)
		return nil, fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
	}
	if !claimed {
		uc.logger.Warn("AssignAdvisory: slot id=%d taken between search and claim", s.ID)
		return nil, ErrSlotUnavailable
	}

	// 5. Создаем консультацию с запрошенными датой и временем
	now := uc.timeProvider.Now()
	adv := &domain.Advisory{
		ProfessorID:      req.ProfessorID,
		StudentID:        req.StudentID,
		SlotID:           &s.ID,
		Date:             req.Date,
		Time:             req.Time,
		Subject:          req.Subject,
		Notes:            req.Notes,
		Status:           domain.StatusAssigned,
		RegistrationDate: truncateToDate(now),
	}

	created, err := uc.advisoryRepo.Create(ctx, adv)
	if err != nil {
		uc.logger.Error("AssignAdvisory: failed to persist advisory for slot id=%d: %v", s.ID, err)

		// Компенсация: освобождаем только что занятый слот
		released, relErr := uc.slotRepo.Release(ctx, s.ID)
		if relErr != nil {
			uc.logger.Error("AssignAdvisory: COMPENSATION FAILED, slot id=%d stranded: %v", s.ID, relErr)
		} else if !released {
			uc.logger.Error("AssignAdvisory: compensation release for slot id=%d changed nothing", s.ID)
		}

		return nil, fmt.Errorf("%w: failed to create advisory: %v", ErrInternal, err)
	}

	uc.logger.Info("AssignAdvisory: successfully created advisory id=%d on slot id=%d", created.ID, s.ID)

	return fromDomain(created), nil
}

// truncateToDate обнуляет время, оставляя только дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
