package create_advisory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/internal/infra/storage/slot"
	"github.com/uteq-platform/AdvisoryService/internal/integrations/adminservice"
)

// UseCase use case создания консультации студентом: студент выбирает
// конкретный опубликованный слот профессора.
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

// Execute выполняет use case создания консультации.
//
// Порядок шагов фиксированный: валидация профилей -> загрузка слота ->
// атомарный claim -> запись консультации. Транзакции между хранилищами
// нет; если запись не удалась после успешного claim, слот освобождается
// компенсирующим release.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAdvisory: professor=%d, student=%d, slot=%d",
		req.ProfessorID, req.StudentID, req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAdvisory: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем профили: студент и профессор должны быть из одной программы
	profAffiliation, err := uc.adminClient.GetProgramAffiliation(ctx, req.ProfessorID, adminservice.RoleProfessor)
	if err != nil {
		uc.logger.Warn("CreateAdvisory: professor profile lookup failed for id=%d: %v", req.ProfessorID, err)
		return nil, mapProfileLookupError(err)
	}

	studAffiliation, err := uc.adminClient.GetProgramAffiliation(ctx, req.StudentID, adminservice.RoleStudent)
	if err != nil {
		uc.logger.Warn("CreateAdvisory: student profile lookup failed for id=%d: %v", req.StudentID, err)
		return nil, mapProfileLookupError(err)
	}

	if err := validateSamePrograms(profAffiliation, studAffiliation); err != nil {
		uc.logger.Warn("CreateAdvisory: program mismatch: professor program=%d, student program=%d",
			profAffiliation.ProgramID, studAffiliation.ProgramID)
		return nil, err
	}

	// 3. Загружаем слот и проверяем владельца
	s, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slot.ErrSlotNotFound) {
			uc.logger.Warn("CreateAdvisory: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateAdvisory: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	if !s.BelongsTo(req.ProfessorID) {
		uc.logger.Warn("CreateAdvisory: slot id=%d belongs to professor=%d, not %d",
			s.ID, s.ProfessorID, req.ProfessorID)
		return nil, ErrSlotNotOwnedByProfessor
	}

	// 4. Атомарно занимаем слот. Conditional update в репозитории —
	// единственная точка сериализации конкурентных запросов на этот слот.
	claimed, err := uc.slotRepo.Claim(ctx, s.ID)
	if err != nil {
		uc.logger.Error("CreateAdvisory: claim failed for slot id=%d: %v", s.ID, err)
		return nil, fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
	}
	if !claimed {
		uc.logger.Warn("CreateAdvisory: slot id=%d already taken", s.ID)
		return nil, ErrSlotUnavailable
	}

	// 5. Создаем консультацию; дата и время копируются из слота
	now := uc.timeProvider.Now()
	adv := &domain.Advisory{
		ProfessorID:      req.ProfessorID,
		StudentID:        req.StudentID,
		SlotID:           &s.ID,
		Date:             s.Date,
		Time:             s.StartTime,
		Subject:          req.Subject,
		Notes:            req.Notes,
		Status:           domain.StatusCreated,
		RegistrationDate: truncateToDate(now),
	}

	created, err := uc.advisoryRepo.Create(ctx, adv)
	if err != nil {
		uc.logger.Error("CreateAdvisory: failed to persist advisory for slot id=%d: %v", s.ID, err)

		// Компенсация: слот уже занят, но записи о консультации нет.
		// Освобождаем его, иначе слот останется занят навсегда.
		released, relErr := uc.slotRepo.Release(ctx, s.ID)
		if relErr != nil {
			// Застрявший слот: занят, но ни одна консультация на него не
			// ссылается. Требует ручного вмешательства.
			uc.logger.Error("CreateAdvisory: COMPENSATION FAILED, slot id=%d stranded: %v", s.ID, relErr)
		} else if !released {
			uc.logger.Error("CreateAdvisory: compensation release for slot id=%d changed nothing", s.ID)
		}

		return nil, fmt.Errorf("%w: failed to create advisory: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAdvisory: successfully created advisory id=%d on slot id=%d", created.ID, s.ID)

	return fromDomain(created), nil
}

// truncateToDate обнуляет время, оставляя только дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
