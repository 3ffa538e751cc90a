package advisories

import (
	"context"
	"errors"
	"fmt"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	advisoryRepo "github.com/uteq-platform/AdvisoryService/internal/infra/storage/advisory"
	"github.com/uteq-platform/AdvisoryService/internal/service/advisories/models"
)

// Service сервис для работы с консультациями: чтение, переходы статусов,
// обновление деталей и удаление. Создание живёт в usecase-слое.
type Service struct {
	advisoryRepo AdvisoryRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса консультаций
func NewService(
	advisoryRepo AdvisoryRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		advisoryRepo: advisoryRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByID получает консультацию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AdvisoryResponse, error) {
	s.logger.Info("GetByID: fetching advisory id=%d", id)

	adv, err := s.advisoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, advisoryRepo.ErrAdvisoryNotFound) {
			s.logger.Warn("GetByID: advisory id=%d not found", id)
			return nil, ErrAdvisoryNotFound
		}
		s.logger.Error("GetByID: repository error for advisory id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAdvisory(adv), nil
}

// List получает консультации по фильтру (профессор, студент, дата, статус)
func (s *Service) List(ctx context.Context, req *models.ListAdvisoriesRequest) (*models.AdvisoryListResponse, error) {
	s.logger.Info("List: fetching advisories, professor=%v, student=%v, date=%v, status=%v",
		req.ProfessorID, req.StudentID, req.Date, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	advisories, err := s.advisoryRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d advisories", len(advisories))
	return models.FromDomainAdvisoryList(advisories), nil
}

// UpdateDetails обновляет тему и заметки консультации, статус не трогается
func (s *Service) UpdateDetails(ctx context.Context, id int64, req *models.UpdateAdvisoryRequest) (*models.AdvisoryResponse, error) {
	s.logger.Info("UpdateDetails: updating advisory id=%d", id)

	if req.Subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if len(req.Subject) > domain.MaxSubjectLength {
		return nil, fmt.Errorf("%w: subject exceeds %d characters", ErrInvalidInput, domain.MaxSubjectLength)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if err := s.advisoryRepo.UpdateDetails(ctx, id, req.Subject, req.Notes); err != nil {
		if errors.Is(err, advisoryRepo.ErrAdvisoryNotFound) {
			s.logger.Warn("UpdateDetails: advisory id=%d not found", id)
			return nil, ErrAdvisoryNotFound
		}
		s.logger.Error("UpdateDetails: repository error for advisory id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDetails - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// TransitionStatus переводит консультацию в новый статус по таблице
// переходов. Переход в CANCELLED дополнительно освобождает слот — эти два
// изменения выполняются в одной транзакции.
func (s *Service) TransitionStatus(ctx context.Context, id int64, newStatusRaw string) (*models.AdvisoryResponse, error) {
	s.logger.Info("TransitionStatus: advisory id=%d -> %s", id, newStatusRaw)

	newStatus, err := models.ToDomainAdvisoryStatus(newStatusRaw)
	if err != nil {
		s.logger.Warn("TransitionStatus: unknown status %q for advisory id=%d", newStatusRaw, id)
		return nil, ErrInvalidStatus
	}

	adv, err := s.advisoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, advisoryRepo.ErrAdvisoryNotFound) {
			s.logger.Warn("TransitionStatus: advisory id=%d not found", id)
			return nil, ErrAdvisoryNotFound
		}
		s.logger.Error("TransitionStatus: repository error for advisory id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: TransitionStatus - repository error: %v", ErrInternal, err)
	}

	if !adv.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("TransitionStatus: transition %s -> %s rejected for advisory id=%d",
			adv.Status, newStatus, id)
		return nil, ErrInvalidTransition
	}

	if newStatus == domain.StatusCancelled {
		if err := s.cancel(ctx, adv); err != nil {
			return nil, err
		}
	} else {
		if err := s.advisoryRepo.UpdateStatus(ctx, id, newStatus); err != nil {
			if errors.Is(err, advisoryRepo.ErrAdvisoryNotFound) {
				return nil, ErrAdvisoryNotFound
			}
			s.logger.Error("TransitionStatus: repository error for advisory id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: TransitionStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("TransitionStatus: advisory id=%d is now %s", id, newStatus)
	return s.GetByID(ctx, id)
}

// cancel переводит консультацию в CANCELLED и освобождает её слот одной
// транзакцией. Отмена без освобождения слота оставила бы его занятым
// навсегда, поэтому эти изменения не разделяются.
func (s *Service) cancel(ctx context.Context, adv *domain.Advisory) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.advisoryRepo.UpdateStatus(txCtx, adv.ID, domain.StatusCancelled); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		if adv.HoldsSlot() {
			released, err := s.slotRepo.Release(txCtx, *adv.SlotID)
			if err != nil {
				return fmt.Errorf("release slot id=%d: %w", *adv.SlotID, err)
			}
			if !released {
				// Слот уже свободен: claim не переживал запись консультации
				// или release повторён. Изменений нет, это не ошибка.
				s.logger.Warn("cancel: release of slot id=%d changed nothing", *adv.SlotID)
			}
		}

		return nil
	})

	if err != nil {
		// Транзакция откатилась целиком, слот и статус остались согласованы,
		// но запрос отмены не выполнен — эскалируем в лог.
		s.logger.Error("cancel: transaction failed for advisory id=%d: %v", adv.ID, err)
		return fmt.Errorf("%w: cancel advisory: %v", ErrInternal, err)
	}

	return nil
}

// Delete удаляет консультацию и освобождает её слот.
// Оба изменения выполняются в одной транзакции: удалённая консультация с
// навсегда занятым слотом — худший из вариантов рассинхронизации.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting advisory id=%d", id)

	adv, err := s.advisoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, advisoryRepo.ErrAdvisoryNotFound) {
			s.logger.Warn("Delete: advisory id=%d not found", id)
			return ErrAdvisoryNotFound
		}
		s.logger.Error("Delete: repository error for advisory id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if adv.HoldsSlot() {
			if _, err := s.slotRepo.Release(txCtx, *adv.SlotID); err != nil {
				return fmt.Errorf("release slot id=%d: %w", *adv.SlotID, err)
			}
		}

		if err := s.advisoryRepo.Delete(txCtx, adv.ID); err != nil {
			return fmt.Errorf("delete advisory: %w", err)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Delete: transaction failed for advisory id=%d: %v", id, err)
		return fmt.Errorf("%w: delete advisory: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: advisory id=%d deleted, slot released", id)
	return nil
}
