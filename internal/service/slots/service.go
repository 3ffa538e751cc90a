package slots

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots service: internal error")
)

// Service сервис чтения доступных слотов. Публикация слотов — зона
// ответственности внешнего сервиса профессоров; здесь только выдача.
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// ListAvailable получает доступные слоты профессора, опционально на дату.
// Чистый запрос, ничего не мутирует.
func (s *Service) ListAvailable(ctx context.Context, professorID int64, date *time.Time) (*SlotListResponse, error) {
	s.logger.Info("ListAvailable: fetching slots for professor=%d, date=%v", professorID, date)

	slots, err := s.slotRepo.ListAvailableByProfessor(ctx, professorID, date)
	if err != nil {
		s.logger.Error("ListAvailable: repository error for professor=%d: %v", professorID, err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAvailable: found %d available slots for professor=%d", len(slots), professorID)
	return fromDomainSlots(slots), nil
}
