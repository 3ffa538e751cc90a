package create_advisory

import (
	"context"
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/internal/integrations/adminservice"
)

// AdvisoryRepository интерфейс репозитория консультаций
type AdvisoryRepository interface {
	Create(ctx context.Context, adv *domain.Advisory) (*domain.Advisory, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	Claim(ctx context.Context, id int64) (bool, error)
	Release(ctx context.Context, id int64) (bool, error)
}

// AdminServiceClient интерфейс клиента для AdminService
type AdminServiceClient interface {
	GetProgramAffiliation(ctx context.Context, personID int64, role adminservice.Role) (*adminservice.ProgramAffiliation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
