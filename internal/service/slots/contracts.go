package slots

import (
	"context"
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListAvailableByProfessor(ctx context.Context, professorID int64, date *time.Time) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
