package advisories

import (
	"context"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
)

// AdvisoryRepository интерфейс репозитория консультаций
type AdvisoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Advisory, error)
	List(ctx context.Context, filter domain.AdvisoryFilter) ([]*domain.Advisory, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AdvisoryStatus) error
	UpdateDetails(ctx context.Context, id int64, subject string, notes *string) error
	Delete(ctx context.Context, id int64) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Release(ctx context.Context, id int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями.
// Отмена и удаление меняют консультацию и слот одной атомарной парой.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
