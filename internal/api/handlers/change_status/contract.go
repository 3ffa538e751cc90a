package change_status

import (
	"context"

	"github.com/uteq-platform/AdvisoryService/internal/service/advisories/models"
)

// AdvisoryService переводит консультацию в новый статус
type AdvisoryService interface {
	TransitionStatus(ctx context.Context, id int64, newStatus string) (*models.AdvisoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
