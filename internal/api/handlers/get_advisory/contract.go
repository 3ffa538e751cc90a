package get_advisory

import (
	"context"

	"github.com/uteq-platform/AdvisoryService/internal/service/advisories/models"
)

type AdvisoryService interface {
	GetByID(ctx context.Context, id int64) (*models.AdvisoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
