package update_advisory

import (
	"context"

	"github.com/uteq-platform/AdvisoryService/internal/service/advisories/models"
)

// AdvisoryService обновляет детали консультации
type AdvisoryService interface {
	UpdateDetails(ctx context.Context, id int64, req *models.UpdateAdvisoryRequest) (*models.AdvisoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
