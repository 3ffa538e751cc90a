package get_professor_advisories

import (
	"context"

	"github.com/uteq-platform/AdvisoryService/internal/service/advisories/models"
)

type AdvisoryService interface {
	List(ctx context.Context, req *models.ListAdvisoriesRequest) (*models.AdvisoryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
