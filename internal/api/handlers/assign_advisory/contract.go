package assign_advisory

import (
	"context"

	assignAdvisory "github.com/uteq-platform/AdvisoryService/internal/usecase/assign_advisory"
)

type AssignAdvisoryUseCase interface {
	Execute(ctx context.Context, req *assignAdvisory.Request) (*assignAdvisory.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
