package create_advisory

import (
	"context"

	createAdvisory "github.com/uteq-platform/AdvisoryService/internal/usecase/create_advisory"
)

type CreateAdvisoryUseCase interface {
	Execute(ctx context.Context, req *createAdvisory.Request) (*createAdvisory.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
