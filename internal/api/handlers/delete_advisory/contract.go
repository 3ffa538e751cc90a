package delete_advisory

import "context"

// AdvisoryService удаляет консультацию и освобождает её слот
type AdvisoryService interface {
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
