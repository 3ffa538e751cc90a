package get_available_slots

import (
	"context"
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/service/slots"
)

// SlotService выдает доступные слоты профессора
type SlotService interface {
	ListAvailable(ctx context.Context, professorID int64, date *time.Time) (*slots.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
