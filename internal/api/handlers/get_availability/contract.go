package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// AvailabilityService интерфейс сервиса снимков занятости
type AvailabilityService interface {
	LoadMonth(ctx context.Context, year int, month time.Month) (domain.Occupancy, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
