package availability

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDateRange(ctx context.Context, start, end time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// OccupancyCache интерфейс кеша месячных снимков занятости
type OccupancyCache interface {
	Get(ctx context.Context, monthKey string) (domain.Occupancy, error)
	Set(ctx context.Context, monthKey string, occupancy domain.Occupancy) error
	Invalidate(ctx context.Context, monthKey string) error
	PublishInvalidation(ctx context.Context, monthKey string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
