package expiry

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ExpirePendingBefore(ctx context.Context, deadline time.Time, reason string) ([]*domain.Booking, error)
}

// AvailabilityInvalidator сброс кеша занятости по датам снятых бронирований
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, date time.Time)
}

// EventPublisher интерфейс отправки событий жизненного цикла бронирования
type EventPublisher interface {
	Publish(ctx context.Context, event stream.BookingEvent) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
