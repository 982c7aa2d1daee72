package bookings

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserRef(ctx context.Context, userRef string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error)
	Reject(ctx context.Context, id string, reason string) error
}

// AvailabilityInvalidator сброс кеша занятости после смены статуса
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, date time.Time)
}

// EventPublisher интерфейс отправки событий жизненного цикла бронирования
type EventPublisher interface {
	Publish(ctx context.Context, event stream.BookingEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
