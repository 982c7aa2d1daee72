package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// MarkPaid переводит pending -> paid, для любого другого статуса
	// возвращает ошибку ErrNotPending
	MarkPaid(ctx context.Context, id string, paymentID string, signature string) error
}

// PaymentVerifier проверка подписи callback платежного шлюза
type PaymentVerifier interface {
	VerifySignature(orderID, paymentID, signature string) bool
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
