package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/integrations/razorpay"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByDateRange внутри транзакции с диапазоном в один день блокирует
	// строки дня через FOR UPDATE
	GetByDateRange(ctx context.Context, start, end time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
	SetOrder(ctx context.Context, id string, orderID string) error
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*domain.StudioPackage, error)
}

// PaymentClient интерфейс клиента платежного шлюза
type PaymentClient interface {
	CreateOrder(ctx context.Context, amountPaise int64, receipt string) (*razorpay.Order, error)
}

// AvailabilityInvalidator сброс кеша занятости после создания бронирования
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, date time.Time)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
